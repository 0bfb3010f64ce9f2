// Package shared provides common utility functions used across multiple
// packages in the cran-packages codebase.
package shared

import (
	"fmt"
	"strings"

	"cran-packages/internal/types"
)

// RuntimeName is the unprefixed identifier for the R runtime itself.
const RuntimeName = "r"

// NamespacePrefix is prepended to lowercased CRAN package names to form
// host dependency identifiers.
const NamespacePrefix = "r-"

// NormalizeRName lowercases a CRAN package name and prefixes it with
// the host namespace.  The runtime's own name stays unprefixed.
func NormalizeRName(value string) string {
	lower := strings.ToLower(strings.TrimSpace(value))
	if lower == RuntimeName {
		return RuntimeName
	}
	return NamespacePrefix + lower
}

// EcosystemOf derives the ecosystem of a dependency from its naming
// convention: `r` is the language runtime, `r-*` are R packages,
// `py-*` are Python packages, everything else is a system dependency.
func EcosystemOf(name string) types.Ecosystem {
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == RuntimeName:
		return types.EcosystemRuntime
	case strings.HasPrefix(trimmed, NamespacePrefix):
		return types.EcosystemR
	case strings.HasPrefix(trimmed, "py-"):
		return types.EcosystemPython
	default:
		return types.EcosystemSystem
	}
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}
