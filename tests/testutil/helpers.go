// Package testutil provides shared helpers for the integration and
// e2e test packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// FixturePath joins path elements under the repository's fixtures
// directory.
func FixturePath(t *testing.T, elem ...string) string {
	t.Helper()
	return filepath.Join(append([]string{RepoRoot(t), "fixtures"}, elem...)...)
}

// ReadFixture returns the contents of a file under fixtures/.
func ReadFixture(t *testing.T, elem ...string) string {
	t.Helper()
	data, err := os.ReadFile(FixturePath(t, elem...))
	require.NoError(t, err)
	return string(data)
}
