package core

import (
	"strings"

	"cran-packages/internal/types"
)

// InstallArgs assembles the argv passed to the R executable for one
// package install.  The recipe's configure arguments and variables are
// contributed ahead of the fixed library/source tail.
func InstallArgs(recipe types.Recipe, libraryDir string, sourceDir string) []string {
	args := []string{"--vanilla", "CMD", "INSTALL"}
	if len(recipe.ConfigureArgs) > 0 {
		args = append(args, "--configure-args="+strings.Join(recipe.ConfigureArgs, " "))
	}
	if len(recipe.ConfigureVars) > 0 {
		args = append(args, "--configure-vars="+strings.Join(recipe.ConfigureVars, " "))
	}
	return append(args, "--library="+libraryDir, sourceDir)
}
