//go:build integration

package integration

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"cran-packages/internal/core"
	"cran-packages/internal/types"
)

// TestRInstallInContainer runs the assembled install invocation against
// a real R toolchain inside a container. Gated behind the integration
// build tag because it pulls an image and needs a docker daemon.
func TestRInstallInContainer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container install in short mode")
	}

	ctx := t.Context()
	container, cleanup := startRContainer(ctx, t)
	t.Cleanup(cleanup)

	sourceDir := writeSamplePackage(t)
	require.NoError(t, container.CopyDirToContainer(ctx, sourceDir, "/work", 0o755))

	code, _, err := container.Exec(ctx, []string{"mkdir", "-p", "/opt/rlib"})
	require.NoError(t, err)
	require.Zero(t, code)

	recipe := types.Recipe{
		Kind:     types.RecipeKindRecipe,
		Metadata: types.Metadata{Name: "r-samplepkg", Version: "0.1.0"},
		Cran:     "samplepkg",
	}
	argv := append([]string{"R"}, core.InstallArgs(recipe, "/opt/rlib", "/work/samplepkg")...)

	code, reader, err := container.Exec(ctx, argv)
	require.NoError(t, err)
	output, _ := io.ReadAll(reader)
	require.Zero(t, code, string(output))

	// The package must be loadable from the target library.
	code, reader, err = container.Exec(ctx, []string{
		"Rscript", "-e", `library(samplepkg, lib.loc = "/opt/rlib")`,
	})
	require.NoError(t, err)
	output, _ = io.ReadAll(reader)
	assert.Zero(t, code, string(output))
}

func startRContainer(ctx context.Context, t *testing.T) (testcontainers.Container, func()) {
	t.Helper()
	req := testcontainers.ContainerRequest{
		Image:      "rocker/r-ver:4.3.2",
		Entrypoint: []string{"sleep"},
		Cmd:        []string{"infinity"},
		WaitingFor: wait.ForExec([]string{"R", "--version"}).
			WithStartupTimeout(2 * time.Minute),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	cleanup := func() {
		_ = container.Terminate(ctx)
	}
	return container, cleanup
}

// writeSamplePackage lays out the smallest source tree R CMD INSTALL
// accepts: DESCRIPTION, NAMESPACE, and one exported function.
func writeSamplePackage(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "samplepkg")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "R"), 0o755))

	description := "Package: samplepkg\n" +
		"Version: 0.1.0\n" +
		"Title: Sample Package\n" +
		"Description: Minimal package used to exercise the install path.\n" +
		"Author: build-team\n" +
		"Maintainer: build-team <build@example.com>\n" +
		"License: GPL-3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "DESCRIPTION"), []byte(description), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "NAMESPACE"), []byte("export(greet)\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "R", "greet.R"),
		[]byte("greet <- function() \"hello\"\n"), 0o644))
	return dir
}
