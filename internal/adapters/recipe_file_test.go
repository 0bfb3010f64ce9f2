package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cran-packages/internal/types"
)

const sampleRecipe = `api_version: v1
kind: recipe
metadata:
  name: r-xtable
  version: 1.8-4
  maintainers: [tools-team]
cran: xtable
dependencies:
  - name: r
    range: "2.10:"
    stages: [build, run]
  - name: r-knitr
    when: "1.8:"
configure_args: ["--with-foo"]
`

func writeRecipe(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "r-xtable.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRecipeFileAdapterLoad(t *testing.T) {
	adapter := NewRecipeFileAdapter()
	recipe, err := adapter.Load(writeRecipe(t, sampleRecipe))
	require.NoError(t, err)

	assert.Equal(t, "r-xtable", recipe.Metadata.Name)
	assert.Equal(t, "1.8-4", recipe.Metadata.Version)
	assert.Equal(t, "xtable", recipe.Cran)
	require.Len(t, recipe.Dependencies, 2)
	assert.Equal(t, "2.10:", recipe.Dependencies[0].Range)
	assert.Equal(t, []types.DependencyStage{types.StageBuild, types.StageRun}, recipe.Dependencies[0].Stages)
	assert.Equal(t, []string{"--with-foo"}, recipe.ConfigureArgs)
}

func TestRecipeFileAdapterMissingFile(t *testing.T) {
	adapter := NewRecipeFileAdapter()
	_, err := adapter.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestRecipeFileAdapterWrongKind(t *testing.T) {
	adapter := NewRecipeFileAdapter()
	_, err := adapter.Load(writeRecipe(t, "api_version: v1\nkind: product\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recipe kind is not recipe")
}

func TestRecipeFileAdapterInvalidYAML(t *testing.T) {
	adapter := NewRecipeFileAdapter()
	_, err := adapter.Load(writeRecipe(t, "kind: [unclosed\n"))
	require.Error(t, err)
}
