package app

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cran-packages/internal/types"
)

func TestCheckRequiresRecipeAndSource(t *testing.T) {
	service := testService(sampleRecipe(), "", &fakeInstaller{})

	_, err := service.Check(t.Context(), CheckRequest{SourceDir: "/src"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))

	_, err = service.Check(t.Context(), CheckRequest{RecipePath: "r.yaml"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestCheckWithoutReconcilerFails(t *testing.T) {
	service := testService(sampleRecipe(), "", &fakeInstaller{})
	service.Reconciler = nil

	_, err := service.Check(t.Context(), CheckRequest{RecipePath: "r.yaml", SourceDir: "/src"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "dependency verification unavailable")
}

func TestCheckReportsSatisfiedDependencies(t *testing.T) {
	service := testService(sampleRecipe(), "Imports: xtable (>= 2.0)\n", &fakeInstaller{})

	result, err := service.Check(t.Context(), CheckRequest{RecipePath: "r.yaml", SourceDir: "/src"})
	require.NoError(t, err)
	assert.Equal(t, "r-samplepkg", result.RecipeName)
	assert.Equal(t, 1, result.Report.Checked)
	assert.Equal(t, 1, result.Report.Satisfied)
	assert.Empty(t, result.Report.Findings)
}

func TestCheckStrictFailsOnFindings(t *testing.T) {
	recipe := types.Recipe{
		Kind:     types.RecipeKindRecipe,
		Metadata: types.Metadata{Name: "r-samplepkg", Version: "1.4.0"},
	}
	service := testService(recipe, "Imports: dplyr (>= 1.1.0)\n", &fakeInstaller{})

	result, err := service.Check(t.Context(), CheckRequest{
		RecipePath: "r.yaml",
		SourceDir:  "/src",
		Strict:     true,
	})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "unresolved dependency findings")

	// The report still comes back so callers can print the findings.
	require.Len(t, result.Report.Findings, 1)
	assert.Equal(t, "r-dplyr", result.Report.Findings[0].Name)
}

func TestCheckNonStrictToleratesFindings(t *testing.T) {
	recipe := types.Recipe{
		Kind:     types.RecipeKindRecipe,
		Metadata: types.Metadata{Name: "r-samplepkg", Version: "1.4.0"},
	}
	service := testService(recipe, "Imports: dplyr\n", &fakeInstaller{})

	result, err := service.Check(t.Context(), CheckRequest{RecipePath: "r.yaml", SourceDir: "/src"})
	require.NoError(t, err)
	require.Len(t, result.Report.Findings, 1)
	assert.Equal(t, types.VerdictMissing, result.Report.Findings[0].Verdict)
}
