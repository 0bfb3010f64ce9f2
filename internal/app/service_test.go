package app

import (
	"context"

	"cran-packages/internal/core"
	"cran-packages/internal/types"
)

type fakeRecipeSource struct {
	recipe types.Recipe
	err    error
}

func (f fakeRecipeSource) Load(string) (types.Recipe, error) {
	return f.recipe, f.err
}

type fakeMetadata struct {
	description string
	err         error
}

func (f fakeMetadata) ReadDescription(string) (string, error) {
	return f.description, f.err
}

type fakeInstaller struct {
	args  []string
	calls int
	err   error
}

func (f *fakeInstaller) Install(_ context.Context, args []string) error {
	f.args = args
	f.calls++
	return f.err
}

func sampleRecipe() types.Recipe {
	return types.Recipe{
		APIVersion: "v1",
		Kind:       types.RecipeKindRecipe,
		Metadata:   types.Metadata{Name: "r-samplepkg", Version: "1.4.0"},
		Cran:       "samplepkg",
		Dependencies: []types.DependencyRule{
			{Name: "r-xtable", Range: "2.5:"},
		},
	}
}

func testService(recipe types.Recipe, description string, installer *fakeInstaller) Service {
	return Service{
		Recipes:    fakeRecipeSource{recipe: recipe},
		Metadata:   fakeMetadata{description: description},
		Installer:  installer,
		Reconciler: core.NewReconciler(),
	}
}
