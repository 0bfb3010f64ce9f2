package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"cran-packages/internal/types"
)

type RecipeFileAdapter struct{}

func NewRecipeFileAdapter() RecipeFileAdapter {
	return RecipeFileAdapter{}
}

func (a RecipeFileAdapter) Load(path string) (types.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Recipe{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("recipe file not found").
			WithCause(err)
	}
	var recipe types.Recipe
	if err := yaml.Unmarshal(data, &recipe); err != nil {
		return types.Recipe{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse recipe yaml").
			WithCause(err)
	}
	if recipe.Kind != types.RecipeKindRecipe {
		return types.Recipe{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("recipe kind is not recipe")
	}
	return recipe, nil
}
