package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"cran-packages/internal/core"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	recipePath := strings.TrimSpace(req.RecipePath)
	if recipePath == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("recipe path is required")
	}
	recipe, err := s.Recipes.Load(recipePath)
	if err != nil {
		return ValidateResult{}, err
	}
	compiler := core.NewRecipeCompiler()
	if err := compiler.ValidateRecipe(ctx, recipe); err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{
		RecipeName: recipe.Metadata.Name,
		Homepage:   recipe.Homepage(),
		SourceURL:  recipe.SourceURL(),
	}, nil
}
