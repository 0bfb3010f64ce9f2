package core

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"cran-packages/internal/policies"
	"cran-packages/internal/shared"
	"cran-packages/internal/types"
)

type RecipeCompiler struct{}

var validStages = map[types.DependencyStage]struct{}{
	types.StageBuild: {},
	types.StageRun:   {},
	types.StageTest:  {},
}

func NewRecipeCompiler() RecipeCompiler {
	return RecipeCompiler{}
}

func (c RecipeCompiler) ValidateRecipe(ctx context.Context, recipe types.Recipe) error {
	assert.NotEmpty(ctx, recipe.APIVersion, "api_version must be set")
	assert.NotEmpty(ctx, string(recipe.Kind), "kind must be set")
	assert.NotEmpty(ctx, recipe.Metadata.Name, "metadata.name must be set")
	assert.NotEmpty(ctx, recipe.Metadata.Version, "metadata.version must be set")
	if recipe.Kind != types.RecipeKindRecipe {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("recipe kind must be recipe")
	}
	if shared.EcosystemOf(recipe.Metadata.Name) != types.EcosystemR {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("metadata.name must be a namespaced R package name: %s", recipe.Metadata.Name))
	}
	if recipe.Cran != "" && recipe.Bioc != "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("cran and bioc are mutually exclusive")
	}

	caches := map[types.Ecosystem]*versionCache{
		types.EcosystemR:      newVersionCache(types.EcosystemR),
		types.EcosystemPython: newVersionCache(types.EcosystemPython),
	}
	if _, err := caches[types.EcosystemR].debVersion(recipe.Metadata.Version); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("metadata.version is not a valid version: %s", recipe.Metadata.Version)).
			WithCause(err)
	}

	for _, rule := range recipe.Dependencies {
		if err := validateRule(caches, rule); err != nil {
			return err
		}
	}
	for _, override := range recipe.Overrides {
		if err := validateOverride(override); err != nil {
			return err
		}
	}

	log.Ctx(ctx).Debug().Str("recipe", recipe.Metadata.Name).Msg("recipe validated")
	return nil
}

func validateRule(caches map[types.Ecosystem]*versionCache, rule types.DependencyRule) error {
	if strings.TrimSpace(rule.Name) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("dependency rule name must not be empty")
	}
	for _, stage := range rule.Stages {
		if _, ok := validStages[stage]; !ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("dependency %s has invalid stage %s", rule.Name, stage))
		}
	}
	// When guards evaluate against the recipe's own version, an R
	// version regardless of the dependency's ecosystem.
	if err := validateRange(caches[types.EcosystemR], rule.Name, rule.When); err != nil {
		return err
	}
	cache := caches[types.EcosystemR]
	if shared.EcosystemOf(rule.Name) == types.EcosystemPython {
		cache = caches[types.EcosystemPython]
	}
	return validateRange(cache, rule.Name, rule.Range)
}

func validateRange(cache *versionCache, name string, text string) error {
	versionRange := ParseRange(text)
	if versionRange.IsAny() {
		return nil
	}
	for _, bound := range []string{versionRange.Min, versionRange.Max} {
		if bound == "" {
			continue
		}
		if _, err := cache.compare(bound, bound); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("dependency %s has invalid range %q", name, text)).
				WithCause(err)
		}
	}
	if versionRange.Min != "" && versionRange.Max != "" {
		cmp, err := cache.compare(versionRange.Min, versionRange.Max)
		if err != nil {
			return err
		}
		if cmp > 0 {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("dependency %s has empty range %q", name, text))
		}
	}
	return nil
}

func validateOverride(override types.FindingOverride) error {
	if strings.TrimSpace(override.Dependency) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("override dependency must not be empty")
	}
	action := strings.ToLower(strings.TrimSpace(override.Action))
	switch action {
	case policies.ActionAccept:
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("override has invalid action: %s", override.Action))
	}
	if strings.TrimSpace(override.Reason) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("override reason must not be empty")
	}
	if strings.TrimSpace(override.Owner) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("override owner must not be empty")
	}
	return nil
}
