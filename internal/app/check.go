package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"cran-packages/internal/policies"
)

func (s Service) Check(ctx context.Context, req CheckRequest) (CheckResult, error) {
	if strings.TrimSpace(req.RecipePath) == "" {
		return CheckResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("recipe path is required")
	}
	if strings.TrimSpace(req.SourceDir) == "" {
		return CheckResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("source directory is required")
	}
	if s.Reconciler == nil {
		return CheckResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("dependency verification unavailable")
	}

	recipe, err := s.Recipes.Load(req.RecipePath)
	if err != nil {
		return CheckResult{}, err
	}
	description, err := s.Metadata.ReadDescription(req.SourceDir)
	if err != nil {
		return CheckResult{}, err
	}
	report, err := s.Reconciler.Reconcile(ctx, description, recipe)
	if err != nil {
		return CheckResult{}, err
	}

	result := CheckResult{RecipeName: recipe.Metadata.Name, Report: report}
	if req.Strict {
		if err := policies.EnforceFindings(report); err != nil {
			return result, err
		}
	}
	return result, nil
}
