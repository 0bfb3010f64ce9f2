package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"cran-packages/internal/core"
)

func (s Service) Install(ctx context.Context, req InstallRequest) (InstallResult, error) {
	if strings.TrimSpace(req.RecipePath) == "" {
		return InstallResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("recipe path is required")
	}
	if strings.TrimSpace(req.SourceDir) == "" {
		return InstallResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("source directory is required")
	}
	if strings.TrimSpace(req.LibraryDir) == "" {
		return InstallResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("library directory is required")
	}

	recipe, err := s.Recipes.Load(req.RecipePath)
	if err != nil {
		return InstallResult{}, err
	}

	result := InstallResult{RecipeName: recipe.Metadata.Name}

	if s.Reconciler == nil || s.Metadata == nil {
		log.Ctx(ctx).Debug().Msg("dependency verification unavailable, skipping")
	} else {
		description, err := s.Metadata.ReadDescription(req.SourceDir)
		if err != nil {
			return InstallResult{}, err
		}
		report, err := s.Reconciler.Reconcile(ctx, description, recipe)
		if err != nil {
			return InstallResult{}, err
		}
		result.Report = report
	}

	result.Args = core.InstallArgs(recipe, req.LibraryDir, req.SourceDir)
	if req.DryRun {
		return result, nil
	}
	if err := s.Installer.Install(ctx, result.Args); err != nil {
		return InstallResult{}, err
	}
	result.Installed = true
	return result, nil
}
