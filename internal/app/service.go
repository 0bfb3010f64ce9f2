package app

import (
	"cran-packages/internal/adapters"
	"cran-packages/internal/core"
	"cran-packages/internal/ports"
)

type Service struct {
	Recipes   ports.RecipeSourcePort
	Metadata  ports.MetadataPort
	Installer ports.InstallerPort

	// Reconciler is an optional capability: when nil, dependency
	// verification is skipped with a debug diagnostic and installs
	// proceed using only the recipe's configured arguments.
	Reconciler ports.ReconcilerPort
}

func NewService() Service {
	return Service{
		Recipes:    adapters.NewRecipeFileAdapter(),
		Metadata:   adapters.NewDescriptionFileAdapter(),
		Installer:  adapters.NewRInstallAdapter(),
		Reconciler: core.NewReconciler(),
	}
}
