package app

import (
	"cran-packages/internal/core"
	"cran-packages/internal/types"
)

type InstallRequest struct {
	RecipePath string
	SourceDir  string
	LibraryDir string
	DryRun     bool
}

type InstallResult struct {
	RecipeName string
	Args       []string
	Report     types.ReconcileReport
	Installed  bool
}

type CheckRequest struct {
	RecipePath string
	SourceDir  string
	Strict     bool
}

type CheckResult struct {
	RecipeName string
	Report     types.ReconcileReport
}

type InspectRequest struct {
	SourceDir string
}

type InspectResult struct {
	Records []core.Record
}

type ValidateRequest struct {
	RecipePath string
}

type ValidateResult struct {
	RecipeName string
	Homepage   string
	SourceURL  string
}
