package ports

import (
	"context"

	"cran-packages/internal/types"
)

// ReconcilerPort verifies a recipe's declared dependencies against the
// package's own CRAN metadata.  The port is an optional capability:
// services constructed without it skip verification with a debug
// diagnostic and the install proceeds unaffected.
type ReconcilerPort interface {
	Reconcile(ctx context.Context, description string, recipe types.Recipe) (types.ReconcileReport, error)
}
