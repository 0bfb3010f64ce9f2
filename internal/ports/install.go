package ports

import "context"

// InstallerPort runs the R executable with an assembled argv.
type InstallerPort interface {
	Install(ctx context.Context, args []string) error
}
