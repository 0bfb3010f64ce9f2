package adapters

import (
	"context"
	"os/exec"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"cran-packages/internal/shared"
)

// RExecutable is the interpreter invoked for package installs.
const RExecutable = "R"

// RInstallAdapter shells out to the R executable.  The runner is
// injectable so tests never exec.
type RInstallAdapter struct {
	Runner func(ctx context.Context, name string, args ...string) ([]byte, error)
}

func NewRInstallAdapter() RInstallAdapter {
	return RInstallAdapter{Runner: runCommand}
}

func (a RInstallAdapter) Install(ctx context.Context, args []string) error {
	runner := a.Runner
	if runner == nil {
		runner = runCommand
	}
	log.Ctx(ctx).Debug().Strs("args", args).Msg("invoking R")
	output, err := runner(ctx, RExecutable, args...)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("R CMD INSTALL failed").
			WithCause(shared.CommandError(output, err))
	}
	return nil
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}
