package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cran-packages/internal/app"
)

type installOptions struct {
	Recipe     string
	SourceDir  string
	LibraryDir string
	DryRun     bool
}

func newInstallCommand() *cobra.Command {
	opts := installOptions{}
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install an R package from unpacked sources",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInstall(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Recipe, "recipe", "", "Recipe file path")
	cmd.Flags().StringVar(&opts.SourceDir, "source", "", "Unpacked package source directory")
	cmd.Flags().StringVar(&opts.LibraryDir, "library", "", "Target R library directory")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print the install invocation without executing")

	_ = viper.BindPFlag("recipe", cmd.Flags().Lookup("recipe"))
	_ = viper.BindPFlag("source", cmd.Flags().Lookup("source"))
	_ = viper.BindPFlag("library", cmd.Flags().Lookup("library"))
	_ = viper.BindPFlag("dry_run", cmd.Flags().Lookup("dry-run"))

	return cmd
}

func runInstall(ctx context.Context, cmd *cobra.Command, opts installOptions) error {
	service := newAppService()
	result, err := service.Install(ctx, app.InstallRequest{
		RecipePath: resolveString(cmd, opts.Recipe, "recipe", "recipe"),
		SourceDir:  resolveString(cmd, opts.SourceDir, "source", "source"),
		LibraryDir: resolveString(cmd, opts.LibraryDir, "library", "library"),
		DryRun:     resolveBool(cmd, opts.DryRun, "dry_run", "dry-run"),
	})
	if err != nil {
		return err
	}
	if !result.Installed {
		fmt.Printf("would run: R %s\n", strings.Join(result.Args, " "))
		return nil
	}
	fmt.Printf("installed: %s\n", result.RecipeName)
	if len(result.Report.Findings) > 0 {
		fmt.Printf("dependency findings: %d (run check for details)\n", len(result.Report.Findings))
	}
	return nil
}
