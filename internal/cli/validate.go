package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cran-packages/internal/app"
)

type validateOptions struct {
	Recipe string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a package recipe",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Recipe, "recipe", "", "Recipe file path")
	_ = viper.BindPFlag("recipe", cmd.Flags().Lookup("recipe"))
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions) error {
	service := newAppService()
	result, err := service.Validate(ctx, app.ValidateRequest{
		RecipePath: resolveString(cmd, opts.Recipe, "recipe", "recipe"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("validated: %s\n", result.RecipeName)
	if result.Homepage != "" {
		fmt.Printf("homepage: %s\n", result.Homepage)
	}
	if result.SourceURL != "" {
		fmt.Printf("source: %s\n", result.SourceURL)
	}
	return nil
}
