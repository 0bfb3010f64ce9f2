package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cran-packages/internal/app"
)

type checkOptions struct {
	Recipe    string
	SourceDir string
	Strict    bool
}

func newCheckCommand() *cobra.Command {
	opts := checkOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Reconcile recipe dependencies against CRAN metadata",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Recipe, "recipe", "", "Recipe file path")
	cmd.Flags().StringVar(&opts.SourceDir, "source", "", "Unpacked package source directory")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Fail when findings remain")

	_ = viper.BindPFlag("recipe", cmd.Flags().Lookup("recipe"))
	_ = viper.BindPFlag("source", cmd.Flags().Lookup("source"))
	_ = viper.BindPFlag("strict", cmd.Flags().Lookup("strict"))

	return cmd
}

func runCheck(ctx context.Context, cmd *cobra.Command, opts checkOptions) error {
	service := newAppService()
	result, err := service.Check(ctx, app.CheckRequest{
		RecipePath: resolveString(cmd, opts.Recipe, "recipe", "recipe"),
		SourceDir:  resolveString(cmd, opts.SourceDir, "source", "source"),
		Strict:     resolveBool(cmd, opts.Strict, "strict", "strict"),
	})
	printCheckReport(result)
	if err != nil {
		return err
	}
	return nil
}

func printCheckReport(result app.CheckResult) {
	if result.RecipeName == "" {
		return
	}
	report := result.Report
	fmt.Printf("checked %d dependencies for %s: %d satisfied, %d findings\n",
		report.Checked, result.RecipeName, report.Satisfied, len(report.Findings))
	for _, finding := range report.Findings {
		fmt.Printf("%s: %s (required %s", finding.Name, finding.Verdict, displayRange(finding.Required))
		if finding.Declared != "" {
			fmt.Printf(", declared %s", displayRange(finding.Declared))
		}
		fmt.Println(")")
		fmt.Printf("  %s\n", finding.Suggestion)
	}
	for _, record := range report.Overridden {
		fmt.Printf("%s: overridden by %s (%s)\n", record.Dependency, record.Owner, record.Reason)
	}
}

func displayRange(value string) string {
	if value == "" {
		return "any"
	}
	return value
}
