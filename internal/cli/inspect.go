package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cran-packages/internal/app"
)

type inspectOptions struct {
	SourceDir string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Parse and print DESCRIPTION metadata records",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.SourceDir, "source", "", "Unpacked package source directory")
	_ = viper.BindPFlag("source", cmd.Flags().Lookup("source"))
	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(app.InspectRequest{
		SourceDir: resolveString(cmd, opts.SourceDir, "source", "source"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("records: %d\n", len(result.Records))
	for i, record := range result.Records {
		fmt.Printf("record %d (%d fields):\n", i+1, record.Len())
		for _, field := range record.Fields() {
			fmt.Printf("  %s: %s\n", field.Name, field.Value)
		}
	}
	return nil
}
