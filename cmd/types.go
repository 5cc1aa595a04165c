package cmd

import (
	"github.com/spf13/cobra"

	"github.com/HarshitR2004/GenCoder/internal/catalog"
	"github.com/HarshitR2004/GenCoder/internal/output"
	"github.com/HarshitR2004/GenCoder/internal/outputters"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List supported problem types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(nil)
		if err != nil {
			return err
		}
		return outputters.NewOutputter(cfg).WithWriter(cmd.OutOrStdout()).Emit(func(f output.Formatter) error {
			return f.FormatTypes(catalog.All())
		})
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
