package cmd

import (
	"github.com/spf13/cobra"

	"github.com/HarshitR2004/GenCoder/internal/catalog"
	"github.com/HarshitR2004/GenCoder/internal/output"
	"github.com/HarshitR2004/GenCoder/internal/outputters"
)

var validateCmd = &cobra.Command{
	Use:   "validate <type> [path]",
	Short: "Check that starter code fits a problem type",
	Long: `Validate compares the detected problem type of a bundle with <type> and
exits non-zero when they differ.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	candidate, err := catalog.Parse(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig(args[1:])
	if err != nil {
		return err
	}
	loader, err := newLoader(cfg)
	if err != nil {
		return err
	}
	b, err := loader.Load(cfg.Root)
	if err != nil {
		return err
	}

	rep, err := newService(newLogger(cfg, cmd.ErrOrStderr())).Validate(b.Sources, candidate)
	if err != nil {
		return err
	}
	err = outputters.NewOutputter(cfg).WithWriter(cmd.OutOrStdout()).Emit(func(f output.Formatter) error {
		return f.FormatCompatibility(output.Compatibility{Bundle: b.Name, CompatibilityReport: rep})
	})
	if err != nil {
		return err
	}
	if !rep.Compatible {
		return errCheckFailed
	}
	return nil
}
