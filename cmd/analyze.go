package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HarshitR2004/GenCoder/internal/bundle"
	"github.com/HarshitR2004/GenCoder/internal/check"
	"github.com/HarshitR2004/GenCoder/internal/output"
	"github.com/HarshitR2004/GenCoder/internal/outputters"
)

var (
	useBaseline    bool
	createBaseline bool
	baselinePath   string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Analyze starter code and report quality",
	Long: `Analyze classifies starter code and reports detected type, confidence,
quality score and suggestions.

path may be a bundle file (JSON or YAML), a directory of starter files, or a
tree of such directories; every bundle found is analyzed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&useBaseline, "baseline", false, "Ignore suggestions recorded in the baseline")
	analyzeCmd.Flags().BoolVar(&createBaseline, "create-baseline", false, "Record current suggestions as the baseline")
	analyzeCmd.Flags().StringVar(&baselinePath, "baseline-path", "", "Baseline file (default .gencoderbaseline.json under the root)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	logger := newLogger(cfg, cmd.ErrOrStderr())
	loader, err := newLoader(cfg)
	if err != nil {
		return err
	}

	runner := check.NewRunner(cfg, check.Options{
		UseBaseline:    useBaseline,
		CreateBaseline: createBaseline,
		BaselinePath:   baselinePath,
	}, loader, newService(logger), logger)

	var res *check.Result
	if info, statErr := os.Stat(cfg.Root); statErr == nil && !info.IsDir() {
		b, err := loader.Load(cfg.Root)
		if err != nil {
			return err
		}
		res, err = runner.RunBundles(cmd.Context(), []bundle.Bundle{b})
		if err != nil {
			return err
		}
	} else {
		res, err = runner.Run(cmd.Context())
		if err != nil {
			return fmt.Errorf("error analyzing %s: %w", cfg.Root, err)
		}
	}

	err = outputters.NewOutputter(cfg).WithWriter(cmd.OutOrStdout()).Emit(func(f output.Formatter) error {
		return f.Format(res)
	})
	if err != nil {
		return err
	}
	if res.Failed {
		return errCheckFailed
	}
	return nil
}
