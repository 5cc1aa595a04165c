package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/HarshitR2004/GenCoder/internal/catalog"
	"github.com/HarshitR2004/GenCoder/internal/output"
	"github.com/HarshitR2004/GenCoder/internal/outputters"
	"github.com/HarshitR2004/GenCoder/internal/recommend"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [path]",
	Short: "Recommend a problem type for one bundle",
	Long: `Recommend prints the detected problem type when the detection is confident
enough, and the fallback type (--fallback) otherwise.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecommend,
}

var describeCmd = &cobra.Command{
	Use:   "describe <text>...",
	Short: "Recommend a problem type from a problem description",
	Long: `Describe picks a problem type from keywords in a free-text problem
description. No code is inspected.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDescribe,
}

func init() {
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(describeCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
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

	svc := newService(newLogger(cfg, cmd.ErrOrStderr()))
	pt, err := svc.RecommendWithFallback(b.Sources, cfg.Fallback())
	if err != nil {
		return err
	}
	a := svc.Analyze(b.Sources)

	rec := output.Recommendation{
		Source:     b.Name,
		Type:       pt,
		Name:       typeName(pt),
		Confidence: &a.Confidence,
		Fallback:   pt != a.Type || a.Confidence <= recommend.RecommendThreshold,
	}
	return outputters.NewOutputter(cfg).WithWriter(cmd.OutOrStdout()).Emit(func(f output.Formatter) error {
		return f.FormatRecommendation(rec)
	})
}

func runDescribe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(nil)
	if err != nil {
		return err
	}
	pt := recommend.FromDescription(strings.Join(args, " "))
	rec := output.Recommendation{Source: "description", Type: pt, Name: typeName(pt)}
	return outputters.NewOutputter(cfg).WithWriter(cmd.OutOrStdout()).Emit(func(f output.Formatter) error {
		return f.FormatRecommendation(rec)
	})
}

func typeName(pt catalog.ProblemType) string {
	d, err := catalog.Lookup(pt)
	if err != nil {
		return pt.String()
	}
	return d.Name
}
