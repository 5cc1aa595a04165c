package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/HarshitR2004/GenCoder/internal/analyzer"
	"github.com/HarshitR2004/GenCoder/internal/bundle"
	"github.com/HarshitR2004/GenCoder/internal/config"
	"github.com/HarshitR2004/GenCoder/internal/recommend"
	"github.com/HarshitR2004/GenCoder/internal/schema"
)

// errCheckFailed signals a completed run whose result fails the configured
// thresholds. It sets the exit status without printing an error.
var errCheckFailed = errors.New("check failed")

// exitFunc is swapped out in tests.
var exitFunc = os.Exit

var rootCmd = &cobra.Command{
	Use:   "gencoder",
	Short: "Detect the problem type a coding problem's starter code implies",
	Long: `GenCoder reads per-language starter code for a coding problem (solution.py,
Solution.java, solution.cpp, or a JSON/YAML bundle) and works out which
solution signature shape it requires: an integer function, an array function
or a string function. It reports a confidence, a quality score and concrete
suggestions for improving the starter code.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errCheckFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		exitFunc(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("root", "r", "", "Directory or bundle file to analyze (default \".\")")
	flags.StringP("format", "f", "console", "Output format (console|json|markdown)")
	flags.StringP("output", "o", "", "Write the report to a file instead of stdout")
	flags.String("fail-on", "error", "Fail when a suggestion at this severity or above remains (error|warning|info)")
	flags.BoolP("quiet", "q", false, "Suppress console output")
	flags.BoolP("verbose", "v", false, "Show per-language verdicts")
	flags.Int("concurrency", 8, "Bundles analyzed in parallel")
	flags.Int64("max-snippet-bytes", bundle.DefaultMaxSnippetBytes, "Reject snippets larger than this")
	flags.String("fallback", "function_only_int", "Problem type recommended when detection is not confident")
	flags.Float64("min-score", 0, "Fail bundles whose quality score is below this")
	flags.String("log-level", "warn", "Log level (trace|debug|info|warn|error|disabled)")

	for key, flag := range map[string]string{
		"root":            "root",
		"format":          "format",
		"output":          "output",
		"failOn":          "fail-on",
		"quiet":           "quiet",
		"verbose":         "verbose",
		"concurrency":     "concurrency",
		"maxSnippetBytes": "max-snippet-bytes",
		"fallbackType":    "fallback",
		"minScore":        "min-score",
		"logLevel":        "log-level",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}
}

// loadConfig loads configuration, letting a positional path override root.
func loadConfig(args []string) (*config.Config, error) {
	var path string
	if len(args) > 0 {
		path = args[0]
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}
	return cfg, nil
}

// newLogger builds the stderr console logger at cfg.LogLevel.
func newLogger(cfg *config.Config, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func newService(logger zerolog.Logger) *recommend.Service {
	return recommend.New(analyzer.New(analyzer.WithLogger(logger)))
}

func newLoader(cfg *config.Config) (*bundle.Loader, error) {
	v, err := schema.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("error loading schemas: %w", err)
	}
	return bundle.NewLoader(
		bundle.WithMaxSnippetBytes(cfg.MaxSnippetBytes),
		bundle.WithValidator(v),
	), nil
}
