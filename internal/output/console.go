package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/HarshitR2004/GenCoder/internal/catalog"
	"github.com/HarshitR2004/GenCoder/internal/check"
	"github.com/HarshitR2004/GenCoder/internal/types"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))  // yellow
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))  // gray
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// ConsoleFormatter formats output for console display
type ConsoleFormatter struct {
	w        io.Writer
	quiet    bool
	verbose  bool
	colorize bool
}

// NewConsoleFormatter creates a new ConsoleFormatter
func NewConsoleFormatter(w io.Writer, quiet, verbose, colorize bool) *ConsoleFormatter {
	return &ConsoleFormatter{w: w, quiet: quiet, verbose: verbose, colorize: colorize}
}

func (f *ConsoleFormatter) render(style lipgloss.Style, s string) string {
	if !f.colorize {
		return s
	}
	return style.Render(s)
}

// Format prints one block per bundle followed by a summary line.
func (f *ConsoleFormatter) Format(res *check.Result) error {
	if f.quiet {
		return nil
	}

	for _, br := range res.Bundles {
		rep := br.Report
		if len(rep.Suggestions) == 0 && !f.verbose && len(res.Bundles) > 1 {
			continue
		}

		status := f.render(okStyle, "✓")
		if br.Failed {
			status = f.render(errorStyle, "✗")
		}
		fmt.Fprintf(f.w, "%s %s  %s  %s  %s\n",
			status,
			f.render(boldStyle, br.Name),
			rep.Type,
			fmt.Sprintf("confidence %.0f%%", rep.Confidence*100),
			fmt.Sprintf("quality %.1f (%s)", rep.Quality.Score, rep.Quality.Level))

		if f.verbose {
			for _, lang := range rep.Languages() {
				v := rep.Verdicts[lang]
				fmt.Fprintf(f.w, "    %-8s %-22s %.2f  %s\n", lang, v.Type, v.Confidence, v.Provenance)
				if v.Syntax != nil && v.Syntax.Diagnostic != "" {
					fmt.Fprintf(f.w, "             %s\n", f.render(infoStyle, v.Syntax.Diagnostic))
				}
			}
		}
		if c := br.Compatibility; c != nil && !c.Compatible {
			fmt.Fprintf(f.w, "    %s declared %s, detected %s\n", f.render(errorStyle, "✘"), c.SpecifiedType, c.DetectedType)
		}
		if br.DescriptionHint != "" && br.DescriptionHint != rep.Type && f.verbose {
			fmt.Fprintf(f.w, "    %s description suggests %s\n", f.render(infoStyle, "💡"), br.DescriptionHint)
		}
		for _, s := range rep.Suggestions {
			f.printSuggestion(s)
		}
	}

	f.printSummary(res)
	return nil
}

func (f *ConsoleFormatter) printSuggestion(s types.Suggestion) {
	var prefix string
	var style lipgloss.Style
	switch s.Severity {
	case types.SeverityError:
		prefix, style = "    ✘ ", errorStyle
	case types.SeverityWarning:
		prefix, style = "    ⚠ ", warningStyle
	default:
		prefix, style = "    💡 ", infoStyle
	}
	fmt.Fprintf(f.w, "%s%s: %s\n", prefix, f.render(style, s.Kind), s.Message)
}

func (f *ConsoleFormatter) printSummary(res *check.Result) {
	fmt.Fprintln(f.w)
	if res.BaselineCreated != "" {
		fmt.Fprintf(f.w, "Baseline written to %s\n", res.BaselineCreated)
	}
	if res.BaselineIgnored > 0 {
		fmt.Fprintf(f.w, "%d baseline issues ignored\n", res.BaselineIgnored)
	}
	if res.TotalErrors+res.TotalWarnings+res.TotalInfos == 0 {
		fmt.Fprintf(f.w, "%s\n", f.render(okStyle.Bold(true), fmt.Sprintf("✓ %d bundles analyzed, no suggestions", res.TotalBundles)))
		return
	}
	fmt.Fprintf(f.w, "%d bundles, %d errors, %d warnings, %d info\n",
		res.TotalBundles, res.TotalErrors, res.TotalWarnings, res.TotalInfos)
}

// FormatRecommendation prints the recommended type.
func (f *ConsoleFormatter) FormatRecommendation(rec Recommendation) error {
	line := fmt.Sprintf("%s (%s)", f.render(boldStyle, string(rec.Type)), rec.Name)
	if rec.Confidence != nil {
		line += fmt.Sprintf("  confidence %.0f%%", *rec.Confidence*100)
	}
	if rec.Fallback {
		line += f.render(warningStyle, "  [fallback]")
	}
	fmt.Fprintf(f.w, "%s: %s\n", rec.Source, line)
	return nil
}

// FormatCompatibility prints a validation verdict and its suggestions.
func (f *ConsoleFormatter) FormatCompatibility(rep Compatibility) error {
	if rep.Compatible {
		fmt.Fprintf(f.w, "%s %s is compatible with %s (confidence %.0f%%)\n",
			f.render(okStyle, "✓"), rep.Bundle, rep.SpecifiedType, rep.Confidence*100)
	} else {
		fmt.Fprintf(f.w, "%s %s is not compatible with %s; detected %s (confidence %.0f%%)\n",
			f.render(errorStyle, "✗"), rep.Bundle, rep.SpecifiedType, rep.DetectedType, rep.Confidence*100)
	}
	for _, s := range rep.Suggestions {
		fmt.Fprintf(f.w, "    💡 %s\n", s)
	}
	return nil
}

// FormatTypes prints the problem type catalog.
func (f *ConsoleFormatter) FormatTypes(descriptors []catalog.Descriptor) error {
	for i, d := range descriptors {
		if i > 0 {
			fmt.Fprintln(f.w)
		}
		fmt.Fprintf(f.w, "%s  %s\n", f.render(boldStyle, string(d.Type)), d.Name)
		fmt.Fprintf(f.w, "  %s\n", d.Description)
		fmt.Fprintf(f.w, "  example:   %s\n", d.ExampleSignature)
		fmt.Fprintf(f.w, "  use cases: %s\n", strings.Join(d.UseCases, ", "))
	}
	return nil
}
