package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/HarshitR2004/GenCoder/internal/catalog"
	"github.com/HarshitR2004/GenCoder/internal/check"
)

// MarkdownFormatter formats output as Markdown
type MarkdownFormatter struct {
	w       io.Writer
	verbose bool
}

// NewMarkdownFormatter creates a new MarkdownFormatter
func NewMarkdownFormatter(w io.Writer, verbose bool) *MarkdownFormatter {
	return &MarkdownFormatter{w: w, verbose: verbose}
}

// Format writes a report with a summary table and one section per bundle.
func (f *MarkdownFormatter) Format(res *check.Result) error {
	var b strings.Builder

	b.WriteString("# GenCoder Report\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Count |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| Bundles | %d |\n", res.TotalBundles)
	fmt.Fprintf(&b, "| Errors | %d |\n", res.TotalErrors)
	fmt.Fprintf(&b, "| Warnings | %d |\n", res.TotalWarnings)
	fmt.Fprintf(&b, "| Info | %d |\n", res.TotalInfos)
	if res.BaselineIgnored > 0 {
		fmt.Fprintf(&b, "| Baseline ignored | %d |\n", res.BaselineIgnored)
	}
	b.WriteString("\n")

	b.WriteString("## Bundles\n\n")
	if res.TotalBundles == 0 {
		b.WriteString("*No starter code found.*\n\n")
	}
	for _, br := range res.Bundles {
		rep := br.Report
		fmt.Fprintf(&b, "### %s\n\n", br.Name)
		fmt.Fprintf(&b, "Status: %s\n\n", statusEmoji(!br.Failed))
		fmt.Fprintf(&b, "Detected: `%s` (%s), confidence %.0f%%\n\n", rep.Type, displayName(rep.Type), rep.Confidence*100)
		fmt.Fprintf(&b, "Quality: %.1f/100, **%s** - %s\n\n", rep.Quality.Score, rep.Quality.Level, rep.Quality.Description)
		if c := br.Compatibility; c != nil {
			fmt.Fprintf(&b, "Declared: `%s` %s\n\n", c.SpecifiedType, statusEmoji(c.Compatible))
		}
		if br.DescriptionHint != "" {
			fmt.Fprintf(&b, "Description suggests: `%s`\n\n", br.DescriptionHint)
		}

		if f.verbose && len(rep.Verdicts) > 0 {
			b.WriteString("| Language | Type | Confidence | Method |\n")
			b.WriteString("|----------|------|------------|--------|\n")
			for _, lang := range rep.Languages() {
				v := rep.Verdicts[lang]
				fmt.Fprintf(&b, "| %s | `%s` | %.2f | %s |\n", lang, v.Type, v.Confidence, v.Provenance)
			}
			b.WriteString("\n")
		}

		if len(rep.Suggestions) > 0 {
			b.WriteString("#### Suggestions\n\n")
			for _, s := range rep.Suggestions {
				fmt.Fprintf(&b, "- **%s** `[%s]` - %s\n", s.Kind, s.Severity, s.Message)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("## Conclusion\n\n")
	if res.Failed {
		failed := 0
		for _, br := range res.Bundles {
			if br.Failed {
				failed++
			}
		}
		fmt.Fprintf(&b, "✗ %d bundles failed\n", failed)
	} else {
		b.WriteString("✓ All bundles passed\n")
	}

	_, err := io.WriteString(f.w, b.String())
	return err
}

// FormatRecommendation writes a one-line recommendation.
func (f *MarkdownFormatter) FormatRecommendation(rec Recommendation) error {
	line := fmt.Sprintf("**%s**: `%s` (%s)", rec.Source, rec.Type, rec.Name)
	if rec.Confidence != nil {
		line += fmt.Sprintf(", confidence %.0f%%", *rec.Confidence*100)
	}
	if rec.Fallback {
		line += ", fallback"
	}
	_, err := fmt.Fprintln(f.w, line)
	return err
}

// FormatCompatibility writes a validation section.
func (f *MarkdownFormatter) FormatCompatibility(rep Compatibility) error {
	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n\n", rep.Bundle)
	fmt.Fprintf(&b, "Compatible: %s\n\n", statusEmoji(rep.Compatible))
	fmt.Fprintf(&b, "| Specified | Detected | Confidence |\n|-----------|----------|------------|\n| `%s` | `%s` | %.0f%% |\n\n",
		rep.SpecifiedType, rep.DetectedType, rep.Confidence*100)
	for _, s := range rep.Suggestions {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	_, err := io.WriteString(f.w, b.String())
	return err
}

// FormatTypes writes the catalog as a table.
func (f *MarkdownFormatter) FormatTypes(descriptors []catalog.Descriptor) error {
	var b strings.Builder
	b.WriteString("| Type | Name | Example | Use cases |\n")
	b.WriteString("|------|------|---------|-----------|\n")
	for _, d := range descriptors {
		fmt.Fprintf(&b, "| `%s` | %s | `%s` | %s |\n", d.Type, d.Name, d.ExampleSignature, strings.Join(d.UseCases, ", "))
	}
	_, err := io.WriteString(f.w, b.String())
	return err
}

// statusEmoji returns an emoji for the status
func statusEmoji(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}
