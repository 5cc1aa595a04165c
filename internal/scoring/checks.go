package scoring

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/HarshitR2004/GenCoder/internal/analyzer"
	"github.com/HarshitR2004/GenCoder/internal/types"
)

// Thresholds used by the checks.
const (
	LowConfidenceThreshold = 0.7
	MinimalCodeChars       = 20
)

// check inspects an analysis and returns zero or more suggestions.
type check func(a analyzer.Analysis, bundle analyzer.Bundle) []types.Suggestion

// checks run in this order; suggestion order follows it.
var checks = []check{
	checkLowConfidence,
	checkMissingLanguages,
	checkInconsistentSignatures,
	checkMinimalCode,
}

func checkLowConfidence(a analyzer.Analysis, _ analyzer.Bundle) []types.Suggestion {
	if a.Confidence >= LowConfidenceThreshold {
		return nil
	}
	return []types.Suggestion{{
		Kind:     types.KindLowConfidence,
		Severity: types.SeverityWarning,
		Message:  fmt.Sprintf("Detection confidence is %.0f%%; add explicit parameter type annotations so the signature is unambiguous", a.Confidence*100),
		Context:  map[string]any{"confidence": a.Confidence},
	}}
}

func checkMissingLanguages(_ analyzer.Analysis, bundle analyzer.Bundle) []types.Suggestion {
	var missing []string
	for _, lang := range types.ExpectedLanguages {
		if _, ok := bundle[lang]; !ok {
			missing = append(missing, lang)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return []types.Suggestion{{
		Kind:     types.KindMissingLanguages,
		Severity: types.SeverityInfo,
		Message:  "Add starter code for: " + strings.Join(missing, ", "),
		Context:  map[string]any{"missing_languages": missing},
	}}
}

func checkInconsistentSignatures(a analyzer.Analysis, _ analyzer.Bundle) []types.Suggestion {
	detected := a.DetectedTypes()
	if len(detected) <= 1 {
		return nil
	}
	names := make([]string, len(detected))
	for i, pt := range detected {
		names[i] = pt.String()
	}
	return []types.Suggestion{{
		Kind:     types.KindInconsistentSignatures,
		Severity: types.SeverityError,
		Message:  "Languages disagree on the solution signature: " + strings.Join(names, ", "),
		Context:  map[string]any{"detected_types": names},
	}}
}

func checkMinimalCode(_ analyzer.Analysis, bundle analyzer.Bundle) []types.Suggestion {
	langs := make([]string, 0, len(bundle))
	for lang := range bundle {
		langs = append(langs, lang)
	}

	var out []types.Suggestion
	for _, lang := range analyzer.OrderLanguages(langs) {
		n := utf8.RuneCountInString(strings.TrimSpace(bundle[lang]))
		if n >= MinimalCodeChars {
			continue
		}
		out = append(out, types.Suggestion{
			Kind:     types.KindMinimalCode,
			Severity: types.SeverityWarning,
			Message:  fmt.Sprintf("%s starter code is too short to show a solution signature", lang),
			Context:  map[string]any{"language": lang, "length": n},
		})
	}
	return out
}
