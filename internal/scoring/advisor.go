// Package scoring rates how well a starter-code bundle communicates its
// problem type and suggests fixes.
package scoring

import (
	"math"

	"github.com/HarshitR2004/GenCoder/internal/analyzer"
	"github.com/HarshitR2004/GenCoder/internal/types"
)

// Advise scores an analysis of bundle and collects ordered suggestions.
// The bundle is consulted for missing and minimal snippets, which the
// analysis itself does not record.
func Advise(a analyzer.Analysis, bundle analyzer.Bundle) QualityReport {
	suggestions := []types.Suggestion{}
	for _, c := range checks {
		suggestions = append(suggestions, c(a, bundle)...)
	}

	score := a.Confidence * 100
	for _, s := range suggestions {
		score -= penalty(s.Severity)
	}
	if a.LanguagesAnalyzed >= CoverageLanguages {
		score += CoverageBonus
	}
	score = math.Round(math.Max(0, math.Min(100, score))*100) / 100

	level := LevelFromScore(score)
	return QualityReport{
		Score:       score,
		Level:       level,
		Description: DescribeLevel(level),
		Suggestions: suggestions,
	}
}
