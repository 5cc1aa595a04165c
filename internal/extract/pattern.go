package extract

import (
	"github.com/HarshitR2004/GenCoder/internal/catalog"
	"github.com/HarshitR2004/GenCoder/internal/patterns"
)

// PatternStrategy scans a snippet against every rule of its language.
type PatternStrategy struct {
	lib *patterns.Library
}

// NewPatternStrategy creates a PatternStrategy over lib.
func NewPatternStrategy(lib *patterns.Library) *PatternStrategy {
	return &PatternStrategy{lib: lib}
}

// Name returns the strategy name.
func (s *PatternStrategy) Name() string {
	return ProvenancePattern
}

// Extract returns the type of the longest matching pattern. The pattern
// length stands in for specificity; on equal length the earlier rule wins.
func (s *PatternStrategy) Extract(language, source string) (Result, error) {
	result := Result{Provenance: ProvenancePattern}

	var best *patterns.Rule
	rules := s.lib.Rules(language)
	for i := range rules {
		rule := rules[i]
		if !rule.Match(source) {
			continue
		}
		result.Matches = append(result.Matches, Match{
			Pattern: rule.Pattern,
			Type:    rule.Type,
			Note:    rule.Note,
		})
		if best == nil || len(rule.Pattern) > len(best.Pattern) {
			best = &rules[i]
		}
	}

	if best == nil {
		result.Type = catalog.None
		return result, nil
	}
	result.Type = best.Type
	result.Confidence = best.Confidence
	return result, nil
}
