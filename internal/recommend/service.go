// Package recommend exposes the read-only operations callers use to pick and
// check a problem type for starter code.
package recommend

import (
	"fmt"

	"github.com/HarshitR2004/GenCoder/internal/analyzer"
	"github.com/HarshitR2004/GenCoder/internal/catalog"
	"github.com/HarshitR2004/GenCoder/internal/scoring"
	"github.com/HarshitR2004/GenCoder/internal/types"
)

// Confidence thresholds for recommendations.
const (
	RecommendThreshold    = 0.6
	ManualReviewThreshold = 0.5
)

// Report is an analysis together with its quality feedback.
type Report struct {
	analyzer.Analysis
	Quality     scoring.QualityReport `json:"overall_quality"`
	Suggestions []types.Suggestion    `json:"suggestions"`
}

// CompatibilityReport says whether a proposed type fits a bundle.
type CompatibilityReport struct {
	Compatible    bool                `json:"is_compatible"`
	Confidence    float64             `json:"confidence"`
	DetectedType  catalog.ProblemType `json:"detected_type"`
	SpecifiedType catalog.ProblemType `json:"specified_type"`
	Suggestions   []string            `json:"suggestions"`
}

// Service is the facade over the analyzer and quality advisor. It holds no
// mutable state and is safe for concurrent use.
type Service struct {
	analyzer *analyzer.Analyzer
}

// New creates a Service. A nil analyzer uses analyzer.New().
func New(a *analyzer.Analyzer) *Service {
	if a == nil {
		a = analyzer.New()
	}
	return &Service{analyzer: a}
}

// Analyze classifies a bundle.
func (s *Service) Analyze(bundle analyzer.Bundle) analyzer.Analysis {
	return s.analyzer.Analyze(bundle)
}

// AnalyzeAndSuggest classifies a bundle and rates it.
func (s *Service) AnalyzeAndSuggest(bundle analyzer.Bundle) Report {
	a := s.analyzer.Analyze(bundle)
	q := scoring.Advise(a, bundle)
	return Report{Analysis: a, Quality: q, Suggestions: q.Suggestions}
}

// Recommend returns the detected type, or catalog.DefaultFallback when the
// detection is not confident enough.
func (s *Service) Recommend(bundle analyzer.Bundle) catalog.ProblemType {
	pt, _ := s.RecommendWithFallback(bundle, catalog.DefaultFallback)
	return pt
}

// RecommendWithFallback returns the detected type when its confidence
// exceeds RecommendThreshold, else fallback.
func (s *Service) RecommendWithFallback(bundle analyzer.Bundle, fallback catalog.ProblemType) (catalog.ProblemType, error) {
	if !fallback.IsRegistered() {
		return catalog.None, fmt.Errorf("fallback %q: %w", fallback, catalog.ErrUnknownProblemType)
	}
	a := s.analyzer.Analyze(bundle)
	if a.Type != catalog.None && a.Confidence > RecommendThreshold {
		return a.Type, nil
	}
	return fallback, nil
}

// Validate checks candidate against the detected type. Incompatibility is a
// normal result; only an unregistered candidate is an error.
func (s *Service) Validate(bundle analyzer.Bundle, candidate catalog.ProblemType) (CompatibilityReport, error) {
	if !candidate.IsRegistered() {
		return CompatibilityReport{}, fmt.Errorf("candidate %q: %w", candidate, catalog.ErrUnknownProblemType)
	}

	a := s.analyzer.Analyze(bundle)
	r := CompatibilityReport{
		Compatible:    a.Type == candidate,
		Confidence:    a.Confidence,
		DetectedType:  a.Type,
		SpecifiedType: candidate,
		Suggestions:   []string{},
	}

	if !r.Compatible && a.Type != catalog.None {
		name := a.Type.String()
		if d, err := catalog.Lookup(a.Type); err == nil {
			name = d.Name
		}
		r.Suggestions = append(r.Suggestions,
			fmt.Sprintf("Starter code looks like %s (%s); consider using that problem type", a.Type, name))
	}
	if a.Confidence < ManualReviewThreshold {
		r.Suggestions = append(r.Suggestions,
			"Detection confidence is low; review the starter code manually")
	}
	return r, nil
}

// SupportedTypes returns the problem type catalog.
func (s *Service) SupportedTypes() []catalog.Descriptor {
	return catalog.All()
}
