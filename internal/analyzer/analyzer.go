// Package analyzer classifies a starter-code bundle into a problem type.
//
// Each language is classified independently by combining the pattern and
// full-syntax extraction strategies; the per-language verdicts are then
// aggregated into one cross-language verdict. Analysis is a pure function
// of the bundle: nothing is cached and nothing is shared between calls, so
// an Analyzer is safe for concurrent use.
package analyzer

import (
	"errors"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/HarshitR2004/GenCoder/internal/catalog"
	"github.com/HarshitR2004/GenCoder/internal/extract"
	"github.com/HarshitR2004/GenCoder/internal/patterns"
	"github.com/HarshitR2004/GenCoder/internal/types"
)

// Bundle maps a language identifier to its starter code.
type Bundle map[string]string

// Verdict is one language's classification before aggregation.
type Verdict struct {
	Language   string              `json:"language"`
	Type       catalog.ProblemType `json:"detected_type"`
	Confidence float64             `json:"confidence"`
	Provenance string              `json:"method"`
	// Agreement is nil unless both strategies produced a type.
	Agreement *bool           `json:"agreement"`
	Pattern   extract.Result  `json:"regex_analysis"`
	Syntax    *extract.Result `json:"ast_analysis,omitempty"`
}

// Tally counts the votes one problem type received.
type Tally struct {
	Votes           int     `json:"votes"`
	TotalConfidence float64 `json:"total_confidence"`
}

// Analysis is the aggregated cross-language result.
type Analysis struct {
	Type              catalog.ProblemType           `json:"detected_problem_type"`
	Confidence        float64                       `json:"confidence"`
	Verdicts          map[string]Verdict            `json:"language_analysis"`
	Votes             map[catalog.ProblemType]Tally `json:"problem_type_votes"`
	LanguagesAnalyzed int                           `json:"total_languages_analyzed"`
}

// Languages returns the analyzed languages in aggregation order.
func (a Analysis) Languages() []string {
	langs := make([]string, 0, len(a.Verdicts))
	for lang := range a.Verdicts {
		langs = append(langs, lang)
	}
	return OrderLanguages(langs)
}

// DetectedTypes returns the distinct types any language voted for, in
// catalog order.
func (a Analysis) DetectedTypes() []catalog.ProblemType {
	return sortedTypes(a.Votes)
}

// Analyzer runs both strategies per language and aggregates the result.
type Analyzer struct {
	pattern extract.Strategy
	syntax  extract.Strategy
	logger  zerolog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger used for per-language diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger.With().Str("component", "analyzer").Logger()
	}
}

// WithLibrary replaces the compiled-in pattern library.
func WithLibrary(lib *patterns.Library) Option {
	return func(a *Analyzer) {
		a.pattern = extract.NewPatternStrategy(lib)
		a.syntax = extract.NewPythonStrategy(lib)
	}
}

// WithStrategies replaces both extraction strategies.
func WithStrategies(pattern, syntax extract.Strategy) Option {
	return func(a *Analyzer) {
		a.pattern = pattern
		a.syntax = syntax
	}
}

// New creates an Analyzer over the default pattern library.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(a)
	}
	if a.pattern == nil || a.syntax == nil {
		lib := patterns.Default()
		if a.pattern == nil {
			a.pattern = extract.NewPatternStrategy(lib)
		}
		if a.syntax == nil {
			a.syntax = extract.NewPythonStrategy(lib)
		}
	}
	return a
}

// Analyze classifies every non-empty snippet and aggregates the verdicts.
// Per-language failures never abort the analysis.
func (a *Analyzer) Analyze(bundle Bundle) Analysis {
	verdicts := make([]Verdict, 0, len(bundle))
	for _, lang := range OrderLanguages(bundleLanguages(bundle)) {
		v, ok := a.AnalyzeLanguage(lang, bundle[lang])
		if !ok {
			continue
		}
		verdicts = append(verdicts, v)
	}
	return aggregate(verdicts)
}

// AnalyzeLanguage classifies one snippet. It returns false when the snippet
// is empty or whitespace-only and therefore contributes nothing.
func (a *Analyzer) AnalyzeLanguage(language, source string) (Verdict, bool) {
	if strings.TrimSpace(source) == "" {
		return Verdict{}, false
	}

	pat, err := a.pattern.Extract(language, source)
	if err != nil {
		a.logger.Debug().Err(err).Str("language", language).Msg("pattern strategy abstained")
		pat = extract.Result{Type: catalog.None, Provenance: a.pattern.Name(), Diagnostic: err.Error()}
	}

	var syn *extract.Result
	res, err := a.syntax.Extract(language, source)
	var perr *extract.ParseError
	switch {
	case err == nil:
		syn = &res
	case errors.Is(err, extract.ErrUnsupportedLanguage):
		a.logger.Debug().Str("language", language).Msg("no syntax parser, pattern strategy only")
	case errors.As(err, &perr):
		a.logger.Debug().Str("language", language).Str("error", perr.Message).Msg("syntax strategy could not parse snippet")
		res.Type, res.Confidence = catalog.None, 0
		syn = &res
	default:
		a.logger.Warn().Err(err).Str("language", language).Msg("syntax strategy failed")
	}

	v := classify(language, pat, syn)
	a.logger.Debug().
		Str("language", language).
		Str("type", v.Type.String()).
		Float64("confidence", v.Confidence).
		Str("method", v.Provenance).
		Msg("language classified")
	return v, true
}

// OrderLanguages returns languages in aggregation order: the expected
// languages first (python, java, cpp), then the rest lexically.
func OrderLanguages(langs []string) []string {
	out := append([]string(nil), langs...)
	rank := func(lang string) int {
		for i, l := range types.ExpectedLanguages {
			if l == lang {
				return i
			}
		}
		return len(types.ExpectedLanguages)
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := rank(out[i]), rank(out[j])
		if ri != rj {
			return ri < rj
		}
		return out[i] < out[j]
	})
	return out
}

func bundleLanguages(bundle Bundle) []string {
	langs := make([]string, 0, len(bundle))
	for lang := range bundle {
		langs = append(langs, lang)
	}
	return langs
}
