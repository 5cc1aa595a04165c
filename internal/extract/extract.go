// Package extract turns one starter-code snippet into a problem-type signal.
//
// Two independent strategies implement Strategy: a pattern strategy that
// works for every language in the pattern library, and a full-syntax
// strategy for languages with a parser (Python). Both return a uniform
// Result so the classifier never branches per language.
package extract

import (
	"errors"
	"fmt"

	"github.com/HarshitR2004/GenCoder/internal/catalog"
)

// Provenance values recorded on results and verdicts.
const (
	ProvenancePattern  = "pattern"
	ProvenanceSyntax   = "syntax"
	ProvenanceCombined = "combined"
)

// Confidence reported by the full-syntax strategy when it detects a type.
const SyntaxConfidence = 0.9

// ErrUnsupportedLanguage is returned by a strategy that has no way to
// analyze the requested language. The strategy abstains.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// ParseError reports malformed source in a language that has a parser.
type ParseError struct {
	Language string
	Message  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s parse error: %s", e.Language, e.Message)
}

// Match is one pattern rule that matched a snippet.
type Match struct {
	Pattern string              `json:"pattern"`
	Type    catalog.ProblemType `json:"type"`
	Note    string              `json:"note,omitempty"`
}

// Result is the outcome of one strategy on one snippet.
type Result struct {
	Type       catalog.ProblemType `json:"detected_type"`
	Confidence float64             `json:"confidence"`
	Provenance string              `json:"method"`
	Matches    []Match             `json:"matches,omitempty"`
	Parameters []Parameter         `json:"parameters,omitempty"`
	Diagnostic string              `json:"diagnostic,omitempty"`
}

// Detected reports whether the strategy produced a type.
func (r Result) Detected() bool {
	return r.Type != catalog.None
}

// Strategy extracts a signal from a snippet.
type Strategy interface {
	Name() string
	Extract(language, source string) (Result, error)
}
