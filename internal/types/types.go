// Package types provides shared types used across the gencoder codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

// Suggestion is one piece of advisory feedback about a starter-code bundle.
type Suggestion struct {
	Kind     string         `json:"type"`
	Message  string         `json:"message"`
	Severity string         `json:"severity"` // error, warning, info
	Context  map[string]any `json:"context,omitempty"`
}

// Severity level constants.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Suggestion kind constants.
const (
	KindLowConfidence          = "low_confidence"
	KindMissingLanguages       = "missing_languages"
	KindInconsistentSignatures = "inconsistent_signatures"
	KindMinimalCode            = "minimal_code"
)

// Canonical language identifiers.
const (
	LangPython = "python"
	LangJava   = "java"
	LangCpp    = "cpp"
)

// ExpectedLanguages is the set every complete bundle should cover, in
// canonical iteration order.
var ExpectedLanguages = []string{LangPython, LangJava, LangCpp}

// SeverityRank orders severities so thresholds can be compared.
// Unknown severities rank below info.
func SeverityRank(severity string) int {
	switch severity {
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}
