// Package output renders analysis results for people and machines.
package output

import (
	"github.com/HarshitR2004/GenCoder/internal/catalog"
	"github.com/HarshitR2004/GenCoder/internal/check"
	"github.com/HarshitR2004/GenCoder/internal/recommend"
)

// Formatter renders every result kind the CLI produces.
type Formatter interface {
	Format(res *check.Result) error
	FormatRecommendation(rec Recommendation) error
	FormatCompatibility(rep Compatibility) error
	FormatTypes(descriptors []catalog.Descriptor) error
}

// Recommendation is a recommended problem type and what it was based on.
type Recommendation struct {
	Source     string              `json:"source"`
	Type       catalog.ProblemType `json:"recommended_type"`
	Name       string              `json:"name"`
	Confidence *float64            `json:"confidence,omitempty"`
	Fallback   bool                `json:"used_fallback"`
}

// Compatibility is a validation report for one bundle.
type Compatibility struct {
	Bundle string `json:"bundle"`
	recommend.CompatibilityReport
}

// displayName returns the catalog name of pt, or its tag when unregistered.
func displayName(pt catalog.ProblemType) string {
	if d, err := catalog.Lookup(pt); err == nil {
		return d.Name
	}
	return pt.String()
}
