package analyzer

import (
	"math"

	"github.com/HarshitR2004/GenCoder/internal/catalog"
	"github.com/HarshitR2004/GenCoder/internal/extract"
)

const (
	// AgreementBonus is added to the mean confidence when both strategies agree.
	AgreementBonus = 0.1
	// MaxAgreementConfidence caps the agreement bonus.
	MaxAgreementConfidence = 0.95
	// DisagreementPenalty scales the syntax strategy's confidence when the
	// strategies disagree.
	DisagreementPenalty = 0.8
)

// classify merges both strategy results for one language. syn is nil when
// the language has no syntax strategy.
func classify(language string, pat extract.Result, syn *extract.Result) Verdict {
	v := Verdict{
		Language: language,
		Type:     catalog.None,
		Pattern:  pat,
		Syntax:   syn,
	}

	synDetected := syn != nil && syn.Detected()
	switch {
	case pat.Detected() && synDetected && pat.Type == syn.Type:
		agree := true
		v.Type = pat.Type
		v.Confidence = math.Min(MaxAgreementConfidence, (pat.Confidence+syn.Confidence)/2+AgreementBonus)
		v.Provenance = extract.ProvenanceCombined
		v.Agreement = &agree
	case pat.Detected() && synDetected:
		// The syntax tree is authoritative on disagreement.
		agree := false
		v.Type = syn.Type
		v.Confidence = syn.Confidence * DisagreementPenalty
		v.Provenance = syn.Provenance
		v.Agreement = &agree
	case synDetected:
		v.Type = syn.Type
		v.Confidence = syn.Confidence
		v.Provenance = syn.Provenance
	case pat.Detected():
		v.Type = pat.Type
		v.Confidence = pat.Confidence
		v.Provenance = pat.Provenance
	}
	return v
}
