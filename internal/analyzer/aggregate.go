package analyzer

import (
	"sort"

	"github.com/HarshitR2004/GenCoder/internal/catalog"
)

// aggregate tallies verdicts (already in aggregation order) into one
// cross-language result.
//
// The winner is the type with the highest summed confidence; ties go to the
// first type reaching the maximum in catalog order. The overall confidence
// divides the winner's sum by every analyzed language, voters or not, so
// abstaining or dissenting languages dilute it.
func aggregate(verdicts []Verdict) Analysis {
	a := Analysis{
		Type:              catalog.None,
		Verdicts:          make(map[string]Verdict, len(verdicts)),
		Votes:             make(map[catalog.ProblemType]Tally),
		LanguagesAnalyzed: len(verdicts),
	}

	for _, v := range verdicts {
		a.Verdicts[v.Language] = v
		if v.Type == catalog.None {
			continue
		}
		t := a.Votes[v.Type]
		t.Votes++
		t.TotalConfidence += v.Confidence
		a.Votes[v.Type] = t
	}

	if len(a.Votes) == 0 || a.LanguagesAnalyzed == 0 {
		return a
	}

	best := -1.0
	for _, pt := range sortedTypes(a.Votes) {
		if sum := a.Votes[pt].TotalConfidence; sum > best {
			best = sum
			a.Type = pt
		}
	}
	a.Confidence = best / float64(a.LanguagesAnalyzed)
	return a
}

// sortedTypes returns the tally's types in catalog order, unregistered
// types last in lexical order.
func sortedTypes(votes map[catalog.ProblemType]Tally) []catalog.ProblemType {
	out := make([]catalog.ProblemType, 0, len(votes))
	for pt := range votes {
		out = append(out, pt)
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := catalog.Rank(out[i]), catalog.Rank(out[j])
		if ri != rj {
			return ri < rj
		}
		return out[i] < out[j]
	})
	return out
}
