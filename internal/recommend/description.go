package recommend

import (
	"strings"
	"unicode"

	"github.com/HarshitR2004/GenCoder/internal/catalog"
)

// keywordSet maps problem-description keywords to a type. Sets are tried in
// order and the first set with any keyword present wins. Keywords match
// whole words or their plural; a trailing "*" matches any word with that
// stem.
type keywordSet struct {
	Type     catalog.ProblemType
	Keywords []string
}

var descriptionKeywords = []keywordSet{
	{catalog.FunctionOnlyArray, []string{
		"array", "list", "sort*", "search*", "min", "max", "minimum", "maximum",
		"minimize", "maximize", "element", "subarray", "duplicate*", "median",
	}},
	{catalog.FunctionOnlyString, []string{
		"string", "text", "palindrom*", "word", "character", "vowel",
		"substring", "anagram", "letter",
	}},
	{catalog.FunctionOnlyInt, []string{
		"sum", "add", "calculat*", "number", "multipl*", "divi*",
		"factorial", "fibonacci", "prime", "digit",
	}},
}

// FromDescription recommends a type from free text by keyword matching. It
// inspects no code and defaults to catalog.DefaultFallback.
func FromDescription(text string) catalog.ProblemType {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, set := range descriptionKeywords {
		for _, kw := range set.Keywords {
			for _, w := range words {
				if keywordMatches(w, kw) {
					return set.Type
				}
			}
		}
	}
	return catalog.DefaultFallback
}

func keywordMatches(word, kw string) bool {
	if stem, ok := strings.CutSuffix(kw, "*"); ok {
		return strings.HasPrefix(word, stem)
	}
	return word == kw || word == kw+"s" || word == kw+"es"
}

// FromDescription is the Service form of the package-level function.
func (s *Service) FromDescription(text string) catalog.ProblemType {
	return FromDescription(text)
}
