package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/HarshitR2004/GenCoder/internal/catalog"
)

// SemanticType is the inferred role of a parameter.
type SemanticType string

const (
	SemanticInt         SemanticType = "int"
	SemanticString      SemanticType = "string"
	SemanticArray       SemanticType = "array"
	SemanticStringArray SemanticType = "string_array"
	SemanticUnknown     SemanticType = "unknown"
)

// Parameter describes one parameter of a solution function.
type Parameter struct {
	Name       string       `json:"name"`
	Annotation string       `json:"annotation,omitempty"`
	Inferred   SemanticType `json:"inferred_type"`
}

// IsArrayLike reports whether t is a container type.
func (t SemanticType) IsArrayLike() bool {
	return t == SemanticArray || t == SemanticStringArray
}

var (
	stringArrayNames = []string{"words", "strings", "strs", "names", "sentences"}
	arrayFragments   = []string{"nums", "arr", "list", "numbers", "items", "values", "matrix", "grid"}
	stringFragments  = []string{"word", "text", "str", "name", "sentence", "char"}
	intNames         = map[string]bool{
		"n": true, "k": true, "m": true, "x": true, "y": true, "a": true, "b": true, "c": true,
		"num": true, "target": true, "count": true, "total": true, "limit": true, "index": true, "size": true,
	}

	stringArrayAnnotation = regexp.MustCompile(`(?i)^(typing\.)?(list|sequence|iterable|tuple)\[\s*str\b`)
	arrayAnnotation       = regexp.MustCompile(`(?i)^(typing\.)?(list|sequence|iterable|tuple)\b`)
	stringAnnotation      = regexp.MustCompile(`^str$`)
	intAnnotation         = regexp.MustCompile(`^(int|float|bool)$`)
)

// InferFromName guesses a parameter's role from its name alone.
func InferFromName(name string) SemanticType {
	lower := strings.ToLower(name)
	for _, n := range stringArrayNames {
		if lower == n {
			return SemanticStringArray
		}
	}
	for _, frag := range arrayFragments {
		if strings.Contains(lower, frag) {
			return SemanticArray
		}
	}
	if lower == "s" {
		return SemanticString
	}
	for _, frag := range stringFragments {
		if strings.Contains(lower, frag) {
			return SemanticString
		}
	}
	if intNames[lower] || utf8.RuneCountInString(lower) <= 2 {
		return SemanticInt
	}
	return SemanticUnknown
}

// InferFromAnnotation maps a rendered type annotation to a role.
func InferFromAnnotation(annotation string) SemanticType {
	a := strings.TrimSpace(annotation)
	switch {
	case a == "":
		return SemanticUnknown
	case stringArrayAnnotation.MatchString(a):
		return SemanticStringArray
	case arrayAnnotation.MatchString(a):
		return SemanticArray
	case stringAnnotation.MatchString(a):
		return SemanticString
	case intAnnotation.MatchString(a):
		return SemanticInt
	default:
		return SemanticUnknown
	}
}

// NewParameter builds a Parameter, preferring the annotation over the name.
// An annotation that names no known type falls back to the name.
func NewParameter(name, annotation string) Parameter {
	inferred := InferFromAnnotation(annotation)
	if inferred == SemanticUnknown {
		inferred = InferFromName(name)
	}
	return Parameter{Name: name, Annotation: annotation, Inferred: inferred}
}

// ClassifyParameters maps an ordered parameter list to a problem type.
func ClassifyParameters(params []Parameter) catalog.ProblemType {
	switch len(params) {
	case 0:
		return catalog.None
	case 1:
		switch t := params[0].Inferred; {
		case t.IsArrayLike():
			return catalog.FunctionOnlyArray
		case t == SemanticString:
			return catalog.FunctionOnlyString
		default:
			return catalog.FunctionOnlyInt
		}
	case 2, 3:
		allInt := true
		for _, p := range params {
			if p.Inferred != SemanticInt {
				allInt = false
				break
			}
		}
		if allInt {
			return catalog.FunctionOnlyInt
		}
	}
	return catalog.FunctionOnlyInt
}
