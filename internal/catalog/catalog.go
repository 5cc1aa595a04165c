// Package catalog holds the fixed set of problem types a starter-code bundle
// can be classified into.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ProblemType is the canonical shape of a solution function's signature.
type ProblemType string

// None is the empty problem type, reported when nothing was detected.
const None ProblemType = ""

// Registered problem types.
const (
	FunctionOnlyInt    ProblemType = "function_only_int"
	FunctionOnlyArray  ProblemType = "function_only_array"
	FunctionOnlyString ProblemType = "function_only_string"
)

// DefaultFallback is returned by recommendations when nothing better is known.
const DefaultFallback = FunctionOnlyInt

// ErrUnknownProblemType is returned when a caller names a type that is not
// registered in the catalog.
var ErrUnknownProblemType = errors.New("unknown problem type")

// Descriptor describes a problem type for display.
type Descriptor struct {
	Type             ProblemType `json:"type"`
	Name             string      `json:"name"`
	Description      string      `json:"description"`
	ExampleSignature string      `json:"example_signature"`
	UseCases         []string    `json:"use_cases"`
}

// descriptors is in catalog order; aggregation tie-breaks follow it.
var descriptors = []Descriptor{
	{
		Type:             FunctionOnlyInt,
		Name:             "Integer Function",
		Description:      "Single function expecting integer arguments",
		ExampleSignature: "def solution(a: int, b: int) -> int",
		UseCases:         []string{"Arithmetic operations", "Mathematical calculations", "Number theory problems"},
	},
	{
		Type:             FunctionOnlyArray,
		Name:             "Array Function",
		Description:      "Single function expecting array input",
		ExampleSignature: "def solution(nums: List[int]) -> int",
		UseCases:         []string{"Array manipulation", "Searching and sorting", "Finding minimum or maximum elements"},
	},
	{
		Type:             FunctionOnlyString,
		Name:             "String Function",
		Description:      "Single function expecting string input",
		ExampleSignature: "def solution(word: str) -> str",
		UseCases:         []string{"String manipulation", "Palindrome checks", "Character counting"},
	},
}

// String returns the type tag, or "none" for the empty type.
func (p ProblemType) String() string {
	if p == None {
		return "none"
	}
	return string(p)
}

// IsRegistered reports whether p is part of the catalog.
func (p ProblemType) IsRegistered() bool {
	for _, d := range descriptors {
		if d.Type == p {
			return true
		}
	}
	return false
}

// Types returns every registered problem type in catalog order.
func Types() []ProblemType {
	out := make([]ProblemType, len(descriptors))
	for i, d := range descriptors {
		out[i] = d.Type
	}
	return out
}

// All returns a copy of the descriptor catalog.
func All() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	for i, d := range descriptors {
		d.UseCases = append([]string(nil), d.UseCases...)
		out[i] = d
	}
	return out
}

// Lookup returns the descriptor for p.
func Lookup(p ProblemType) (Descriptor, error) {
	for _, d := range descriptors {
		if d.Type == p {
			d.UseCases = append([]string(nil), d.UseCases...)
			return d, nil
		}
	}
	return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownProblemType, string(p))
}

// Parse converts a raw tag into a registered ProblemType.
func Parse(raw string) (ProblemType, error) {
	p := ProblemType(raw)
	if !p.IsRegistered() {
		return None, fmt.Errorf("%w: %q", ErrUnknownProblemType, raw)
	}
	return p, nil
}

// Rank returns the catalog position of p, or len(catalog) for unregistered
// types so they sort after every known type.
func Rank(p ProblemType) int {
	for i, d := range descriptors {
		if d.Type == p {
			return i
		}
	}
	return len(descriptors)
}

// MarshalJSON encodes None as null so consumers can tell "nothing
// detected" apart from a real tag.
func (p ProblemType) MarshalJSON() ([]byte, error) {
	if p == None {
		return []byte("null"), nil
	}
	return json.Marshal(string(p))
}
