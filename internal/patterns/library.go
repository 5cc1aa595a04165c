// Package patterns is the static signature pattern library: per-language
// regex rules that map starter-code text to a problem type.
//
// The rule table is embedded, validated against the rules CUE schema and
// compiled once. A Library is immutable after Load and safe for concurrent use.
package patterns

import (
	_ "embed"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/HarshitR2004/GenCoder/internal/catalog"
	"github.com/HarshitR2004/GenCoder/internal/schema"
)

//go:embed rules.yaml
var rulesYAML []byte

// BaseConfidence is the confidence of a rule that does not set its own.
const BaseConfidence = 0.8

// ParserPython names the Python full-syntax parser.
const ParserPython = "python"

// Rule is one static fact: this pattern, found in this language's code,
// signals this problem type.
type Rule struct {
	Language   string
	Pattern    string
	Type       catalog.ProblemType
	Confidence float64
	Note       string

	re *regexp.Regexp
}

// Match reports whether the rule's pattern occurs anywhere in source.
func (r Rule) Match(source string) bool {
	return r.re.MatchString(source)
}

// Language groups the ordered rules of one language.
type Language struct {
	Name   string
	Parser string
	Rules  []Rule
}

// Library is an immutable lookup of language -> ordered rules.
type Library struct {
	languages map[string]Language
}

type ruleFile struct {
	Version   int                     `yaml:"version"`
	Languages map[string]languageFile `yaml:"languages"`
}

type languageFile struct {
	Parser string     `yaml:"parser"`
	Rules  []ruleSpec `yaml:"rules"`
}

type ruleSpec struct {
	Pattern    string  `yaml:"pattern"`
	Type       string  `yaml:"type"`
	Confidence float64 `yaml:"confidence"`
	Note       string  `yaml:"note"`
}

var defaultLibrary = sync.OnceValues(func() (*Library, error) {
	v, err := schema.NewValidator()
	if err != nil {
		return nil, err
	}
	return Load(rulesYAML, v)
})

// Default returns the compiled-in library. The embedded table is part of
// the binary, so a load failure is a programmer error and panics.
func Default() *Library {
	lib, err := defaultLibrary()
	if err != nil {
		panic(fmt.Sprintf("patterns: embedded rule table is invalid: %v", err))
	}
	return lib
}

// Load parses, validates and compiles a YAML rule table.
func Load(data []byte, validator *schema.Validator) (*Library, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error parsing rule table: %w", err)
	}
	if validator != nil {
		if err := validator.ValidateRules(raw); err != nil {
			return nil, err
		}
	}

	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error decoding rule table: %w", err)
	}

	lib := &Library{languages: make(map[string]Language, len(file.Languages))}
	for name, lf := range file.Languages {
		lang := Language{
			Name:   strings.ToLower(name),
			Parser: lf.Parser,
			Rules:  make([]Rule, 0, len(lf.Rules)),
		}
		for i, spec := range lf.Rules {
			rule, err := compileRule(lang.Name, spec)
			if err != nil {
				return nil, fmt.Errorf("%s rule %d: %w", lang.Name, i, err)
			}
			lang.Rules = append(lang.Rules, rule)
		}
		lib.languages[lang.Name] = lang
	}
	return lib, nil
}

func compileRule(language string, spec ruleSpec) (Rule, error) {
	pt, err := catalog.Parse(spec.Type)
	if err != nil {
		return Rule{}, err
	}
	re, err := regexp.Compile("(?im)" + spec.Pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("invalid pattern %q: %w", spec.Pattern, err)
	}
	confidence := spec.Confidence
	if confidence == 0 {
		confidence = BaseConfidence
	}
	return Rule{
		Language:   language,
		Pattern:    spec.Pattern,
		Type:       pt,
		Confidence: confidence,
		Note:       spec.Note,
		re:         re,
	}, nil
}

// Rules returns a copy of the ordered rules registered for language.
func (l *Library) Rules(language string) []Rule {
	lang, ok := l.languages[language]
	if !ok {
		return nil
	}
	return append([]Rule(nil), lang.Rules...)
}

// Parser returns the full-syntax parser available for language, or "".
func (l *Library) Parser(language string) string {
	return l.languages[language].Parser
}

// Languages returns every language with registered rules, sorted.
func (l *Library) Languages() []string {
	out := make([]string, 0, len(l.languages))
	for name := range l.languages {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
