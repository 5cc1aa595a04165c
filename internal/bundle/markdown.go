package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/HarshitR2004/GenCoder/internal/analyzer"
	"github.com/HarshitR2004/GenCoder/internal/catalog"
	"github.com/HarshitR2004/GenCoder/internal/patterns"
)

// ProblemFilePattern matches markdown problem files.
const ProblemFilePattern = "problem.md"

// fencedBlock captures a fenced code block's info string and body.
var fencedBlock = regexp.MustCompile("(?ms)^```[ \\t]*([A-Za-z0-9+#_-]+)[^\\n]*\\n(.*?)^```[ \\t]*$")

// LoadMarkdown reads a problem file: YAML frontmatter (title, description,
// problem_type) followed by prose and one fenced code block per language.
func (l *Loader) LoadMarkdown(path string) (Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bundle{}, fmt.Errorf("error reading %s: %w", path, err)
	}
	b, err := l.ParseMarkdown(string(data))
	if err != nil {
		return Bundle{}, fmt.Errorf("%s: %w", path, err)
	}
	b.Name = filepath.Base(path)
	b.Path = path
	return b, nil
}

// ParseMarkdown decodes a problem file. Only code blocks tagged with a
// language the pattern library knows become snippets; other blocks are
// treated as prose examples.
func (l *Loader) ParseMarkdown(content string) (Bundle, error) {
	fm, err := ParseFrontmatter(content)
	if err != nil {
		return Bundle{}, err
	}

	var b Bundle
	if raw, ok := fm.Data["problem_type"].(string); ok && raw != "" {
		pt, err := catalog.Parse(raw)
		if err != nil {
			return Bundle{}, fmt.Errorf("problem_type: %w", err)
		}
		b.DeclaredType = pt
	}

	known := make(map[string]bool)
	for _, lang := range patterns.Default().Languages() {
		known[lang] = true
	}

	b.Sources = make(analyzer.Bundle)
	for _, m := range fencedBlock.FindAllStringSubmatch(fm.Body, -1) {
		lang := Normalize(m[1])
		if !known[lang] {
			continue
		}
		if _, dup := b.Sources[lang]; dup {
			return Bundle{}, fmt.Errorf("more than one %s code block", lang)
		}
		if err := l.checkSize(lang, int64(len(m[2]))); err != nil {
			return Bundle{}, err
		}
		b.Sources[lang] = m[2]
	}

	if desc, ok := fm.Data["description"].(string); ok {
		b.Description = strings.TrimSpace(desc)
	} else {
		b.Description = strings.TrimSpace(fencedBlock.ReplaceAllString(fm.Body, ""))
	}
	return b, nil
}
