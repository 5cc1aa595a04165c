package bundle

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter represents parsed frontmatter data
type Frontmatter struct {
	Data map[string]any
	Body string
}

// ParseFrontmatter splits a leading "---" delimited YAML block from a
// markdown document. A document without one has empty Data.
func ParseFrontmatter(content string) (*Frontmatter, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(content, "---\n") {
		return &Frontmatter{Data: map[string]any{}, Body: content}, nil
	}

	rest := content[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return nil, fmt.Errorf("frontmatter is not closed")
	}
	block := rest[:end]
	body := strings.TrimPrefix(rest[end+len("\n---"):], "\n")

	data := map[string]any{}
	if err := yaml.Unmarshal([]byte(block), &data); err != nil {
		return nil, fmt.Errorf("error parsing frontmatter: %w", err)
	}
	if data == nil {
		data = map[string]any{}
	}
	return &Frontmatter{Data: data, Body: body}, nil
}
