// Package bundle loads starter-code bundles from disk.
//
// A bundle is a JSON/YAML file mapping language ids to source, a markdown
// problem file with fenced code blocks, or a directory holding one starter
// file per language (solution.py, Solution.java, solution.cpp, ...).
package bundle

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/HarshitR2004/GenCoder/internal/analyzer"
	"github.com/HarshitR2004/GenCoder/internal/catalog"
	"github.com/HarshitR2004/GenCoder/internal/schema"
)

// DefaultMaxSnippetBytes caps a single snippet.
const DefaultMaxSnippetBytes = 64 * 1024

// Glob patterns for starter files and bundle files.
const (
	StarterFilePattern = "{solution,Solution}.*"
	BundleFilePattern  = "{starter,*.starter}.{json,yaml,yml}"
)

var (
	// ErrSnippetTooLarge is returned when a snippet exceeds the size cap.
	ErrSnippetTooLarge = errors.New("snippet exceeds size limit")
	// ErrNoStarterCode is returned for a directory without starter files.
	ErrNoStarterCode = errors.New("no starter code found")
)

// Bundle is a loaded bundle and where it came from.
type Bundle struct {
	Name    string          // path relative to the discovery root
	Path    string          // file or directory it was loaded from
	Sources analyzer.Bundle // canonical language id -> source

	// Set only for markdown problem files.
	Description  string
	DeclaredType catalog.ProblemType
}

// Loader reads bundles. The zero value is not usable; call NewLoader.
type Loader struct {
	maxBytes  int64
	validator *schema.Validator
}

// Option configures a Loader.
type Option func(*Loader)

// WithMaxSnippetBytes sets the per-snippet size cap.
func WithMaxSnippetBytes(n int64) Option {
	return func(l *Loader) { l.maxBytes = n }
}

// WithValidator validates bundle files against the bundle schema.
func WithValidator(v *schema.Validator) Option {
	return func(l *Loader) { l.validator = v }
}

// NewLoader creates a Loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{maxBytes: DefaultMaxSnippetBytes}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads a bundle from a file or a directory.
func (l *Loader) Load(path string) (Bundle, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Bundle{}, fmt.Errorf("cannot access %s: %w", path, err)
	}
	if info.IsDir() {
		return l.LoadDir(path)
	}
	if strings.EqualFold(filepath.Ext(path), ".md") {
		return l.LoadMarkdown(path)
	}
	return l.LoadFile(path)
}

// LoadFile reads a JSON or YAML bundle file. Both a flat language map and
// one nested under "starter_code" are accepted.
func (l *Loader) LoadFile(path string) (Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bundle{}, fmt.Errorf("error reading %s: %w", path, err)
	}
	sources, err := l.Parse(data)
	if err != nil {
		return Bundle{}, fmt.Errorf("%s: %w", path, err)
	}
	return Bundle{Name: filepath.Base(path), Path: path, Sources: sources}, nil
}

// Parse decodes bundle data. JSON is decoded as YAML.
func (l *Loader) Parse(data []byte) (analyzer.Bundle, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error parsing bundle: %w", err)
	}
	if nested, ok := raw["starter_code"].(map[string]any); ok {
		raw = nested
	}

	normalized := make(map[string]any, len(raw))
	for key, value := range raw {
		lang := Normalize(key)
		if _, dup := normalized[lang]; dup {
			return nil, fmt.Errorf("language %q given more than once", lang)
		}
		normalized[lang] = value
	}

	if l.validator != nil {
		if err := l.validator.ValidateBundle(normalized); err != nil {
			return nil, err
		}
	}

	out := make(analyzer.Bundle, len(normalized))
	for lang, value := range normalized {
		src, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("language %q: source must be a string, got %T", lang, value)
		}
		if err := l.checkSize(lang, int64(len(src))); err != nil {
			return nil, err
		}
		out[lang] = src
	}
	return out, nil
}

// LoadDir reads the starter files directly inside dir.
func (l *Loader) LoadDir(dir string) (Bundle, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), StarterFilePattern)
	if err != nil {
		return Bundle{}, fmt.Errorf("error evaluating pattern %s: %w", StarterFilePattern, err)
	}
	sort.Strings(matches)

	sources := make(analyzer.Bundle)
	for _, match := range matches {
		lang, ok := DetectLanguage(match)
		if !ok {
			continue
		}
		if _, dup := sources[lang]; dup {
			return Bundle{}, fmt.Errorf("%s: more than one %s starter file", dir, lang)
		}
		src, err := l.readSnippet(lang, filepath.Join(dir, match))
		if err != nil {
			return Bundle{}, err
		}
		sources[lang] = src
	}
	if len(sources) == 0 {
		return Bundle{}, fmt.Errorf("%s: %w", dir, ErrNoStarterCode)
	}
	return Bundle{Name: filepath.Base(dir), Path: dir, Sources: sources}, nil
}

// Discover finds every bundle under root: each directory holding starter
// files, each bundle file and each problem file. Results are sorted by name.
func (l *Loader) Discover(root string) ([]Bundle, error) {
	fsys := os.DirFS(root)

	dirs := make(map[string]bool)
	starters, err := doublestar.Glob(fsys, "**/"+StarterFilePattern)
	if err != nil {
		return nil, fmt.Errorf("error evaluating pattern %s: %w", StarterFilePattern, err)
	}
	for _, match := range starters {
		if _, ok := DetectLanguage(match); ok {
			dirs[filepath.Dir(match)] = true
		}
	}

	files, err := doublestar.Glob(fsys, "**/"+BundleFilePattern)
	if err != nil {
		return nil, fmt.Errorf("error evaluating pattern %s: %w", BundleFilePattern, err)
	}

	problems, err := doublestar.Glob(fsys, "**/"+ProblemFilePattern)
	if err != nil {
		return nil, fmt.Errorf("error evaluating pattern %s: %w", ProblemFilePattern, err)
	}

	var out []Bundle
	for _, match := range problems {
		b, err := l.LoadMarkdown(filepath.Join(root, match))
		if err != nil {
			return nil, err
		}
		b.Name = filepath.ToSlash(match)
		out = append(out, b)
	}
	for dir := range dirs {
		b, err := l.LoadDir(filepath.Join(root, dir))
		if err != nil {
			return nil, err
		}
		b.Name = filepath.ToSlash(dir)
		out = append(out, b)
	}
	for _, match := range files {
		b, err := l.LoadFile(filepath.Join(root, match))
		if err != nil {
			return nil, err
		}
		b.Name = filepath.ToSlash(match)
		out = append(out, b)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (l *Loader) readSnippet(lang, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("cannot access %s: %w", path, err)
	}
	if err := l.checkSize(lang, info.Size()); err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", path, err)
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return "", fmt.Errorf("file appears to be binary, not text: %s", path)
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}

func (l *Loader) checkSize(lang string, n int64) error {
	if l.maxBytes > 0 && n > l.maxBytes {
		return fmt.Errorf("%s: %d bytes, limit %d: %w", lang, n, l.maxBytes, ErrSnippetTooLarge)
	}
	return nil
}
