// Package baseline records known suggestions so repeated runs only report
// new ones.
package baseline

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/HarshitR2004/GenCoder/internal/types"
)

// DefaultPath is where --create-baseline writes when no path is given.
const DefaultPath = ".gencoderbaseline.json"

// Issue is one suggestion raised against one bundle.
type Issue struct {
	Bundle     string
	Suggestion types.Suggestion
}

// Baseline represents a snapshot of known issues that should be ignored
type Baseline struct {
	Version      string   `json:"version"`
	CreatedAt    string   `json:"created_at"`
	Fingerprints []string `json:"fingerprints"`
	index        map[string]bool
}

// CreateBaseline creates a new baseline from a list of issues
func CreateBaseline(issues []Issue) *Baseline {
	fingerprints := make([]string, 0, len(issues))
	index := make(map[string]bool)

	for _, issue := range issues {
		fp := fingerprint(issue)
		if !index[fp] {
			fingerprints = append(fingerprints, fp)
			index[fp] = true
		}
	}

	sort.Strings(fingerprints)

	return &Baseline{
		Version:      "1.0",
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		Fingerprints: fingerprints,
		index:        index,
	}
}

// LoadBaseline loads a baseline from a JSON file
func LoadBaseline(path string) (*Baseline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline file: %w", err)
	}

	var b Baseline
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse baseline file: %w", err)
	}

	b.index = make(map[string]bool, len(b.Fingerprints))
	for _, fp := range b.Fingerprints {
		b.index[fp] = true
	}
	return &b, nil
}

// SaveBaseline saves the baseline to a JSON file
func (b *Baseline) SaveBaseline(path string) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal baseline: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write baseline file: %w", err)
	}
	return nil
}

// IsKnown checks if an issue is in the baseline
func (b *Baseline) IsKnown(issue Issue) bool {
	if b == nil || b.index == nil {
		return false
	}
	return b.index[fingerprint(issue)]
}

// Filter drops the suggestions for bundle that the baseline already knows
// and reports how many were dropped.
func (b *Baseline) Filter(bundle string, suggestions []types.Suggestion) ([]types.Suggestion, int) {
	if b == nil {
		return suggestions, 0
	}
	kept := make([]types.Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		if b.IsKnown(Issue{Bundle: bundle, Suggestion: s}) {
			continue
		}
		kept = append(kept, s)
	}
	return kept, len(suggestions) - len(kept)
}

// fingerprint hashes bundle + kind + normalized message. Severity is left
// out so a rule changing severity does not resurface known issues.
func fingerprint(issue Issue) string {
	msg := normalizeMessage(issue.Suggestion.Message)
	data := fmt.Sprintf("%s|%s|%s", issue.Bundle, issue.Suggestion.Kind, msg)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

var (
	doubleQuoted = regexp.MustCompile(`"[^"]+"`)
	singleQuoted = regexp.MustCompile(`(^|\s)'([^']+)'(\s|$)`)
	numbers      = regexp.MustCompile(`\b\d+\b`)
)

// normalizeMessage replaces volatile values (quoted strings, numbers) with
// placeholders so similar issues share a fingerprint.
func normalizeMessage(msg string) string {
	msg = doubleQuoted.ReplaceAllString(msg, `"*"`)
	msg = singleQuoted.ReplaceAllString(msg, `$1'*'$3`)
	msg = numbers.ReplaceAllString(msg, `N`)
	return strings.Join(strings.Fields(msg), " ")
}
