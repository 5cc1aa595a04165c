// Package check analyzes every bundle under a root and decides whether the
// run passes.
package check

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/HarshitR2004/GenCoder/internal/baseline"
	"github.com/HarshitR2004/GenCoder/internal/bundle"
	"github.com/HarshitR2004/GenCoder/internal/catalog"
	"github.com/HarshitR2004/GenCoder/internal/config"
	"github.com/HarshitR2004/GenCoder/internal/recommend"
	"github.com/HarshitR2004/GenCoder/internal/types"
)

// Options holds per-run switches that are not part of Config.
type Options struct {
	UseBaseline    bool
	CreateBaseline bool
	BaselinePath   string
}

// BundleResult is one analyzed bundle.
type BundleResult struct {
	Name            string           `json:"bundle"`
	Path            string           `json:"path"`
	Report          recommend.Report `json:"analysis"`
	BaselineIgnored int              `json:"baseline_ignored,omitempty"`
	Failed          bool             `json:"failed"`

	// Set for problem files that declare a type or carry a description.
	Compatibility   *recommend.CompatibilityReport `json:"compatibility,omitempty"`
	DescriptionHint catalog.ProblemType            `json:"description_hint,omitempty"`
}

// Result holds the outcome of a run.
type Result struct {
	Bundles         []BundleResult `json:"bundles"`
	TotalBundles    int            `json:"total_bundles"`
	TotalErrors     int            `json:"total_errors"`
	TotalWarnings   int            `json:"total_warnings"`
	TotalInfos      int            `json:"total_infos"`
	BaselineIgnored int            `json:"baseline_ignored"`
	BaselineCreated string         `json:"baseline_created,omitempty"`
	Failed          bool           `json:"failed"`
}

// Runner coordinates discovery, analysis and baseline handling.
type Runner struct {
	cfg     *config.Config
	opts    Options
	loader  *bundle.Loader
	service *recommend.Service
	logger  zerolog.Logger
}

// NewRunner creates a Runner.
func NewRunner(cfg *config.Config, opts Options, loader *bundle.Loader, service *recommend.Service, logger zerolog.Logger) *Runner {
	return &Runner{
		cfg:     cfg,
		opts:    opts,
		loader:  loader,
		service: service,
		logger:  logger.With().Str("component", "check").Logger(),
	}
}

// Run discovers bundles under the configured root and analyzes them with at
// most cfg.Concurrency in flight. Results keep discovery order.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	bundles, err := r.loader.Discover(r.cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("error discovering bundles: %w", err)
	}
	r.logger.Debug().Int("bundles", len(bundles)).Str("root", r.cfg.Root).Msg("discovered bundles")
	return r.RunBundles(ctx, bundles)
}

// RunBundles analyzes already-loaded bundles.
func (r *Runner) RunBundles(ctx context.Context, bundles []bundle.Bundle) (*Result, error) {
	results := make([]BundleResult, len(bundles))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Concurrency)
	for i, b := range bundles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			br := BundleResult{
				Name:   b.Name,
				Path:   b.Path,
				Report: r.service.AnalyzeAndSuggest(b.Sources),
			}
			if b.DeclaredType != catalog.None {
				rep, err := r.service.Validate(b.Sources, b.DeclaredType)
				if err != nil {
					return fmt.Errorf("%s: %w", b.Name, err)
				}
				br.Compatibility = &rep
			}
			if b.Description != "" {
				br.DescriptionHint = r.service.FromDescription(b.Description)
			}
			results[i] = br
			r.logger.Debug().
				Str("bundle", b.Name).
				Str("type", results[i].Report.Type.String()).
				Float64("score", results[i].Report.Quality.Score).
				Msg("bundle analyzed")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return r.finish(results)
}

func (r *Runner) finish(results []BundleResult) (*Result, error) {
	baselineFile := r.resolveBaselinePath()
	res := &Result{Bundles: results, TotalBundles: len(results)}

	if r.opts.CreateBaseline {
		var issues []baseline.Issue
		for _, br := range results {
			for _, s := range br.Report.Suggestions {
				issues = append(issues, baseline.Issue{Bundle: br.Name, Suggestion: s})
			}
		}
		if err := baseline.CreateBaseline(issues).SaveBaseline(baselineFile); err != nil {
			return nil, fmt.Errorf("failed to save baseline: %w", err)
		}
		res.BaselineCreated = baselineFile
		r.tally(res, false)
		return res, nil
	}

	b, err := r.loadBaseline(baselineFile)
	if err != nil {
		r.logger.Warn().Err(err).Msg("failed to load baseline")
	}
	for i := range res.Bundles {
		br := &res.Bundles[i]
		br.Report.Suggestions, br.BaselineIgnored = b.Filter(br.Name, br.Report.Suggestions)
		res.BaselineIgnored += br.BaselineIgnored
	}
	r.tally(res, true)
	return res, nil
}

// tally counts severities and, when enforce is set, marks failing bundles.
func (r *Runner) tally(res *Result, enforce bool) {
	threshold := types.SeverityRank(r.cfg.FailOn)
	for i := range res.Bundles {
		br := &res.Bundles[i]
		for _, s := range br.Report.Suggestions {
			switch s.Severity {
			case types.SeverityError:
				res.TotalErrors++
			case types.SeverityWarning:
				res.TotalWarnings++
			case types.SeverityInfo:
				res.TotalInfos++
			}
			if enforce && types.SeverityRank(s.Severity) >= threshold {
				br.Failed = true
			}
		}
		if enforce && br.Report.Quality.Score < r.cfg.MinScore {
			br.Failed = true
		}
		if enforce && br.Compatibility != nil && !br.Compatibility.Compatible {
			br.Failed = true
		}
		if br.Failed {
			res.Failed = true
		}
	}
}

func (r *Runner) resolveBaselinePath() string {
	path := r.opts.BaselinePath
	if path == "" {
		path = baseline.DefaultPath
	}
	if filepath.IsAbs(path) {
		return path
	}
	dir := r.cfg.Root
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	return filepath.Join(dir, path)
}

// loadBaseline returns nil without error when baselines are off or the file
// does not exist yet.
func (r *Runner) loadBaseline(path string) (*baseline.Baseline, error) {
	if !r.opts.UseBaseline {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}
	return baseline.LoadBaseline(path)
}
