// Package runner fans per-file analysis out over a bounded worker group.
//
// Per-file analysis is a pure function of (source, catalog), so files run in
// parallel with no coordination beyond collecting results. Results land in a
// slice indexed by input position: output order never depends on scheduling.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rustvet/rustvet/internal/engine"
	"github.com/rustvet/rustvet/internal/report"
	"github.com/rustvet/rustvet/internal/rules"
)

// FileResult is the outcome for one input file. Err and Report may both be
// meaningful: a rule fault still yields the completed report.
type FileResult struct {
	Path   string
	Report report.Report
	Err    error
}

// Options tune a Runner. The zero value works.
type Options struct {
	// Jobs bounds concurrent file analyses. 0 means GOMAXPROCS.
	Jobs int

	// Logger receives per-file progress at debug level. Nil discards.
	Logger *slog.Logger
}

// Runner analyzes batches of files against one shared catalog.
type Runner struct {
	cat    *rules.Catalog
	jobs   int
	logger *slog.Logger
}

func New(cat *rules.Catalog, opts Options) *Runner {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Runner{cat: cat, jobs: jobs, logger: logger}
}

// Run analyzes the given files. Every input path gets exactly one result in
// input order; a parse failure or read error on one file never aborts the
// others. The returned error is only for context cancellation.
func (r *Runner) Run(ctx context.Context, paths []string) ([]FileResult, error) {
	results := make([]FileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs)

	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = r.analyzeOne(ctx, p)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("run analysis batch: %w", err)
	}

	return results, nil
}

func (r *Runner) analyzeOne(ctx context.Context, path string) FileResult {
	src, err := os.ReadFile(path)
	if err != nil {
		return FileResult{Path: path, Err: fmt.Errorf("read %s: %w", path, err)}
	}

	rep, err := engine.AnalyzeFile(ctx, path, src, r.cat)
	r.logger.DebugContext(ctx, "analyzed file",
		slog.String("path", path),
		slog.Int("violations", len(rep.Violations)),
		slog.Bool("failed", err != nil),
	)

	return FileResult{Path: path, Report: rep, Err: err}
}
