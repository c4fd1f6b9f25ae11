package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Sumatoshi-tech/pathfang/pkg/observability"
	"github.com/Sumatoshi-tech/pathfang/pkg/pathpool"
)

// Options configures a Run.
type Options struct {
	// Strategy selects the pool's child-index strategy.
	Strategy pathpool.Strategy

	// Logger receives the run summary. Nil falls back to slog.Default.
	Logger *slog.Logger

	// Metrics, when non-nil, receives intern counters for the run.
	Metrics *observability.InternMetrics
}

// Result is the outcome of one ingest run. The pool was mutated only by
// this run; it is safe to hand out for read-only use afterwards.
type Result struct {
	Pool    *pathpool.Pool[string]
	Source  string
	Paths   int
	Hits    int
	Misses  int
	Elapsed time.Duration
}

// Run drains source into a fresh pool, interning every emitted path segment
// by segment. A subnode call that finds an existing node counts as a hit;
// one that allocates counts as a miss. Shared prefixes make hits dominate
// on realistic trees.
func Run(ctx context.Context, source Source, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	strategyOpt := pathpool.WithStrategy(pathpool.StrategyHash)
	if opts.Strategy != "" {
		strategyOpt = pathpool.WithStrategy(opts.Strategy)
	}

	pool := pathpool.New("", strategyOpt)
	result := &Result{Pool: pool, Source: source.Name()}
	started := time.Now()

	sourceErr := source.EachPath(ctx, func(segments []string) error {
		result.Paths++

		id := pool.Root()
		for _, segment := range segments {
			before := pool.Len()
			id = pool.Subnode(id, segment)

			if pool.Len() > before {
				result.Misses++
			} else {
				result.Hits++
			}
		}

		return nil
	})
	if sourceErr != nil {
		return nil, fmt.Errorf("ingest %s: %w", source.Name(), sourceErr)
	}

	result.Elapsed = time.Since(started)

	if opts.Metrics != nil {
		opts.Metrics.RecordSubnodes(ctx, result.Source, int64(result.Hits), int64(result.Misses))
		opts.Metrics.RecordIngest(ctx, result.Source, result.Elapsed)
	}

	logger.InfoContext(ctx, "ingest complete",
		slog.String("source", result.Source),
		slog.Int("paths", result.Paths),
		slog.Int("interned", pool.Len()),
		slog.Int("hits", result.Hits),
		slog.Duration("elapsed", result.Elapsed),
	)

	return result, nil
}
