package benchdiff

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// CompareParallel is Compare with the per-key work fanned out across a
// bounded worker group. Per-key comparisons share nothing, so the only
// ordering obligation is the output's: rows are written into their
// lexical-key slot and the regression list is gathered afterwards in row
// order, making the result byte-identical to the sequential fold.
//
// workers <= 0 means one worker per CPU. Cancellation via ctx aborts
// remaining keys and returns the context's error.
func CompareParallel(ctx context.Context, baseline, candidate *Dataset, opts Options, workers int) (*Result, error) {
	opts = opts.withDefaults()
	keyCols, metrics, err := resolve(baseline, candidate, opts)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	oldByKey := indexByKey(baseline, keyCols)
	newByKey := indexByKey(candidate, keyCols)
	keys := unionKeys(oldByKey, newByKey)

	kinds := make([]Kind, len(metrics))
	for i, m := range metrics {
		kinds[i] = ClassifyMetric(m)
	}

	rows := make([]CaseRow, len(keys))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, k := range keys {
		i, k := i, k
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows[i] = compareCase(k, oldByKey[k], newByKey[k], baseline, candidate, metrics, kinds, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Result{
		Options:     opts,
		KeyColumns:  keyCols,
		Metrics:     metrics,
		Rows:        rows,
		Regressions: collectRegressions(rows),
	}, nil
}
