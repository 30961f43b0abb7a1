// Package parallel evaluates a batch of independent decimal expressions
// concurrently, bounded to a fixed worker count, using
// golang.org/x/sync/errgroup (spec.md's core is explicitly single-threaded
// per integer; this package sits above it, one goroutine per expression,
// never sharing a decimal.Uint across goroutines).
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is one batch expression's outcome, indexed by its position in the
// input slice so callers can report results in input order even though
// evaluation itself is unordered.
type Result struct {
	Index  int
	Output string
	Err    error
}

// EvalBatch evaluates exprs concurrently, at most `workers` at a time
// (0 means unbounded), calling eval for each expression string and
// collecting its result. EvalBatch itself never returns an error: each
// expression's failure is reported in its own Result so one malformed line
// does not abort the rest of the batch.
func EvalBatch(ctx context.Context, exprs []string, workers int, eval func(context.Context, string) (string, error)) []Result {
	results := make([]Result, len(exprs))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, expr := range exprs {
		i, expr := i, expr
		g.Go(func() error {
			out, err := eval(ctx, expr)
			results[i] = Result{Index: i, Output: out, Err: err}
			return nil // never abort the group; errors are per-result
		})
	}
	_ = g.Wait()
	return results
}
