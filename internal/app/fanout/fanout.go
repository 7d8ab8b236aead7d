// Package fanout runs a function over a batch of items with bounded
// concurrency. The turn controller uses it to write every actor changed by
// one event to the store in parallel.
package fanout

import (
	"context"
	"sync"
)

// Result is the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for each item using at most workers goroutines at a time and
// returns the results in input order. workers below 1 is treated as 1.
//
// An item still waiting for a slot when ctx is done gets ctx.Err() and fn is
// not called for it. Run blocks until every started call returns.
func Run[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	sem := make(chan struct{}, max(workers, 1))
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i].Err = ctx.Err()
				return
			}

			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return
			}
			results[i].Value, results[i].Err = fn(ctx, item)
		})
	}

	wg.Wait()
	return results
}

// Each is Run for functions with no result value. The returned slice holds
// one error (possibly nil) per item, in input order.
func Each[T any](ctx context.Context, workers int, items []T, fn func(context.Context, T) error) []error {
	results := Run(ctx, workers, items, func(ctx context.Context, item T) (struct{}, error) {
		return struct{}{}, fn(ctx, item)
	})

	errs := make([]error, len(results))
	for i, r := range results {
		errs[i] = r.Err
	}
	return errs
}
