// Package fanout maps a function over a slice on a fixed pool of workers.
// The task list service uses it to load every list's tasks concurrently.
package fanout

import (
	"context"
	"sync"
)

// Map calls fn for every item on at most workers goroutines (at least one)
// and returns the results in input order. The first error cancels the context
// seen by the remaining calls, stops handing out items, and is returned once
// in-flight calls finish. A canceled parent context is reported the same way.
// An empty input yields an empty non-nil slice.
func Map[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	if len(items) == 0 {
		return out, nil
	}
	workers = max(1, min(workers, len(items)))

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	next := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Go(func() {
			for i := range next {
				v, err := fn(ctx, items[i])
				if err != nil {
					cancel(err)
					continue
				}
				out[i] = v
			}
		})
	}

feed:
	for i := range items {
		select {
		case next <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(next)
	wg.Wait()

	if err := context.Cause(ctx); err != nil {
		return nil, err
	}
	return out, nil
}
