package worker

import (
	"context"
	"fmt"
	"time"
)

// Job is one item of a batch with its position in the input.
type Job[T any] struct {
	Index int
	Item  T
}

// Each runs fn over items on a pool of the given size and waits for all of
// them. The returned slice holds the error of each item by index, nil when
// every item succeeded. The error return reports pool failures only.
func Each[T any](ctx context.Context, workers int, items []T,
	fn func(context.Context, Job[T]) error, opts ...Option[Job[T]]) ([]error, error) {
	if len(items) == 0 {
		return nil, nil
	}
	if workers > len(items) {
		workers = len(items)
	}

	// each index is written by exactly one worker
	errs := make([]error, len(items))
	pool, err := NewPool(workers, len(items), func(ctx context.Context, job Job[T]) error {
		errs[job.Index] = fn(ctx, job)
		return errs[job.Index]
	}, opts...)
	if err != nil {
		return nil, err
	}

	if err := pool.Start(ctx); err != nil {
		return nil, err
	}
	for i, item := range items {
		if err := pool.Submit(Job[T]{Index: i, Item: item}); err != nil {
			_ = pool.Stop(time.Second)
			return nil, fmt.Errorf("submit item %d: %w", i, err)
		}
	}
	if err := pool.Stop(time.Minute); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, err := range errs {
		if err != nil {
			return errs, nil
		}
	}
	return nil, nil
}
