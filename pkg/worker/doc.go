// Package worker runs independent work items on a fixed number of
// goroutines.
//
// A Pool owns a bounded queue. Submit never blocks: a full queue returns
// ErrQueueFull and the item is counted as dropped. Stop closes the queue and
// waits for the workers to drain it.
//
// Statistics are always tracked with atomics. Prometheus counters are added
// when the pool is built WithMetricsRegistry.
//
// Each is the batch form used by the command line: it runs a slice of items
// through a pool sized to hold all of them and reports per-item errors in
// input order.
//
//	errs, err := worker.Each(ctx, 4, texts, func(ctx context.Context, job worker.Job[string]) error {
//	    results[job.Index] = decode(job.Item)
//	    return nil
//	})
package worker
