package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/API4KBs/kmdp-models-sub004/errors"
	"github.com/API4KBs/kmdp-models-sub004/metric"
)

const (
	defaultWorkers   = 4
	defaultQueueSize = 256
	metricsComponent = "worker_pool"
)

// Pool processes items of type T on a fixed set of goroutines.
type Pool[T any] struct {
	workers   int
	queueSize int
	processor func(context.Context, T) error

	workChan chan T
	metrics  *poolMetrics
	wg       sync.WaitGroup

	lifecycleMu sync.Mutex
	started     bool
	stopped     bool

	submitted atomic.Int64
	processed atomic.Int64
	failed    atomic.Int64
	dropped   atomic.Int64

	metricsRegistry *metric.MetricsRegistry
	metricsPrefix   string
}

type poolMetrics struct {
	submitted prometheus.Counter
	processed prometheus.Counter
	failed    prometheus.Counter
	dropped   prometheus.Counter
}

// Option configures a Pool.
type Option[T any] func(*Pool[T])

// WithMetricsRegistry exports the pool counters as kmdp_<prefix>_*_total.
// A nil registry or an empty prefix disables them.
func WithMetricsRegistry[T any](registry *metric.MetricsRegistry, prefix string) Option[T] {
	return func(p *Pool[T]) {
		p.metricsRegistry = registry
		p.metricsPrefix = prefix
	}
}

// NewPool creates a pool. Non-positive sizes fall back to defaults; a nil
// processor panics.
func NewPool[T any](workers, queueSize int, processor func(context.Context, T) error, opts ...Option[T]) (*Pool[T], error) {
	if workers <= 0 {
		workers = defaultWorkers
	}
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	if processor == nil {
		panic(ErrNilProcessor)
	}

	pool := &Pool[T]{
		workers:   workers,
		queueSize: queueSize,
		processor: processor,
		workChan:  make(chan T, queueSize),
	}
	for _, opt := range opts {
		opt(pool)
	}

	if pool.metricsRegistry != nil && pool.metricsPrefix != "" {
		if err := pool.initializeMetrics(); err != nil {
			return nil, errors.Wrap(err, "Pool", "NewPool", "metrics registration")
		}
	}
	return pool, nil
}

func (p *Pool[T]) initializeMetrics() error {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metric.Namespace,
			Name:      p.metricsPrefix + "_" + name,
			Help:      help,
		})
	}

	m := &poolMetrics{
		submitted: counter("submitted_total", "Total work items submitted"),
		processed: counter("processed_total", "Total work items processed"),
		failed:    counter("failed_total", "Total work items that failed processing"),
		dropped:   counter("dropped_total", "Total work items dropped due to full queue"),
	}

	for name, c := range map[string]prometheus.Counter{
		"submitted_total": m.submitted,
		"processed_total": m.processed,
		"failed_total":    m.failed,
		"dropped_total":   m.dropped,
	} {
		if err := p.metricsRegistry.RegisterCounter(metricsComponent, p.metricsPrefix+"_"+name, c); err != nil {
			return err
		}
	}

	p.metrics = m
	return nil
}

// Submit queues work without blocking.
func (p *Pool[T]) Submit(work T) error {
	p.lifecycleMu.Lock()
	defer p.lifecycleMu.Unlock()

	if !p.started {
		return ErrPoolNotStarted
	}
	if p.stopped {
		return ErrPoolStopped
	}

	select {
	case p.workChan <- work:
		p.submitted.Add(1)
		if p.metrics != nil {
			p.metrics.submitted.Inc()
		}
		return nil
	default:
		p.dropped.Add(1)
		if p.metrics != nil {
			p.metrics.dropped.Inc()
		}
		return ErrQueueFull
	}
}

// Start launches the workers. They exit when ctx is done or the pool is
// stopped.
func (p *Pool[T]) Start(ctx context.Context) error {
	p.lifecycleMu.Lock()
	defer p.lifecycleMu.Unlock()

	if p.started {
		return ErrPoolAlreadyStarted
	}

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}

	p.started = true
	return nil
}

// Stop closes the queue and waits up to timeout for queued work to finish.
func (p *Pool[T]) Stop(timeout time.Duration) error {
	p.lifecycleMu.Lock()
	defer p.lifecycleMu.Unlock()

	if !p.started || p.stopped {
		return nil
	}

	close(p.workChan)
	p.stopped = true

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-done:
		return nil
	case <-timer.C:
		return ErrStopTimeout
	}
}

// Stats returns current pool statistics
func (p *Pool[T]) Stats() PoolStats {
	return PoolStats{
		Workers:    p.workers,
		QueueSize:  p.queueSize,
		QueueDepth: len(p.workChan),
		Submitted:  p.submitted.Load(),
		Processed:  p.processed.Load(),
		Failed:     p.failed.Load(),
		Dropped:    p.dropped.Load(),
	}
}

// PoolStats represents worker pool statistics
type PoolStats struct {
	Workers    int   `json:"workers"`
	QueueSize  int   `json:"queue_size"`
	QueueDepth int   `json:"queue_depth"`
	Submitted  int64 `json:"submitted"`
	Processed  int64 `json:"processed"`
	Failed     int64 `json:"failed"`
	Dropped    int64 `json:"dropped"`
}

func (p *Pool[T]) worker(ctx context.Context) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case work, ok := <-p.workChan:
			if !ok {
				return
			}

			err := p.processor(ctx, work)
			p.processed.Add(1)
			if err != nil {
				p.failed.Add(1)
			}
			if p.metrics != nil {
				p.metrics.processed.Inc()
				if err != nil {
					p.metrics.failed.Inc()
				}
			}
		}
	}
}
