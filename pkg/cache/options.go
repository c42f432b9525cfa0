package cache

import (
	"github.com/API4KBs/kmdp-models-sub004/errors"
	"github.com/API4KBs/kmdp-models-sub004/metric"
)

// Option configures cache behavior.
type Option[V any] func(*cacheOptions[V])

type cacheOptions[V any] struct {
	metricsReg    *metric.MetricsRegistry
	metricsPrefix string
}

// WithMetrics exports cache statistics as Prometheus metrics labelled with
// prefix. A nil registry or empty prefix is ignored.
func WithMetrics[V any](registry *metric.MetricsRegistry, prefix string) Option[V] {
	return func(opts *cacheOptions[V]) {
		if registry != nil && prefix != "" {
			opts.metricsReg = registry
			opts.metricsPrefix = prefix
		}
	}
}

func applyOptions[V any](options ...Option[V]) *cacheOptions[V] {
	opts := &cacheOptions[V]{}
	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}
	return opts
}

func (o *cacheOptions[V]) buildMetrics(method string) (*cacheMetrics, error) {
	if o.metricsReg == nil {
		return nil, nil
	}
	m, err := newCacheMetrics(o.metricsReg, o.metricsPrefix)
	if err != nil {
		return nil, errors.Wrap(err, "cache", method, "metrics registration")
	}
	return m, nil
}
