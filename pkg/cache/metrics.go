package cache

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/API4KBs/kmdp-models-sub004/metric"
)

// cacheMetrics mirrors Statistics into Prometheus. A nil *cacheMetrics is
// valid and records nothing.
type cacheMetrics struct {
	hits      prometheus.Counter
	misses    prometheus.Counter
	sets      prometheus.Counter
	evictions prometheus.Counter
	size      prometheus.Gauge
}

func newCacheMetrics(registry *metric.MetricsRegistry, prefix string) (*cacheMetrics, error) {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metric.Namespace,
			Subsystem:   "cache",
			Name:        name,
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        help,
		})
	}

	m := &cacheMetrics{
		hits:      counter("hits_total", "Total number of cache hits"),
		misses:    counter("misses_total", "Total number of cache misses"),
		sets:      counter("sets_total", "Total number of cache set operations"),
		evictions: counter("evictions_total", "Total number of cache evictions"),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   metric.Namespace,
			Subsystem:   "cache",
			Name:        "size",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Current number of entries in cache",
		}),
	}

	for name, c := range map[string]prometheus.Counter{
		"cache_hits":      m.hits,
		"cache_misses":    m.misses,
		"cache_sets":      m.sets,
		"cache_evictions": m.evictions,
	} {
		if err := registry.RegisterCounter(prefix, name, c); err != nil {
			return nil, err
		}
	}
	if err := registry.RegisterGauge(prefix, "cache_size", m.size); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *cacheMetrics) recordHit() {
	if m != nil {
		m.hits.Inc()
	}
}

func (m *cacheMetrics) recordMiss() {
	if m != nil {
		m.misses.Inc()
	}
}

func (m *cacheMetrics) recordSet() {
	if m != nil {
		m.sets.Inc()
	}
}

func (m *cacheMetrics) recordEviction() {
	if m != nil {
		m.evictions.Inc()
	}
}

func (m *cacheMetrics) updateSize(size int) {
	if m != nil {
		m.size.Set(float64(size))
	}
}
