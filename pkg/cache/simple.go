package cache

import (
	"sync"
)

// simpleCache never evicts.
type simpleCache[V any] struct {
	mu      sync.RWMutex
	items   map[string]V
	stats   *Statistics
	metrics *cacheMetrics
}

// NewSimple creates an unbounded cache.
func NewSimple[V any](options ...Option[V]) (Cache[V], error) {
	opts := applyOptions(options...)
	metrics, err := opts.buildMetrics("NewSimple")
	if err != nil {
		return nil, err
	}
	return &simpleCache[V]{
		items:   make(map[string]V),
		stats:   NewStatistics(),
		metrics: metrics,
	}, nil
}

func (c *simpleCache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	value, ok := c.items[key]
	c.mu.RUnlock()

	if ok {
		c.stats.Hit()
		c.metrics.recordHit()
	} else {
		c.stats.Miss()
		c.metrics.recordMiss()
	}
	return value, ok
}

func (c *simpleCache[V]) Set(key string, value V) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}

	c.mu.Lock()
	_, exists := c.items[key]
	c.items[key] = value
	size := len(c.items)
	c.mu.Unlock()

	c.stats.Set()
	c.stats.UpdateSize(size)
	c.metrics.recordSet()
	c.metrics.updateSize(size)
	return !exists, nil
}

func (c *simpleCache[V]) Delete(key string) bool {
	c.mu.Lock()
	_, exists := c.items[key]
	delete(c.items, key)
	size := len(c.items)
	c.mu.Unlock()

	c.stats.UpdateSize(size)
	c.metrics.updateSize(size)
	return exists
}

func (c *simpleCache[V]) Clear() {
	c.mu.Lock()
	c.items = make(map[string]V)
	c.mu.Unlock()

	c.stats.UpdateSize(0)
	c.metrics.updateSize(0)
}

func (c *simpleCache[V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *simpleCache[V]) Stats() *Statistics {
	return c.stats
}

// noopCache always misses.
type noopCache[V any] struct{}

// NewNoop creates a cache that stores nothing.
func NewNoop[V any]() Cache[V] {
	return noopCache[V]{}
}

func (noopCache[V]) Get(string) (V, bool) {
	var zero V
	return zero, false
}

func (noopCache[V]) Set(string, V) (bool, error) { return false, nil }
func (noopCache[V]) Delete(string) bool          { return false }
func (noopCache[V]) Clear()                      {}
func (noopCache[V]) Size() int                   { return 0 }
func (noopCache[V]) Stats() *Statistics          { return nil }
