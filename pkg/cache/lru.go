package cache

import (
	"container/list"
	"sync"

	"github.com/API4KBs/kmdp-models-sub004/errors"
)

type lruItem[V any] struct {
	key   string
	value V
}

// lruCache keeps at most capacity entries; the list front is the most
// recently used entry.
type lruCache[V any] struct {
	mu       sync.Mutex
	capacity int
	index    map[string]*list.Element
	recency  *list.List
	stats    *Statistics
	metrics  *cacheMetrics
}

// NewLRU creates a bounded cache holding at most capacity entries.
func NewLRU[V any](capacity int, options ...Option[V]) (Cache[V], error) {
	if capacity <= 0 {
		return nil, errors.WrapInvalid(errors.ErrInvalidConfig, "cache", "NewLRU", "capacity must be positive")
	}
	opts := applyOptions(options...)
	metrics, err := opts.buildMetrics("NewLRU")
	if err != nil {
		return nil, err
	}
	return &lruCache[V]{
		capacity: capacity,
		index:    make(map[string]*list.Element, capacity),
		recency:  list.New(),
		stats:    NewStatistics(),
		metrics:  metrics,
	}, nil
}

func (c *lruCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.index[key]
	if !ok {
		c.stats.Miss()
		c.metrics.recordMiss()
		var zero V
		return zero, false
	}

	c.recency.MoveToFront(el)
	c.stats.Hit()
	c.metrics.recordHit()
	return el.Value.(*lruItem[V]).value, true
}

func (c *lruCache[V]) Set(key string, value V) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.Set()
	c.metrics.recordSet()

	if el, ok := c.index[key]; ok {
		el.Value.(*lruItem[V]).value = value
		c.recency.MoveToFront(el)
		return false, nil
	}

	c.index[key] = c.recency.PushFront(&lruItem[V]{key: key, value: value})
	for len(c.index) > c.capacity {
		c.removeOldest()
	}

	c.stats.UpdateSize(len(c.index))
	c.metrics.updateSize(len(c.index))
	return true, nil
}

func (c *lruCache[V]) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.index[key]
	if !ok {
		return false
	}
	c.unlink(el)
	c.stats.UpdateSize(len(c.index))
	c.metrics.updateSize(len(c.index))
	return true
}

func (c *lruCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.index = make(map[string]*list.Element, c.capacity)
	c.recency.Init()
	c.stats.UpdateSize(0)
	c.metrics.updateSize(0)
}

func (c *lruCache[V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.index)
}

func (c *lruCache[V]) Stats() *Statistics {
	return c.stats
}

// removeOldest must be called with mu held.
func (c *lruCache[V]) removeOldest() {
	el := c.recency.Back()
	if el == nil {
		return
	}
	c.unlink(el)
	c.stats.Eviction()
	c.metrics.recordEviction()
}

func (c *lruCache[V]) unlink(el *list.Element) {
	delete(c.index, el.Value.(*lruItem[V]).key)
	c.recency.Remove(el)
}
