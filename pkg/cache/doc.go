// Package cache provides small generic, thread-safe memo caches.
//
// Two strategies are available:
//   - simple: unbounded map, suitable when the key space is the catalogue itself
//   - lru: bounded, least recently used entries are evicted first
//
// Statistics are always collected. Prometheus metrics are optional and enabled
// with WithMetrics:
//
//	c, err := cache.New[string](cache.Config{Enabled: true, Strategy: cache.StrategyLRU, MaxSize: 512},
//	    cache.WithMetrics[string](registry, "codec_encode"))
//
// A disabled Config yields a no-op cache that always misses, so callers never
// branch on whether caching is on.
package cache
