package cache

import (
	"sync/atomic"
)

// Statistics tracks cache counters. All methods are safe for concurrent use.
type Statistics struct {
	hits      atomic.Int64
	misses    atomic.Int64
	sets      atomic.Int64
	evictions atomic.Int64
	size      atomic.Int64
	peak      atomic.Int64
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{}
}

// Hit records a cache hit.
func (s *Statistics) Hit() { s.hits.Add(1) }

// Miss records a cache miss.
func (s *Statistics) Miss() { s.misses.Add(1) }

// Set records a set operation.
func (s *Statistics) Set() { s.sets.Add(1) }

// Eviction records an eviction.
func (s *Statistics) Eviction() { s.evictions.Add(1) }

// UpdateSize records the current number of entries.
func (s *Statistics) UpdateSize(size int) {
	n := int64(size)
	s.size.Store(n)
	for {
		peak := s.peak.Load()
		if n <= peak || s.peak.CompareAndSwap(peak, n) {
			return
		}
	}
}

// Hits returns the total number of hits.
func (s *Statistics) Hits() int64 { return s.hits.Load() }

// Misses returns the total number of misses.
func (s *Statistics) Misses() int64 { return s.misses.Load() }

// Sets returns the total number of set operations.
func (s *Statistics) Sets() int64 { return s.sets.Load() }

// Evictions returns the total number of evictions.
func (s *Statistics) Evictions() int64 { return s.evictions.Load() }

// CurrentSize returns the last recorded size.
func (s *Statistics) CurrentSize() int64 { return s.size.Load() }

// PeakSize returns the largest size recorded.
func (s *Statistics) PeakSize() int64 { return s.peak.Load() }

// HitRatio returns hits / (hits + misses), 0 when nothing was requested.
func (s *Statistics) HitRatio() float64 {
	hits := s.Hits()
	total := hits + s.Misses()
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}

// StatsSummary is a point-in-time snapshot of Statistics.
type StatsSummary struct {
	Hits        int64   `json:"hits"`
	Misses      int64   `json:"misses"`
	Sets        int64   `json:"sets"`
	Evictions   int64   `json:"evictions"`
	CurrentSize int64   `json:"current_size"`
	PeakSize    int64   `json:"peak_size"`
	HitRatio    float64 `json:"hit_ratio"`
}

// Summary returns a snapshot of all statistics.
func (s *Statistics) Summary() StatsSummary {
	return StatsSummary{
		Hits:        s.Hits(),
		Misses:      s.Misses(),
		Sets:        s.Sets(),
		Evictions:   s.Evictions(),
		CurrentSize: s.CurrentSize(),
		PeakSize:    s.PeakSize(),
		HitRatio:    s.HitRatio(),
	}
}
