package cache

import (
	"fmt"

	"github.com/API4KBs/kmdp-models-sub004/errors"
)

// Strategy defines the eviction strategy for the cache.
type Strategy string

const (
	// StrategySimple uses no eviction policy.
	StrategySimple Strategy = "simple"

	// StrategyLRU evicts the least recently used entry once MaxSize is reached.
	StrategyLRU Strategy = "lru"
)

// Config contains configuration for cache creation.
type Config struct {
	Enabled  bool     `json:"enabled" mapstructure:"enabled"`
	Strategy Strategy `json:"strategy" mapstructure:"strategy"`
	MaxSize  int      `json:"max_size" mapstructure:"max_size"`
}

// DefaultConfig returns a default cache configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:  true,
		Strategy: StrategyLRU,
		MaxSize:  1024,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}

	switch c.Strategy {
	case StrategySimple:
	case StrategyLRU:
		if c.MaxSize <= 0 {
			return errors.WrapInvalid(errors.ErrInvalidConfig, "cache", "Validate",
				fmt.Sprintf("max_size must be positive for LRU cache, got %d", c.MaxSize))
		}
	default:
		return errors.WrapInvalid(errors.ErrInvalidConfig, "cache", "Validate",
			fmt.Sprintf("unknown cache strategy: %s", c.Strategy))
	}
	return nil
}

// New creates a cache based on the provided configuration.
// Returns a no-op cache if config.Enabled is false.
func New[V any](config Config, options ...Option[V]) (Cache[V], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if !config.Enabled {
		return NewNoop[V](), nil
	}

	if config.Strategy == StrategySimple {
		return NewSimple[V](options...)
	}
	return NewLRU[V](config.MaxSize, options...)
}
