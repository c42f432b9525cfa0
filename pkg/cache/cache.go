package cache

import (
	"github.com/API4KBs/kmdp-models-sub004/errors"
)

// Cache is the memo contract shared by all strategies.
type Cache[V any] interface {
	// Get returns the value and true if the key is present.
	Get(key string) (V, bool)

	// Set stores a value. Returns true if a new entry was created, false if updated.
	Set(key string, value V) (bool, error)

	// Delete removes an entry. Returns true if the key existed.
	Delete(key string) bool

	// Clear removes all entries.
	Clear()

	// Size returns the current number of entries.
	Size() int

	// Stats returns the statistics tracker, nil for the no-op cache.
	Stats() *Statistics
}

func validateKey(key string) error {
	if key == "" {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "cache", "validateKey", "key cannot be empty")
	}
	return nil
}
