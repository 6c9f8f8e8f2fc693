// Package cache defines a byte-value cache with pluggable backends
// (in-process memory or redis). Misses and backend errors collapse to
// ok=false; callers must always be able to fall through to the store.
package cache

import "time"

type Cache interface {
	Get(key string) (value []byte, ok bool)
	Set(key string, value []byte, ttl time.Duration)
	Delete(key string)
}

// Nop is a no-op cache for when caching is disabled.
type Nop struct{}

func (Nop) Get(string) ([]byte, bool)              { return nil, false }
func (Nop) Set(string, []byte, time.Duration)      {}
func (Nop) Delete(string)                          {}
