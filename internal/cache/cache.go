// Package cache provides a small pluggable byte cache used to keep fetched
// playlist manifests around between validation and track selection.
package cache

import (
	"fmt"
	"sync"
	"time"
)

// Cache is a key-value byte cache with TTL semantics. Implementations may be
// in-memory or backed by Redis/Valkey.
type Cache interface {
	// Get retrieves a value by key. Returns the value and true if found.
	Get(key string) ([]byte, bool)

	// Set stores a value with the given key, overwriting any existing entry.
	Set(key string, value []byte)

	// Len returns the number of entries currently in the cache.
	Len() int

	// Close releases any resources held by the cache (e.g., network
	// connections). For in-memory caches this is a no-op.
	Close() error
}

// ProviderConfig holds the configuration needed to create a cache instance.
type ProviderConfig struct {
	// Size is the maximum number of entries for LRU caches.
	Size int

	// TTL is the time-to-live for cache entries.
	TTL time.Duration

	// RedisAddress is the Redis/Valkey server address (e.g., "localhost:6379").
	RedisAddress string

	// RedisPassword is the password for the Redis/Valkey server.
	RedisPassword string

	// RedisDB is the Redis/Valkey database number.
	RedisDB int

	// Group is an optional label value used to namespace Prometheus metrics.
	// When non-empty the cache is wrapped with hit/miss instrumentation.
	Group string
}

// Provider is a constructor function that creates a Cache from config.
type Provider func(cfg ProviderConfig) (Cache, error)

var (
	mu        sync.RWMutex
	providers = make(map[string]Provider)
)

// Register registers a cache provider under the given name.
// It panics if the name is already registered or the provider is nil.
func Register(name string, p Provider) {
	mu.Lock()
	defer mu.Unlock()

	if p == nil {
		panic("cache: Register provider is nil")
	}
	if _, exists := providers[name]; exists {
		panic(fmt.Sprintf("cache: provider %q already registered", name))
	}
	providers[name] = p
}

// New creates a new Cache using the named provider and the given config.
// When cfg.Group is non-empty the cache is wrapped with Prometheus hit/miss
// counters labelled with the group name.
func New(name string, cfg ProviderConfig) (Cache, error) {
	mu.RLock()
	p, ok := providers[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("cache: unknown provider %q", name)
	}

	c, err := p(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Group != "" {
		c = newInstrumentedCache(c, cfg.Group)
	}
	return c, nil
}
