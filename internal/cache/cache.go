// Package cache provides a small TTL cache for read-path query results.
//
// List and search queries are cached under keys derived from the user and
// the filter; any write to a user's cellar invalidates that user's prefix,
// so readers never observe a stale list for longer than one write round-trip.
package cache

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/heartmarshall/mycellar-backend/internal/config"
)

// Cache wraps an in-memory TTL store with prefix invalidation.
type Cache struct {
	store      *gocache.Cache
	defaultTTL time.Duration
}

// New creates a cache with the configured default TTL and cleanup interval.
func New(cfg config.CacheConfig) *Cache {
	return &Cache{
		store:      gocache.New(cfg.TTL, cfg.CleanupInterval),
		defaultTTL: cfg.TTL,
	}
}

// Get returns the cached value for key, if present and not expired.
func (c *Cache) Get(key string) (any, bool) {
	return c.store.Get(key)
}

// Put stores value under key with the default TTL.
func (c *Cache) Put(key string, value any) {
	c.store.Set(key, value, gocache.DefaultExpiration)
}

// PutTTL stores value under key with an explicit TTL.
func (c *Cache) PutTTL(key string, value any, ttl time.Duration) {
	c.store.Set(key, value, ttl)
}

// Delete removes a single key.
func (c *Cache) Delete(key string) {
	c.store.Delete(key)
}

// InvalidatePrefix removes every key that starts with prefix.
// go-cache has no prefix index, so this walks the item map; the cache
// holds at most a few hundred query results, which keeps the walk cheap.
func (c *Cache) InvalidatePrefix(prefix string) {
	for key := range c.store.Items() {
		if strings.HasPrefix(key, prefix) {
			c.store.Delete(key)
		}
	}
}

// Flush drops everything.
func (c *Cache) Flush() {
	c.store.Flush()
}
