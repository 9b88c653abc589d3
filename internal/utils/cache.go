package utils

import (
	"log"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheItem wraps cached data with its expiry.
type CacheItem struct {
	Data      interface{}
	ExpiresAt time.Time
}

// SiteCache is the process-wide LRU cache for data that rarely changes
// (program grid, rendered plan markdown).
type SiteCache struct {
	lruCache *lru.Cache[string, CacheItem]
}

var (
	cacheInstance *SiteCache
	cacheOnce     sync.Once
)

const cacheSize = 256

// GetCache returns the shared cache instance.
func GetCache() *SiteCache {
	cacheOnce.Do(func() {
		l, err := lru.New[string, CacheItem](cacheSize)
		if err != nil {
			log.Fatalf("Failed to create LRU cache: %v", err)
		}
		cacheInstance = &SiteCache{lruCache: l}
	})
	return cacheInstance
}

// Set stores data for ttl.
func (c *SiteCache) Set(key string, data interface{}, ttl time.Duration) {
	c.lruCache.Add(key, CacheItem{
		Data:      data,
		ExpiresAt: time.Now().Add(ttl),
	})
}

// Get returns nil when the key is missing or expired.
func (c *SiteCache) Get(key string) interface{} {
	val, ok := c.lruCache.Get(key)
	if !ok {
		return nil
	}

	if time.Now().After(val.ExpiresAt) {
		c.lruCache.Remove(key)
		return nil
	}

	return val.Data
}

// Delete drops a key.
func (c *SiteCache) Delete(key string) {
	c.lruCache.Remove(key)
}

// Purge drops everything. Tests use it to isolate cached DB reads.
func (c *SiteCache) Purge() {
	c.lruCache.Purge()
}

// Remember returns the cached value for key or calls load and caches its
// result. Errors are returned uncached.
func Remember[T any](key string, ttl time.Duration, load func() (T, error)) (T, error) {
	if cached := GetCache().Get(key); cached != nil {
		if v, ok := cached.(T); ok {
			return v, nil
		}
	}

	v, err := load()
	if err != nil {
		return v, err
	}
	GetCache().Set(key, v, ttl)
	return v, nil
}
