package app

import (
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

// BundleCache memoizes acquired bundles for a short time, so repeated
// requests for the same user and year don't hit the upstream sources.
type BundleCache struct {
	cache *lru.Cache
	ttl   time.Duration

	// now is replaceable for ttl tests.
	now func() time.Time
}

// NewBundleCache creates new BundleCache instance.
func NewBundleCache(size int, ttl time.Duration) (*BundleCache, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for bundles: %w", err)
	}

	return &BundleCache{
		cache: cache,
		ttl:   ttl,
		now:   time.Now,
	}, nil
}

// BundleCacheKey builds the cache key for one acquisition. Results of
// authenticated and unauthenticated requests are never conflated,
// since only authenticated ones can carry a contribution summary.
func BundleCacheKey(username string, year int, authenticated bool) string {
	mode := "noauth"
	if authenticated {
		mode = "auth"
	}

	return fmt.Sprintf("%s-%d-%s", username, year, mode)
}

// Get returns the cached bundle if it hasn't outlived the ttl.
// Expired entries are evicted.
func (c *BundleCache) Get(key string) (Bundle, bool) {
	val, ok := c.cache.Get(key)
	if !ok {
		return Bundle{}, false
	}

	entry := val.(bundleCacheEntry)
	if !entry.created.Add(c.ttl).After(c.now()) {
		c.cache.Remove(key)
		return Bundle{}, false
	}

	return entry.bundle, true
}

// Set stores the bundle with the current time as capture timestamp.
func (c *BundleCache) Set(key string, bundle Bundle) {
	c.cache.Add(key, bundleCacheEntry{
		created: c.now(),
		bundle:  bundle,
	})
}

type bundleCacheEntry struct {
	created time.Time
	bundle  Bundle
}
