package subjectgraph

import (
	"sync"
	"time"
)

// DefaultCacheTTL bounds how long a computed ordering is reused before
// the content store is consulted again.
const DefaultCacheTTL = 30 * time.Second

// Cache holds the most recent sort result, keyed by content version.
// Cached data is read-only; refreshes replace the whole entry so
// concurrent readers never observe in-place mutation.
type Cache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	version string
	expires time.Time
	result  *SortResult
}

// NewCache creates a cache with the given TTL. A non-positive TTL falls
// back to DefaultCacheTTL.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{ttl: ttl, now: time.Now}
}

// Get returns the cached sort result for version, rebuilding via build
// when the entry is missing, expired, or keyed by a different version.
func (c *Cache) Get(version string, build func() *SortResult) *SortResult {
	c.mu.RLock()
	if c.result != nil && c.version == version && c.now().Before(c.expires) {
		res := c.result
		c.mu.RUnlock()
		return res
	}
	c.mu.RUnlock()

	res := build()

	c.mu.Lock()
	c.version = version
	c.expires = c.now().Add(c.ttl)
	c.result = res
	c.mu.Unlock()
	return res
}

// Invalidate drops the cached entry. Called whenever a subject's
// prerequisite list changes, e.g. after a content import.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.result = nil
	c.version = ""
	c.mu.Unlock()
}
