package search

import (
	"sync"
	"time"
)

const defaultCacheTTL = 5 * time.Minute

// ResultCache memoizes complete responses keyed by query signature. It is
// process-local and purely an optimization: the service returns identical
// responses with or without it. Expiry is lazy — stale entries are dropped
// when looked up, there is no background sweeper.
type ResultCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

type cacheEntry struct {
	response  *Response
	createdAt time.Time
}

func NewResultCache() *ResultCache {
	return newResultCache(defaultCacheTTL, time.Now)
}

func newResultCache(ttl time.Duration, now func() time.Time) *ResultCache {
	return &ResultCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     now,
	}
}

// Get returns the cached response for signature, or nil if absent or
// expired. The returned response is a shared snapshot and must not be
// mutated.
func (c *ResultCache) Get(signature string) *Response {
	c.mu.RLock()
	entry, ok := c.entries[signature]
	c.mu.RUnlock()
	if !ok {
		return nil
	}

	if c.now().Sub(entry.createdAt) > c.ttl {
		c.mu.Lock()
		// Re-check under the write lock: another caller may have replaced
		// the entry since the read.
		if current, ok := c.entries[signature]; ok && current.createdAt.Equal(entry.createdAt) {
			delete(c.entries, signature)
		}
		c.mu.Unlock()
		return nil
	}

	return entry.response
}

func (c *ResultCache) Put(signature string, response *Response) {
	c.mu.Lock()
	c.entries[signature] = cacheEntry{response: response, createdAt: c.now()}
	c.mu.Unlock()
}

// Clear drops every entry, used when the underlying catalog changes.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}

// Len reports the number of entries currently held, counting expired ones
// that have not yet been looked up.
func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
