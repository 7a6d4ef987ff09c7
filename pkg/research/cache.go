package research

import (
	"sync"
	"time"
)

// cacheEntry holds a cached research result with a timestamp for TTL expiry.
type cacheEntry struct {
	result    *Result
	fetchedAt time.Time
}

// cache is a thread-safe in-memory keyword cache with TTL expiration and a
// size cap. Expired entries are cleaned up lazily on get; when the cap is
// reached the oldest entry is evicted.
type cache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	ttl     time.Duration
	max     int
}

func newCache(ttl time.Duration, max int) *cache {
	return &cache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
		max:     max,
	}
}

func (c *cache) get(key string) (*Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Since(entry.fetchedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.result, true
}

func (c *cache) set(key string, result *Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.max {
		c.evictOldestLocked()
	}
	c.entries[key] = &cacheEntry{result: result, fetchedAt: time.Now()}
}

func (c *cache) evictOldestLocked() {
	var oldestKey string
	var oldestAt time.Time
	for key, entry := range c.entries {
		if oldestKey == "" || entry.fetchedAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = entry.fetchedAt
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}
