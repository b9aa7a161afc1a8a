package fetch

import (
	"sync"
	"time"
)

// Cache stores extracted page text keyed by URL. Entries carry their own
// deadline; expiry is checked on read rather than swept in the background.
type Cache interface {
	Get(url string) (string, bool)
	Set(url, text string)
	Len() int
}

type cacheEntry struct {
	text     string
	deadline time.Time
}

// MemoryCache is an in-memory TTL cache. The entry map is guarded by a
// RWMutex and every Set replaces the whole entry, so readers never observe
// a text/deadline pair from two different writes.
type MemoryCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

// NewMemoryCache returns a cache whose entries expire ttl after being set.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Get returns the cached text for url if present and unexpired. Expired
// entries are treated as misses; the next Set overwrites them.
func (c *MemoryCache) Get(url string) (string, bool) {
	c.mu.RLock()
	entry, ok := c.entries[url]
	c.mu.RUnlock()
	if !ok || c.now().After(entry.deadline) {
		return "", false
	}
	return entry.text, true
}

// Set stores text for url with a fresh deadline.
func (c *MemoryCache) Set(url, text string) {
	c.mu.Lock()
	c.entries[url] = cacheEntry{text: text, deadline: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
