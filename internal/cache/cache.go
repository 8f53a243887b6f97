package cache

import (
	"strings"
	"sync"
	"time"
)

// DefaultTTL matches the staleness window the site tolerates for listings
// and post detail reads.
const DefaultTTL = 5 * time.Minute

type entry struct {
	value    any
	storedAt time.Time
}

// Cache is an in-memory TTL store. Expired entries are evicted lazily on
// the read that finds them stale; there is no background sweep.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

type Option func(*Cache)

// WithClock replaces the time source. Tests use it to advance time past the
// TTL without sleeping.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

func New(ttl time.Duration, opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get returns the value stored under key, or false if the key is absent or
// its entry has outlived the TTL. A stale entry is removed as part of the
// miss.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}

	return e.value, true
}

// Set stores value under key, replacing any prior entry and restarting its
// TTL window.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{value: value, storedAt: c.now()}
}

// Delete removes the entry for key, if any.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// DeletePrefix removes every entry whose key starts with prefix. Matching
// is literal: DeletePrefix("blog:") also removes "blogs:all".
func (c *Cache) DeletePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

// Flush drops every entry.
func (c *Cache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
}

// Len reports the number of entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
