package common

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// PageCache memoizes rendered HTML fragments. Entries are keyed by post id
// plus the post's updatedAt stamp, so an edited post renders fresh without
// any explicit invalidation.
type PageCache struct {
	*cache.Cache
}

func NewPageCache(expirationTime, cleanupTime time.Duration) *PageCache {
	return &PageCache{cache.New(expirationTime, cleanupTime)}
}

func (c *PageCache) Set(key string, value any) {
	c.Cache.Set(key, value, cache.DefaultExpiration)
}

func (c *PageCache) Get(key string) (any, bool) {
	return c.Cache.Get(key)
}

func (c *PageCache) Flush() {
	c.Cache.Flush()
}

func PageKeyPost(id string, updatedAt time.Time) string {
	return "page:" + id + ":" + updatedAt.UTC().Format(time.RFC3339)
}
