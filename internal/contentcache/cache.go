// Package contentcache memoizes published-content reads so the public
// pages do not hit the document store on every request. Admin writes
// invalidate the affected collection.
package contentcache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache holds per-collection snapshots with a TTL.
type Cache struct {
	c *gocache.Cache
}

func New(ttl time.Duration) *Cache {
	return &Cache{c: gocache.New(ttl, 2*ttl)}
}

// Invalidate drops the cached snapshots for the given keys.
func (c *Cache) Invalidate(keys ...string) {
	for _, k := range keys {
		c.c.Delete(k)
	}
}

// Flush drops everything.
func (c *Cache) Flush() {
	c.c.Flush()
}

// Cached wraps a fetcher so its result is served from the cache until the
// TTL lapses or the key is invalidated. Fetch failures are not cached.
func Cached[T any](c *Cache, key string, fetch func(ctx context.Context) (T, error)) func(ctx context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		if v, ok := c.c.Get(key); ok {
			return v.(T), nil
		}
		v, err := fetch(ctx)
		if err != nil {
			return v, err
		}
		c.c.SetDefault(key, v)
		return v, nil
	}
}
