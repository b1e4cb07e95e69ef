package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultPageCacheTTL = 20 * time.Second
	PageCacheKeyPrefix  = "cache:page" // rendered page payloads keyed by route
)

// PageCache fronts the index listing with a short-lived full-page
// cache. Payloads are whatever the handler rendered; the cache does
// not interpret them.
type PageCache struct {
	ttl time.Duration
}

func NewPageCache(ttl time.Duration) *PageCache {
	if ttl <= 0 {
		ttl = DefaultPageCacheTTL
	}
	return &PageCache{ttl: ttl}
}

func (c *PageCache) key(route string) string {
	return fmt.Sprintf("%s:%s", PageCacheKeyPrefix, route)
}

// Get returns the cached payload and whether it was present.
func (c *PageCache) Get(ctx context.Context, route string) ([]byte, bool, error) {
	val, err := Client.Get(ctx, c.key(route)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (c *PageCache) Set(ctx context.Context, route string, payload []byte) error {
	return Client.Set(ctx, c.key(route), payload, c.ttl).Err()
}

// Clear drops every cached page. Mainly for tests and for the rare
// moment a stale index page is unacceptable.
func (c *PageCache) Clear(ctx context.Context) error {
	iter := Client.Scan(ctx, 0, c.key("*"), 0).Iterator()
	for iter.Next(ctx) {
		if err := Client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
