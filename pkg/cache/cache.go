package cache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache stores serialized responses keyed by string.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, val string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

const defaultMemorySize = 256

// InMemoryCache is a size-bounded LRU with per-entry expiry.
type InMemoryCache struct {
	data *lru.Cache[string, item]
}

type item struct {
	val string
	exp time.Time
}

func NewInMemory() *InMemoryCache { return NewInMemorySize(defaultMemorySize) }

func NewInMemorySize(size int) *InMemoryCache {
	if size <= 0 {
		size = defaultMemorySize
	}
	// only fails on a non-positive size
	c, _ := lru.New[string, item](size)
	return &InMemoryCache{data: c}
}

func (c *InMemoryCache) Get(_ context.Context, key string) (string, bool) {
	it, ok := c.data.Get(key)
	if !ok {
		return "", false
	}
	if !it.exp.IsZero() && time.Now().After(it.exp) {
		c.data.Remove(key)
		return "", false
	}
	return it.val, true
}

func (c *InMemoryCache) Set(_ context.Context, key string, val string, ttl time.Duration) error {
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	c.data.Add(key, item{val: val, exp: exp})
	return nil
}

func (c *InMemoryCache) Delete(_ context.Context, key string) error {
	c.data.Remove(key)
	return nil
}

func (c *InMemoryCache) Len() int { return c.data.Len() }

func (c *InMemoryCache) Close() error {
	c.data.Purge()
	return nil
}
