package cache

import (
	"context"
	"encoding/json"
	"time"

	dom "qbit/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "cert:"
	keyPopular = keyPrefix + "popular"
	keySearch  = keyPrefix + "search:"
)

// CertCache caches catalog search and popular results in Redis.
type CertCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCertCache returns a new CertCache.
func NewCertCache(rdb *redis.Client, ttl time.Duration) *CertCache {
	return &CertCache{rdb: rdb, ttl: ttl}
}

// GetSearch returns the cached result for a search key, or nil on a miss.
// The key is used as given; callers decide which parts are case-insensitive.
func (c *CertCache) GetSearch(ctx context.Context, key string) ([]dom.Cert, error) {
	return c.get(ctx, keySearch+key)
}

// SetSearch stores a search result.
func (c *CertCache) SetSearch(ctx context.Context, key string, list []dom.Cert) error {
	return c.set(ctx, keySearch+key, list)
}

// GetPopular returns the cached popular list, or nil on a miss.
func (c *CertCache) GetPopular(ctx context.Context) ([]dom.Cert, error) {
	return c.get(ctx, keyPopular)
}

// SetPopular stores the popular list.
func (c *CertCache) SetPopular(ctx context.Context, list []dom.Cert) error {
	return c.set(ctx, keyPopular, list)
}

// InvalidateAll drops every catalog key. Called after a catalog import.
func (c *CertCache) InvalidateAll(ctx context.Context) error {
	if err := c.rdb.Del(ctx, keyPopular).Err(); err != nil {
		return err
	}
	iter := c.rdb.Scan(ctx, 0, keySearch+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *CertCache) get(ctx context.Context, key string) ([]dom.Cert, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Cert
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *CertCache) set(ctx context.Context, key string, list []dom.Cert) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}
