package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a small byte-payload cache with per-entry TTL, used for responses
// fetched from external services (GitHub repos proxy).
// Key format: cache:<scope>:<key>
type Cache struct {
	client *redis.Client
	scope  string
	ttl    time.Duration
}

// NewCache creates a Cache for the given scope wrapping the Redis client.
func NewCache(client *redis.Client, scope string, ttl time.Duration) *Cache {
	return &Cache{client: client, scope: scope, ttl: ttl}
}

// Get returns the cached payload for key, or (nil, false, nil) on a miss.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}
	return payload, true, nil
}

// Set stores the payload under key, expiring after the cache TTL.
func (c *Cache) Set(ctx context.Context, key string, payload []byte) error {
	return c.client.Set(ctx, c.key(key), payload, c.ttl).Err()
}

func (c *Cache) key(key string) string {
	return fmt.Sprintf("cache:%s:%s", c.scope, key)
}
