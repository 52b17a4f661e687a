package caching

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisCache struct {
	redis *redis.Client
}

func (c *redisCache) Store(ctx context.Context, key string, value any, ttl time.Duration) error {
	return c.redis.SetEx(ctx, key, value, ttl).Err()
}

// Fetch returns nil without an error on a cache miss.
func (c *redisCache) Fetch(ctx context.Context, key string) ([]byte, error) {
	value, err := c.redis.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return value, nil
}
