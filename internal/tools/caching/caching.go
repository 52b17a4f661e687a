package caching

import (
	"bytes"
	"compress/flate"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"
)

type Engine interface {
	Store(ctx context.Context, key string, value any, ttl time.Duration) error
	Fetch(ctx context.Context, key string) ([]byte, error)
}

// Cacher stores values as deflated json.
type Cacher struct {
	engine Engine
}

func NewRedisCache(redisClient *redis.Client) *Cacher {
	return &Cacher{
		engine: &redisCache{
			redis: redisClient,
		},
	}
}

// Key joins the prefix pieces and appends a fingerprint of payload.
func Key(payload []byte, pieces ...string) string {
	pieces = append(pieces, fmt.Sprintf("%016x", xxhash.Sum64(payload)))
	return strings.Join(pieces, ":")
}

func deflate(uncompressed []byte) ([]byte, error) {
	var buffer bytes.Buffer
	writer, _ := flate.NewWriter(&buffer, flate.BestSpeed)

	_, err := writer.Write(uncompressed)
	if err != nil {
		return nil, err
	}

	err = writer.Close()
	if err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

func inflate(compressed []byte) ([]byte, error) {
	reader := flate.NewReader(bytes.NewReader(compressed))
	defer reader.Close()

	var out bytes.Buffer
	_, err := out.ReadFrom(reader)
	if err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

func (c *Cacher) Store(ctx context.Context, key string, value any, ttl time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}

	compressed, err := deflate(encoded)
	if err != nil {
		return err
	}

	return c.engine.Store(ctx, key, compressed, ttl)
}

// Fetch reports whether destination was filled from the cache. Misses and
// broken entries both report false.
func (c *Cacher) Fetch(ctx context.Context, key string, destination any) bool {
	value, err := c.engine.Fetch(ctx, key)
	if err != nil || value == nil {
		return false
	}

	uncompressed, err := inflate(value)
	if err != nil {
		return false
	}

	return json.Unmarshal(uncompressed, destination) == nil
}
