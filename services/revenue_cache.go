package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const (
	revenueCachePrefix = "revenue"
	generationKey      = "revenue:generation"
)

// RevenueCache stores aggregation results keyed by filter. Stamp binds a
// key to the current generation; Get and Set take stamped keys, so a value
// computed before an Invalidate is stored where no later Get looks.
type RevenueCache interface {
	Stamp(ctx context.Context, key string) (string, error)
	Get(ctx context.Context, stamped string, target any) (bool, error)
	Set(ctx context.Context, stamped string, value any) error
	Invalidate(ctx context.Context) error
}

// NoopCache never hits.
type NoopCache struct{}

func (NoopCache) Stamp(_ context.Context, key string) (string, error) { return key, nil }
func (NoopCache) Get(context.Context, string, any) (bool, error)       { return false, nil }
func (NoopCache) Set(context.Context, string, any) error               { return nil }
func (NoopCache) Invalidate(context.Context) error                     { return nil }

// RedisRevenueCache keeps entries under "revenue:<generation>:<key>". Writes
// bump the generation instead of scanning for keys to delete, and stale
// generations expire through their TTL.
type RedisRevenueCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisRevenueCache(rdb *redis.Client, ttl time.Duration) *RedisRevenueCache {
	return &RedisRevenueCache{rdb: rdb, ttl: ttl}
}

func (c *RedisRevenueCache) generation(ctx context.Context) (string, error) {
	gen, err := c.rdb.Get(ctx, generationKey).Result()
	if stderrors.Is(err, redis.Nil) {
		return "0", nil
	}
	return gen, err
}

// Stamp reads the generation once; the caller reuses the result for both
// the lookup and the store of one request.
func (c *RedisRevenueCache) Stamp(ctx context.Context, key string) (string, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s:%s", revenueCachePrefix, gen, key), nil
}

func (c *RedisRevenueCache) Get(ctx context.Context, stamped string, target any) (bool, error) {
	cached, err := c.rdb.Get(ctx, stamped).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(cached, target); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisRevenueCache) Set(ctx context.Context, stamped string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, stamped, data, c.ttl).Err()
}

func (c *RedisRevenueCache) Invalidate(ctx context.Context) error {
	return c.rdb.Incr(ctx, generationKey).Err()
}
