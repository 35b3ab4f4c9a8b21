package services

import (
	"context"
	"testing"
	"time"

	"salestracker/dto"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisCache(t *testing.T, ttl time.Duration) (*RedisRevenueCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisRevenueCache(rdb, ttl), mr
}

func TestRedisRevenueCache_StoresUnderGeneration(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestRedisCache(t, time.Minute)

	stamped, err := cache.Stamp(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "revenue:0:k", stamped)

	var got []int
	hit, err := cache.Get(ctx, stamped, &got)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, cache.Set(ctx, stamped, []int{31}))
	hit, err = cache.Get(ctx, stamped, &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []int{31}, got)

	mr.FastForward(2 * time.Minute)
	hit, err = cache.Get(ctx, stamped, &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisRevenueCache_SetAfterInvalidateIsUnreachable(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestRedisCache(t, time.Minute)

	before, err := cache.Stamp(ctx, "k")
	require.NoError(t, err)
	var got []int
	hit, err := cache.Get(ctx, before, &got)
	require.NoError(t, err)
	require.False(t, hit)

	require.NoError(t, cache.Invalidate(ctx))
	require.NoError(t, cache.Set(ctx, before, []int{31}))

	after, err := cache.Stamp(ctx, "k")
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
	hit, err = cache.Get(ctx, after, &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

// interleavedCache runs beforeSet once, between the aggregation reading the
// store and the result being cached.
type interleavedCache struct {
	*RedisRevenueCache
	beforeSet func()
}

func (c *interleavedCache) Set(ctx context.Context, stamped string, value any) error {
	if f := c.beforeSet; f != nil {
		c.beforeSet = nil
		f()
	}
	return c.RedisRevenueCache.Set(ctx, stamped, value)
}

func TestAggregate_WriteDuringAggregationIsNotServedFromCache(t *testing.T) {
	f := newRevenueFixture(t)
	redisCache, _ := newTestRedisCache(t, time.Minute)
	cache := &interleavedCache{RedisRevenueCache: redisCache}
	f.service = NewRevenueService(RevenueServiceOptions{DB: f.db, Cache: cache})
	sales := NewSaleService(SaleServiceOptions{DB: f.db, Invalidator: f.service})

	cache.beforeSet = func() {
		_, err := sales.Create(context.Background(), dto.CreateSaleRequest{UserID: f.bob, Amount: dec("9"), Date: "2023-01-02"})
		require.NoError(t, err)
	}

	first, err := f.aggregate(t, f.query().Build())
	require.NoError(t, err)
	assertDecimal(t, "31", first[0].TotalSaleRevenue)

	second, err := f.aggregate(t, f.query().Build())
	require.NoError(t, err)
	assertDecimal(t, "40", second[0].TotalSaleRevenue)

	third, err := f.aggregate(t, f.query().Build())
	require.NoError(t, err)
	assertDecimal(t, "40", third[0].TotalSaleRevenue)
}
