package config

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis connects and pings the Redis backing the revenue cache.
func ConnectRedis(ctx context.Context, cfg *Config, log *slog.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Username: cfg.RedisUser,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	res, err := rdb.Ping(ctx).Result()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	log.Info("Connected to Redis", "addr", cfg.RedisAddr, "ping", res)
	return rdb, nil
}
