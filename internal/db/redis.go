package db

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yigit/coursemanager/internal/config"
)

// RedisDB wraps the go-redis client used by the report cache.
type RedisDB struct {
	*redis.Client
}

// NewRedisDB connects to the configured Redis server. It returns nil, nil
// when no URL is configured.
func NewRedisDB(ctx context.Context, cfg *config.Config) (*RedisDB, error) {
	if cfg.Redis.URL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	if cfg.Redis.PoolSize > 0 {
		opts.PoolSize = cfg.Redis.PoolSize
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisDB{Client: client}, nil
}

// Health checks if the Redis connection is healthy.
func (r *RedisDB) Health(ctx context.Context) error {
	return r.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (r *RedisDB) Close() error {
	return r.Client.Close()
}
