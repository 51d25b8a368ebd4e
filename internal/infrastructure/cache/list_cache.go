// Package cache provides response caching for expensive list endpoints.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SharpenYourSword/courtlistener/internal/pkg/config"
	"github.com/SharpenYourSword/courtlistener/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "listcache:"

// ListCache stores rendered list responses keyed by request URL. A miss
// returns (nil, false, nil).
type ListCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte) error
}

type redisListCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

type noopListCache struct{}

// NewListCache creates a redis-backed ListCache, or a no-op cache when
// caching is disabled in settings.
func NewListCache(settings config.CacheSettings, logger logger.Logger) (ListCache, error) {
	if !settings.Enabled {
		return &noopListCache{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     settings.Addr,
		Password: settings.Password,
		DB:       settings.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", settings.Addr, err)
	}

	ttl := time.Duration(settings.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &redisListCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}, nil
}

func (c *redisListCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cache entry: %w", err)
	}
	return payload, true, nil
}

func (c *redisListCache) Set(ctx context.Context, key string, payload []byte) error {
	if err := c.client.Set(ctx, keyPrefix+key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

func (c *noopListCache) Get(_ context.Context, _ string) ([]byte, bool, error) {
	return nil, false, nil
}

func (c *noopListCache) Set(_ context.Context, _ string, _ []byte) error {
	return nil
}
