package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bizdash/backend/internal/domain/billing"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const snapshotKey = "billing:catalog_snapshot"

// RedisSnapshotCache stores the catalog snapshot in Redis so invoice
// form sessions across instances see the same frozen catalog. Redis
// failures degrade to cache misses; the session service refetches from
// the repositories.
type RedisSnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisSnapshotCache connects to Redis and returns a snapshot cache
func NewRedisSnapshotCache(cfg RedisConfig, ttl time.Duration, logger *zap.Logger) (*RedisSnapshotCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisSnapshotCacheWithClient(client, ttl, logger), nil
}

// NewRedisSnapshotCacheWithClient creates a cache with an existing
// Redis client. Useful for testing or when sharing a client.
func NewRedisSnapshotCacheWithClient(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisSnapshotCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisSnapshotCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached snapshot, treating any Redis error as a miss
func (c *RedisSnapshotCache) Get(ctx context.Context) (*billing.CatalogSnapshot, bool) {
	data, err := c.client.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("snapshot cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var snap billing.CatalogSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		c.logger.Warn("snapshot cache entry corrupt, dropping", zap.Error(err))
		c.client.Del(ctx, snapshotKey)
		return nil, false
	}
	return &snap, true
}

// Set stores the snapshot with the configured TTL
func (c *RedisSnapshotCache) Set(ctx context.Context, snap *billing.CatalogSnapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		c.logger.Warn("snapshot cache marshal failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, snapshotKey, data, c.ttl).Err(); err != nil {
		c.logger.Warn("snapshot cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached snapshot
func (c *RedisSnapshotCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, snapshotKey).Err(); err != nil {
		c.logger.Warn("snapshot cache invalidate failed", zap.Error(err))
	}
}

// Close closes the Redis client
func (c *RedisSnapshotCache) Close() error {
	return c.client.Close()
}
