package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/fyyurhq/fyyur-api/internal/config"
)

// AvailabilityCache keeps serialized availability payloads in redis for a
// short TTL. A nil receiver or a dead redis disables caching instead of
// failing reads.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAvailabilityCache returns nil when caching is disabled or redis is
// unreachable at startup; callers treat nil as "no cache".
func NewAvailabilityCache(cfg *config.Config) *AvailabilityCache {
	if !cfg.CacheEnable {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logrus.WithError(err).Warn("redis unavailable, availability cache disabled")
		return nil
	}

	return &AvailabilityCache{client: client, ttl: cfg.CacheTTL}
}

func key(artistID uint) string {
	return fmt.Sprintf("availability:artist:%d", artistID)
}

func (c *AvailabilityCache) Get(ctx context.Context, artistID uint, out any) bool {
	if c == nil {
		return false
	}

	raw, err := c.client.Get(ctx, key(artistID)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (c *AvailabilityCache) Set(ctx context.Context, artistID uint, value any) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key(artistID), raw, c.ttl).Err(); err != nil {
		logrus.WithError(err).Debug("availability cache set failed")
	}
}

// Invalidate drops the cached payload after an artist edit or delete so
// stale windows are never served past the write.
func (c *AvailabilityCache) Invalidate(ctx context.Context, artistID uint) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, key(artistID)).Err(); err != nil {
		logrus.WithError(err).Debug("availability cache invalidate failed")
	}
}
