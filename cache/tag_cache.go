package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"diskusi-bisnis/models"

	"github.com/go-redis/redis/v8"
)

const tagListKey = "diskusi:tags:all"

// TagCache holds the public tag list. Every method is best effort: a cache
// failure is logged and reads fall back to the database.
type TagCache interface {
	Get(ctx context.Context) ([]models.Tag, bool)
	Set(ctx context.Context, tags []models.Tag)
	Invalidate(ctx context.Context)
}

// NewTagCache returns a no-op cache when client is nil.
func NewTagCache(client *redis.Client, ttl time.Duration, log *slog.Logger) TagCache {
	if client == nil {
		return noopTagCache{}
	}
	return &redisTagCache{client: client, ttl: ttl, log: log}
}

type redisTagCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

func (c *redisTagCache) Get(ctx context.Context) ([]models.Tag, bool) {
	raw, err := c.client.Get(ctx, tagListKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.WarnContext(ctx, "tag cache read failed", "error", err)
		return nil, false
	}

	var tags []models.Tag
	if err := json.Unmarshal(raw, &tags); err != nil {
		c.log.WarnContext(ctx, "tag cache entry corrupt", "error", err)
		return nil, false
	}
	return tags, true
}

func (c *redisTagCache) Set(ctx context.Context, tags []models.Tag) {
	raw, err := json.Marshal(tags)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, tagListKey, raw, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "tag cache write failed", "error", err)
	}
}

func (c *redisTagCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, tagListKey).Err(); err != nil {
		c.log.WarnContext(ctx, "tag cache invalidate failed", "error", err)
	}
}

type noopTagCache struct{}

func (noopTagCache) Get(context.Context) ([]models.Tag, bool) { return nil, false }
func (noopTagCache) Set(context.Context, []models.Tag)        {}
func (noopTagCache) Invalidate(context.Context)               {}
