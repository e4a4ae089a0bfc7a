package cache

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"diskusi-bisnis/models"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func TestNewTagCache_NilClientIsNoop(t *testing.T) {
	c := NewTagCache(nil, time.Minute, slog.Default())
	ctx := context.Background()

	c.Set(ctx, []models.Tag{{ID: 1, Name: "marketing", Slug: "marketing"}})
	tags, ok := c.Get(ctx)

	assert.False(t, ok)
	assert.Nil(t, tags)
	assert.NotPanics(t, func() { c.Invalidate(ctx) })
}

func TestRedisTagCache_UnreachableServerDegradesToMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewTagCache(client, time.Minute, slog.Default())
	ctx := context.Background()

	assert.NotPanics(t, func() {
		c.Set(ctx, []models.Tag{{ID: 1, Name: "marketing", Slug: "marketing"}})
		c.Invalidate(ctx)
	})
	tags, ok := c.Get(ctx)
	assert.False(t, ok)
	assert.Nil(t, tags)
}
