package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
)

// NewRedis returns nil when no address is configured or the server does not
// answer a ping, so callers run without a cache instead of failing.
func NewRedis(cfg RedisConfig, log *slog.Logger) *redis.Client {
	if cfg.Addr == "" {
		log.Info("redis disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, running without cache", "addr", cfg.Addr, "error", err)
		_ = client.Close()
		return nil
	}

	log.Info("redis connected", "addr", cfg.Addr)
	return client
}
