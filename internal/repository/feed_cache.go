package repository

import (
	"context"
	"time"

	"credimatch/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache is the read-through cache the feed client stores responses in.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

// FeedCache keeps bank-API feed responses in Redis so repeated matching
// runs for the same profile signature do not hammer the external API.
type FeedCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewFeedCache(cfg *config.RedisConfig, logger *zap.Logger) *FeedCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &FeedCache{
		client: client,
		ttl:    cfg.FeedTTL,
		logger: logger,
	}
}

func (c *FeedCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Feed cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return val, true
}

func (c *FeedCache) Set(ctx context.Context, key string, value []byte) {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		c.logger.Warn("Feed cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *FeedCache) Close() error {
	return c.client.Close()
}
