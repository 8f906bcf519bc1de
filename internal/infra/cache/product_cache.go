// Package cache implements the catalog read cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"dncommerce/config"
	deliverycontext "dncommerce/internal/delivery/context"
	"dncommerce/internal/domain/entity"
	"dncommerce/internal/domain/lifecycle"
	"dncommerce/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultTTL = 10 * time.Minute

// redisProductCache implements service.ProductCache with JSON values under product:{id}.
type redisProductCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// Params holds dependencies for the product cache, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewProductCache creates the Redis product cache, or a no-op cache when Redis is not configured.
func NewProductCache(params Params) service.ProductCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, product cache disabled")

		return NewNoopProductCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// An unreachable cache degrades to misses; it does not block startup.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, serving catalog from the database",
					slog.String("addr", cfg.Addr),
					slog.Any("error", err),
				)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return NewRedisProductCache(client, cfg.TTL, params.Logger)
}

// NewRedisProductCache wraps an existing client. A non-positive ttl falls back to ten minutes.
func NewRedisProductCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) service.ProductCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &redisProductCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func productKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}

// Get returns the cached product and whether it was found.
func (c *redisProductCache) Get(ctx context.Context, id int64) (*entity.ProductWithStock, bool) {
	val, err := c.client.Get(ctx, productKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log(ctx).Warn("Product cache read failed", slog.Int64("product_id", id), slog.Any("error", err))
		}

		return nil, false
	}

	var product entity.ProductWithStock
	if err := json.Unmarshal(val, &product); err != nil {
		c.log(ctx).Warn("Product cache entry is corrupt", slog.Int64("product_id", id), slog.Any("error", err))
		c.Invalidate(ctx, id)

		return nil, false
	}

	return &product, true
}

// Set stores a product for the configured TTL.
func (c *redisProductCache) Set(ctx context.Context, product *entity.ProductWithStock) {
	if product == nil {
		return
	}

	data, err := json.Marshal(product)
	if err != nil {
		c.log(ctx).Warn("Failed to encode product for cache", slog.Int64("product_id", product.ID), slog.Any("error", err))

		return
	}

	if err := c.client.Set(ctx, productKey(product.ID), data, c.ttl).Err(); err != nil {
		c.log(ctx).Warn("Product cache write failed", slog.Int64("product_id", product.ID), slog.Any("error", err))
	}
}

// Invalidate removes a product.
func (c *redisProductCache) Invalidate(ctx context.Context, id int64) {
	if err := c.client.Del(ctx, productKey(id)).Err(); err != nil {
		c.log(ctx).Warn("Product cache invalidation failed", slog.Int64("product_id", id), slog.Any("error", err))
	}
}

func (c *redisProductCache) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// noopProductCache never stores anything.
type noopProductCache struct{}

// NewNoopProductCache creates a cache that always misses.
func NewNoopProductCache() service.ProductCache {
	return noopProductCache{}
}

func (noopProductCache) Get(context.Context, int64) (*entity.ProductWithStock, bool) {
	return nil, false
}

func (noopProductCache) Set(context.Context, *entity.ProductWithStock) {}

func (noopProductCache) Invalidate(context.Context, int64) {}
