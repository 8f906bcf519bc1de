package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"dncommerce/config"
	"dncommerce/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxtest"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProductKey(t *testing.T) {
	assert.Equal(t, "product:42", productKey(42))
}

func TestNewProductCache_NotConfigured(t *testing.T) {
	cache := NewProductCache(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{},
		Logger:    newTestLogger(),
	})

	assert.IsType(t, noopProductCache{}, cache)

	cache.Set(context.Background(), &entity.ProductWithStock{Product: entity.Product{ID: 1}})
	_, found := cache.Get(context.Background(), 1)
	assert.False(t, found)
}

func TestRedisProductCache_UnreachableBackendMisses(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	cache := NewRedisProductCache(client, time.Minute, newTestLogger())
	ctx := context.Background()

	cache.Set(ctx, &entity.ProductWithStock{Product: entity.Product{ID: 7, Name: "Batom"}})
	product, found := cache.Get(ctx, 7)
	assert.False(t, found)
	assert.Nil(t, product)
	cache.Invalidate(ctx, 7)
}

func TestNewRedisProductCache_DefaultTTL(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()

	cache := NewRedisProductCache(client, 0, newTestLogger())
	assert.Equal(t, defaultTTL, cache.(*redisProductCache).ttl)
}
