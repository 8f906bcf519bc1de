//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"dncommerce/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func TestRedisProductCache_RoundTrip(t *testing.T) {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	t.Cleanup(func() {
		_ = client.Close()
	})

	cache := NewRedisProductCache(client, time.Minute, newTestLogger())
	product := &entity.ProductWithStock{
		Product: entity.Product{
			ID:       3,
			Name:     "Perfume Floral",
			Price:    decimal.RequireFromString("199.90"),
			Category: entity.CategoryPerfume,
			Active:   true,
		},
		AvailableQuantity: 12,
		MinimumQuantity:   5,
	}

	cache.Set(ctx, product)

	cached, found := cache.Get(ctx, 3)
	require.True(t, found)
	assert.Equal(t, "Perfume Floral", cached.Name)
	assert.True(t, product.Price.Equal(cached.Price))
	assert.Equal(t, 12, cached.AvailableQuantity)

	ttl, err := client.TTL(ctx, productKey(3)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	cache.Invalidate(ctx, 3)
	_, found = cache.Get(ctx, 3)
	assert.False(t, found)
}
