package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

type countingRepo struct {
	entity.ProductRepository
	products []entity.Product
	err      error
	lists    int
}

func (c *countingRepo) ListActive(ctx context.Context) ([]entity.Product, error) {
	c.lists++
	return c.products, c.err
}

func (c *countingRepo) Deactivate(ctx context.Context, id int64) error {
	return nil
}

func newCache(t *testing.T, inner entity.ProductRepository) (*CachedProductRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewCachedProductRepository(inner, rdb, time.Minute, nil), mr
}

func TestListActiveServedFromCache(t *testing.T) {
	inner := &countingRepo{products: []entity.Product{{ID: 1, Name: "Health", Slug: "health", IsActive: true}}}
	cached, mr := newCache(t, inner)
	ctx := context.Background()

	first, err := cached.ListActive(ctx)
	require.NoError(t, err)
	second, err := cached.ListActive(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.lists)
	assert.True(t, mr.Exists(activeCatalogKey))

	mr.FastForward(2 * time.Minute)
	_, err = cached.ListActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.lists)
}

func TestWriteInvalidatesCache(t *testing.T) {
	inner := &countingRepo{products: []entity.Product{{ID: 1, Slug: "health"}}}
	cached, mr := newCache(t, inner)
	ctx := context.Background()

	_, err := cached.ListActive(ctx)
	require.NoError(t, err)
	require.True(t, mr.Exists(activeCatalogKey))

	require.NoError(t, cached.Deactivate(ctx, 1))
	assert.False(t, mr.Exists(activeCatalogKey))
}

func TestStoreErrorsAreNotCached(t *testing.T) {
	inner := &countingRepo{err: errors.New("store down")}
	cached, mr := newCache(t, inner)

	_, err := cached.ListActive(context.Background())
	assert.Error(t, err)
	assert.False(t, mr.Exists(activeCatalogKey))
}

// TestRedisDownFallsThrough - the cache is optional; a dead Redis must not break the catalog
func TestRedisDownFallsThrough(t *testing.T) {
	inner := &countingRepo{products: []entity.Product{{ID: 2, Slug: "life"}}}
	cached, mr := newCache(t, inner)
	mr.Close()

	products, err := cached.ListActive(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestCorruptEntryIsReplaced(t *testing.T) {
	inner := &countingRepo{products: []entity.Product{{ID: 3, Slug: "motor"}}}
	cached, mr := newCache(t, inner)
	require.NoError(t, mr.Set(activeCatalogKey, "not json"))

	products, err := cached.ListActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "motor", products[0].Slug)
	assert.Equal(t, 1, inner.lists)
}
