package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

const activeCatalogKey = "catalog:products:active"

// CachedProductRepository is a cache-aside decorator for the active catalog.
// Only ListActive is cached; every write through it drops the cached list.
// Redis failures fall through to the wrapped store.
type CachedProductRepository struct {
	entity.ProductRepository
	Redis  redis.Cmdable
	TTL    time.Duration
	Logger *zap.Logger
}

func NewCachedProductRepository(inner entity.ProductRepository, rdb redis.Cmdable, ttl time.Duration, logger *zap.Logger) *CachedProductRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedProductRepository{ProductRepository: inner, Redis: rdb, TTL: ttl, Logger: logger}
}

func (c *CachedProductRepository) ListActive(ctx context.Context) ([]entity.Product, error) {
	raw, err := c.Redis.Get(ctx, activeCatalogKey).Bytes()
	switch {
	case err == nil:
		var products []entity.Product
		if jerr := json.Unmarshal(raw, &products); jerr == nil {
			return products, nil
		}
		c.Logger.Warn("discarding undecodable catalog cache entry")
	case !errors.Is(err, redis.Nil):
		c.Logger.Warn("catalog cache read failed", zap.Error(err))
	}

	products, err := c.ProductRepository.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if payload, jerr := json.Marshal(products); jerr == nil {
		if serr := c.Redis.Set(ctx, activeCatalogKey, payload, c.TTL).Err(); serr != nil {
			c.Logger.Warn("catalog cache write failed", zap.Error(serr))
		}
	}
	return products, nil
}

func (c *CachedProductRepository) Create(ctx context.Context, p *entity.Product) error {
	if err := c.ProductRepository.Create(ctx, p); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachedProductRepository) Update(ctx context.Context, p *entity.Product) error {
	if err := c.ProductRepository.Update(ctx, p); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachedProductRepository) Deactivate(ctx context.Context, id int64) error {
	if err := c.ProductRepository.Deactivate(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachedProductRepository) invalidate(ctx context.Context) {
	if err := c.Redis.Del(ctx, activeCatalogKey).Err(); err != nil {
		c.Logger.Warn("catalog cache invalidation failed", zap.Error(err))
	}
}

// Ping checks the wrapped store, not Redis; the cache is optional.
func (c *CachedProductRepository) Ping(ctx context.Context) error {
	if p, ok := c.ProductRepository.(entity.Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}
