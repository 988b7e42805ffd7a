package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/xavierca1/nicsan-site/internal/config"
	"github.com/xavierca1/nicsan-site/internal/entity"
	"github.com/xavierca1/nicsan-site/internal/infra/cache"
	"github.com/xavierca1/nicsan-site/internal/infra/database"
	"github.com/xavierca1/nicsan-site/internal/infra/http/handlers"
	"github.com/xavierca1/nicsan-site/internal/infra/memory"
	"github.com/xavierca1/nicsan-site/internal/infra/supabase"
	"github.com/xavierca1/nicsan-site/internal/usecase"
)

// stores is the data side of the process, whichever backend was selected.
type stores struct {
	Products entity.ProductRepository
	Leads    entity.LeadRepository
	Health   map[string]entity.Pinger
	closers  []func() error
}

func (s *stores) Close() {
	for _, c := range s.closers {
		c()
	}
}

func openStores(cfg *config.Config, logger *zap.Logger) (*stores, error) {
	s := &stores{Health: map[string]entity.Pinger{}}

	switch cfg.StoreBackend {
	case config.BackendSupabase:
		client := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.AnonKey, cfg.Supabase.Timeout)
		s.Products = supabase.NewProductRepository(client)
		leads := supabase.NewLeadRepository(client)
		s.Leads = leads
		s.Health["store"] = leads

	case config.BackendPostgres:
		db, err := database.NewDBConnection(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		s.closers = append(s.closers, db.Close)
		s.Products = database.NewProductRepository(db)
		leads := database.NewLeadRepository(db)
		s.Leads = leads
		s.Health["store"] = leads

	case config.BackendMemory:
		products := memory.NewProductRepository(usecase.FallbackProducts())
		leads := memory.NewLeadRepository(products)
		s.Products = products
		s.Leads = leads
		s.Health["store"] = leads
		logger.Warn("using in-memory store, leads are lost on restart")

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	s.Health["redis"] = nil
	if cfg.RedisAddr != "" {
		rdb, err := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			logger.Warn("catalog cache disabled", zap.Error(err))
			return s, nil
		}
		s.closers = append(s.closers, rdb.Close)
		s.Products = cache.NewCachedProductRepository(s.Products, rdb, cfg.CatalogCacheTTL, logger)
		s.Health["redis"] = handlers.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
		logger.Info("catalog cache enabled", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.CatalogCacheTTL))
	}

	return s, nil
}
