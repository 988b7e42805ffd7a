package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/nicsan-site/internal/config"
	"github.com/xavierca1/nicsan-site/internal/infra/http/handlers"
	"github.com/xavierca1/nicsan-site/internal/infra/http/middleware"
	"github.com/xavierca1/nicsan-site/internal/infra/worker"
	"github.com/xavierca1/nicsan-site/internal/usecase"
	"github.com/xavierca1/nicsan-site/internal/web"
	"github.com/xavierca1/nicsan-site/pkg/logging"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Stores
	st, err := openStores(cfg, logger)
	if err != nil {
		logger.Fatal("store setup failed", zap.String("backend", cfg.StoreBackend), zap.Error(err))
	}
	defer st.Close()

	// 2. Notifications
	notif := setupNotifications(ctx, cfg, logger)
	defer notif.close()
	st.Health["rabbitmq"] = notif.Broker

	// 3. Use cases
	catalog := usecase.NewCatalogReader(st.Products, logger)
	submit := usecase.NewSubmitLeadUseCase(st.Leads, st.Products, notif.Dispatcher, cfg.Notify.Timeout, logger)
	stats := usecase.NewLeadStatsUseCase(st.Leads)
	manageLeads := usecase.NewManageLeadsUseCase(st.Leads, logger)
	manageProducts := usecase.NewManageProductsUseCase(st.Products, logger)

	// 4. Workers
	go worker.NewStatsReporter(stats, cfg.StatsInterval, logger).Start(ctx)

	limiter := middleware.NewRateLimiter(cfg.LeadRateLimit, time.Minute)
	go limiter.Run(ctx.Done(), 10*time.Minute)

	// 5. Handlers and router
	router, err := newRouter(cfg, routes{
		Products: handlers.NewProductHandler(catalog, logger),
		Leads:    handlers.NewLeadHandler(submit, logger),
		Admin:    handlers.NewAdminHandler(manageLeads, stats, manageProducts, logger),
		Health:   handlers.NewHealthHandler(version, st.Health),
		Site:     web.NewSite(catalog, submit, logger),
		Limiter:  limiter,
	}, logger)
	if err != nil {
		logger.Fatal("router setup failed", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      45 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.String("store", cfg.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
