package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/xavierca1/nicsan-site/internal/config"
	"github.com/xavierca1/nicsan-site/internal/infra/http/handlers"
	"github.com/xavierca1/nicsan-site/internal/infra/http/middleware"
	"github.com/xavierca1/nicsan-site/internal/web"
)

type routes struct {
	Products *handlers.ProductHandler
	Leads    *handlers.LeadHandler
	Admin    *handlers.AdminHandler
	Health   *handlers.HealthHandler
	Site     *web.Site
	Limiter  *middleware.RateLimiter
}

func newRouter(cfg *config.Config, rt routes, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	if cfg.TrustProxyHeaders {
		r.Use(chimw.RealIP)
	}
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", rt.Health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	formLimit := middleware.RateLimit(rt.Limiter, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Too many requests. Please try again later.", http.StatusTooManyRequests)
	})
	if err := rt.Site.Routes(r, formLimit); err != nil {
		return nil, err
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(chimw.Timeout(30 * time.Second))

		r.Get("/products", rt.Products.List)
		r.Get("/products/{slug}", rt.Products.GetBySlug)
		r.With(middleware.RateLimit(rt.Limiter, handlers.RateLimited)).Post("/leads", rt.Leads.CaptureLead)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.AdminJWT(cfg.AdminJWTSecret))

			r.Get("/leads", rt.Admin.ListLeads)
			r.Get("/leads/stats", rt.Admin.LeadStats)
			r.Get("/leads/{id}", rt.Admin.GetLead)
			r.Patch("/leads/{id}", rt.Admin.UpdateLeadStatus)

			r.Post("/products", rt.Admin.CreateProduct)
			r.Put("/products/{id}", rt.Admin.UpdateProduct)
			r.Delete("/products/{id}", rt.Admin.DeleteProduct)
		})
	})

	if cfg.AdminJWTSecret == "" {
		logger.Warn("ADMIN_JWT_SECRET not set, admin API rejects every request")
	}
	return r, nil
}
