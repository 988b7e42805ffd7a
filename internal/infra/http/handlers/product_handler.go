package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/xavierca1/nicsan-site/internal/entity"
	"github.com/xavierca1/nicsan-site/internal/usecase"
	"github.com/xavierca1/nicsan-site/pkg/logging"
)

type ProductHandler struct {
	Catalog *usecase.CatalogReader
	Logger  *zap.Logger
}

func NewProductHandler(catalog *usecase.CatalogReader, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{Catalog: catalog, Logger: logging.OrNop(logger)}
}

type ProductListResponse struct {
	Products []entity.Product `json:"products"`
	Fallback bool             `json:"fallback"`
}

// List handles GET /api/products. A store outage still answers 200 with the fallback catalog.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, fallback := h.Catalog.Catalog(r.Context())
	writeJSON(w, http.StatusOK, ProductListResponse{Products: products, Fallback: fallback})
}

// GetBySlug handles GET /api/products/{slug}.
func (h *ProductHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		writeErrorResponse(w, http.StatusBadRequest, usecase.CodeValidation, "slug is required")
		return
	}

	p, err := h.Catalog.ResolveProduct(r.Context(), slug)
	if err != nil {
		writeUsecaseError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
