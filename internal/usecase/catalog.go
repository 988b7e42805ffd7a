package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

type CatalogReader struct {
	Repo   entity.ProductRepository
	Logger *zap.Logger
}

func NewCatalogReader(repo entity.ProductRepository, logger *zap.Logger) *CatalogReader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogReader{Repo: repo, Logger: logger}
}

// ListActiveProducts returns the active products in creation order.
// Store failures are returned as a TechnicalError; the caller decides whether to fall back.
func (c *CatalogReader) ListActiveProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := c.Repo.ListActive(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeCatalogUnavailable,
			Message: "could not load products",
			Err:     err,
		}
	}
	if products == nil {
		products = []entity.Product{}
	}
	return products, nil
}

// Catalog is ListActiveProducts with the fallback decision applied.
func (c *CatalogReader) Catalog(ctx context.Context) ([]entity.Product, bool) {
	products, err := c.ListActiveProducts(ctx)
	products, fallback := WithFallback(products, err)
	if fallback {
		catalogFallbackTotal.Inc()
		c.Logger.Warn("catalog read failed, serving fallback products", zap.Error(err))
	}
	return products, fallback
}

func (c *CatalogReader) ProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	p, err := c.Repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, entity.ErrProductNotFound) {
			return nil, &DomainError{Code: CodeProductNotFound, Message: "product not found", Err: err}
		}
		return nil, &TechnicalError{Code: CodeCatalogUnavailable, Message: "could not load product", Err: err}
	}
	return p, nil
}

// ResolveProduct finds the product behind a page form. When the store cannot be read
// the fallback catalog answers, matching what the page rendered.
func (c *CatalogReader) ResolveProduct(ctx context.Context, slug string) (*entity.Product, error) {
	p, err := c.ProductBySlug(ctx, slug)
	if err == nil || IsDomainError(err) {
		return p, err
	}
	if fp, ok := fallbackProductBySlug(slug); ok {
		c.Logger.Warn("product lookup failed, using fallback definition", zap.String("slug", slug), zap.Error(err))
		return fp, nil
	}
	return nil, err
}
