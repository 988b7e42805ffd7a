package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

// ManageProductsUseCase backs the back-office catalog editor. Deletion is a soft delete.
type ManageProductsUseCase struct {
	Products entity.ProductRepository
	Logger   *zap.Logger
}

func NewManageProductsUseCase(products entity.ProductRepository, logger *zap.Logger) *ManageProductsUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ManageProductsUseCase{Products: products, Logger: logger}
}

func (uc *ManageProductsUseCase) Create(ctx context.Context, input ProductInput) (*entity.Product, error) {
	if errs := ValidateProductInput(input); len(errs) > 0 {
		return nil, validationDomainError(errs)
	}

	p, err := entity.NewProduct(input.Name, input.Slug, input.Description, input.IconPath, input.Statistics, input.FormFields, input.ExpansionDirection)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error(), Err: err}
	}
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}

	if err := uc.Products.Create(ctx, p); err != nil {
		return nil, productStoreError(err, "could not create product")
	}
	uc.Logger.Info("product created", zap.Int64("product_id", p.ID), zap.String("slug", p.Slug))
	return p, nil
}

// Update replaces the editable fields of an existing product.
func (uc *ManageProductsUseCase) Update(ctx context.Context, id int64, input ProductInput) (*entity.Product, error) {
	if errs := ValidateProductInput(input); len(errs) > 0 {
		return nil, validationDomainError(errs)
	}

	p, err := uc.Products.FindByID(ctx, id)
	if err != nil {
		return nil, productStoreError(err, "could not load product")
	}

	p.Name = input.Name
	p.Slug = input.Slug
	p.Description = input.Description
	p.IconPath = input.IconPath
	p.Statistics = input.Statistics
	p.FormFields = input.FormFields
	if input.ExpansionDirection != "" {
		p.ExpansionDirection = input.ExpansionDirection
	}
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}
	p.UpdatedAt = time.Now().UTC()

	if err := p.Validate(); err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error(), Err: err}
	}
	if err := uc.Products.Update(ctx, p); err != nil {
		return nil, productStoreError(err, "could not update product")
	}
	return p, nil
}

func (uc *ManageProductsUseCase) Deactivate(ctx context.Context, id int64) error {
	if err := uc.Products.Deactivate(ctx, id); err != nil {
		return productStoreError(err, "could not deactivate product")
	}
	uc.Logger.Info("product deactivated", zap.Int64("product_id", id))
	return nil
}

func productStoreError(err error, msg string) error {
	switch {
	case errors.Is(err, entity.ErrProductNotFound):
		return &DomainError{Code: CodeProductNotFound, Message: "product not found", Err: err}
	case errors.Is(err, entity.ErrDuplicateSlug):
		return &DomainError{Code: CodeDuplicateSlug, Message: "slug already used by another product", Err: err}
	}
	return &TechnicalError{Code: CodeStoreFailure, Message: msg, Err: err}
}
