package supabase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

type ProductRepository struct {
	Client *Client
}

func NewProductRepository(c *Client) *ProductRepository {
	return &ProductRepository{Client: c}
}

type productRow struct {
	Name               string                    `json:"name"`
	Slug               string                    `json:"slug"`
	Description        string                    `json:"description"`
	IconPath           string                    `json:"icon_path"`
	Statistics         []string                  `json:"statistics"`
	FormFields         []entity.FormField        `json:"form_fields"`
	ExpansionDirection entity.ExpansionDirection `json:"expansion_direction"`
	IsActive           bool                      `json:"is_active"`
	UpdatedAt          *time.Time                `json:"updated_at,omitempty"`
}

func toProductRow(p *entity.Product) productRow {
	row := productRow{
		Name:               p.Name,
		Slug:               p.Slug,
		Description:        p.Description,
		IconPath:           p.IconPath,
		Statistics:         p.Statistics,
		FormFields:         p.FormFields,
		ExpansionDirection: p.ExpansionDirection,
		IsActive:           p.IsActive,
	}
	if row.Statistics == nil {
		row.Statistics = []string{}
	}
	if row.FormFields == nil {
		row.FormFields = []entity.FormField{}
	}
	return row
}

func (r *ProductRepository) ListActive(ctx context.Context) ([]entity.Product, error) {
	products := []entity.Product{}
	err := r.Client.Select(ctx, ProductsTable, Query{
		Eq:    [][2]string{{"is_active", "true"}},
		Order: "created_at.asc,id.asc",
	}, &products)
	if err != nil {
		return nil, fmt.Errorf("list active products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var products []entity.Product
	err := r.Client.Select(ctx, ProductsTable, Query{
		Eq:    [][2]string{{"slug", slug}, {"is_active", "true"}},
		Limit: 1,
	}, &products)
	if err != nil {
		return nil, fmt.Errorf("find product %q: %w", slug, err)
	}
	if len(products) == 0 {
		return nil, entity.ErrProductNotFound
	}
	return &products[0], nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var products []entity.Product
	err := r.Client.Select(ctx, ProductsTable, Query{
		Eq:    [][2]string{{"id", strconv.FormatInt(id, 10)}},
		Limit: 1,
	}, &products)
	if err != nil {
		return nil, fmt.Errorf("find product %d: %w", id, err)
	}
	if len(products) == 0 {
		return nil, entity.ErrProductNotFound
	}
	return &products[0], nil
}

func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	var stored []entity.Product
	if err := r.Client.Insert(ctx, ProductsTable, toProductRow(p), &stored); err != nil {
		return mapProductError(err, "create product")
	}
	if len(stored) == 0 {
		return errors.New("create product: empty representation")
	}
	p.ID = stored[0].ID
	p.CreatedAt = stored[0].CreatedAt
	p.UpdatedAt = stored[0].UpdatedAt
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *entity.Product) error {
	row := toProductRow(p)
	now := time.Now().UTC()
	row.UpdatedAt = &now

	var stored []entity.Product
	err := r.Client.Update(ctx, ProductsTable, [][2]string{{"id", strconv.FormatInt(p.ID, 10)}}, row, &stored)
	if err != nil {
		return mapProductError(err, "update product")
	}
	if len(stored) == 0 {
		return entity.ErrProductNotFound
	}
	p.UpdatedAt = stored[0].UpdatedAt
	return nil
}

func (r *ProductRepository) Deactivate(ctx context.Context, id int64) error {
	patch := map[string]any{"is_active": false, "updated_at": time.Now().UTC()}

	var stored []entity.Product
	err := r.Client.Update(ctx, ProductsTable, [][2]string{{"id", strconv.FormatInt(id, 10)}}, patch, &stored)
	if err != nil {
		return fmt.Errorf("deactivate product %d: %w", id, err)
	}
	if len(stored) == 0 {
		return entity.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx)
}

func mapProductError(err error, op string) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Code == "23505" {
		return entity.ErrDuplicateSlug
	}
	return fmt.Errorf("%s: %w", op, err)
}
