package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

const productColumns = `id, name, slug, description, icon_path, statistics, form_fields,
	expansion_direction, is_active, created_at, updated_at`

type ProductRepository struct {
	DB *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*entity.Product, error) {
	var (
		p          entity.Product
		statistics []byte
		fields     []byte
		direction  string
	)
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Slug,
		&p.Description,
		&p.IconPath,
		&statistics,
		&fields,
		&direction,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.ExpansionDirection = entity.ExpansionDirection(direction)

	if len(statistics) > 0 {
		if err := json.Unmarshal(statistics, &p.Statistics); err != nil {
			return nil, fmt.Errorf("decode statistics of product %d: %w", p.ID, err)
		}
	}
	if len(fields) > 0 {
		if err := json.Unmarshal(fields, &p.FormFields); err != nil {
			return nil, fmt.Errorf("decode form_fields of product %d: %w", p.ID, err)
		}
	}
	return &p, nil
}

func encodeProductJSON(p *entity.Product) ([]byte, []byte, error) {
	statistics := p.Statistics
	if statistics == nil {
		statistics = []string{}
	}
	fields := p.FormFields
	if fields == nil {
		fields = []entity.FormField{}
	}
	s, err := json.Marshal(statistics)
	if err != nil {
		return nil, nil, err
	}
	f, err := json.Marshal(fields)
	if err != nil {
		return nil, nil, err
	}
	return s, f, nil
}

func (r *ProductRepository) ListActive(ctx context.Context) ([]entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM insurance_products
		WHERE is_active = true
		ORDER BY created_at ASC, id ASC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active products: %w", err)
	}
	defer rows.Close()

	products := []entity.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list active products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM insurance_products
		WHERE slug = $1 AND is_active = true`

	p, err := scanProduct(r.DB.QueryRowContext(ctx, query, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find product %q: %w", slug, err)
	}
	return p, nil
}

// FindByID also returns inactive products; the back office edits them.
func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM insurance_products
		WHERE id = $1`

	p, err := scanProduct(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find product %d: %w", id, err)
	}
	return p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	statistics, fields, err := encodeProductJSON(p)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO insurance_products
			(name, slug, description, icon_path, statistics, form_fields, expansion_direction, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	err = r.DB.QueryRowContext(ctx, query,
		p.Name,
		p.Slug,
		p.Description,
		p.IconPath,
		statistics,
		fields,
		string(p.ExpansionDirection),
		p.IsActive,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return entity.ErrDuplicateSlug
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *entity.Product) error {
	statistics, fields, err := encodeProductJSON(p)
	if err != nil {
		return err
	}

	query := `
		UPDATE insurance_products
		SET name = $1, slug = $2, description = $3, icon_path = $4, statistics = $5,
			form_fields = $6, expansion_direction = $7, is_active = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at`

	err = r.DB.QueryRowContext(ctx, query,
		p.Name,
		p.Slug,
		p.Description,
		p.IconPath,
		statistics,
		fields,
		string(p.ExpansionDirection),
		p.IsActive,
		p.ID,
	).Scan(&p.UpdatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return entity.ErrProductNotFound
	case pgCode(err) == pgUniqueViolation:
		return entity.ErrDuplicateSlug
	case err != nil:
		return fmt.Errorf("update product %d: %w", p.ID, err)
	}
	return nil
}

// Deactivate is the soft delete: the row stays for leads that reference it.
func (r *ProductRepository) Deactivate(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE insurance_products SET is_active = false, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate product %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deactivate product %d: %w", id, err)
	}
	if n == 0 {
		return entity.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}
