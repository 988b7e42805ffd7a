package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

// ProductRepository keeps the catalog in process memory. Used for local runs and tests.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[int64]entity.Product
	nextID   int64
}

// NewProductRepository copies seed into the store. Seed products without an id get one.
func NewProductRepository(seed []entity.Product) *ProductRepository {
	r := &ProductRepository{products: make(map[int64]entity.Product)}
	for _, p := range seed {
		if p.ID == 0 {
			r.nextID++
			p.ID = r.nextID
		}
		if p.ID > r.nextID {
			r.nextID = p.ID
		}
		r.products[p.ID] = p
	}
	return r
}

func (r *ProductRepository) ListActive(ctx context.Context) ([]entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.IsActive {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *ProductRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.IsActive && p.Slug == slug {
			return &p, nil
		}
	}
	return nil, entity.ErrProductNotFound
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, entity.ErrProductNotFound
	}
	return &p, nil
}

func (r *ProductRepository) exists(id int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.products[id]
	return ok
}

func (r *ProductRepository) slugTaken(slug string, except int64) bool {
	for id, p := range r.products {
		if id != except && p.IsActive && p.Slug == slug {
			return true
		}
	}
	return false
}

func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.IsActive && r.slugTaken(p.Slug, 0) {
		return entity.ErrDuplicateSlug
	}
	r.nextID++
	p.ID = r.nextID
	now := time.Now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now
	r.products[p.ID] = *p
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[p.ID]
	if !ok {
		return entity.ErrProductNotFound
	}
	if p.IsActive && r.slugTaken(p.Slug, p.ID) {
		return entity.ErrDuplicateSlug
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	r.products[p.ID] = *p
	return nil
}

func (r *ProductRepository) Deactivate(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return entity.ErrProductNotFound
	}
	p.IsActive = false
	p.UpdatedAt = time.Now().UTC()
	r.products[id] = p
	return nil
}

func (r *ProductRepository) Ping(ctx context.Context) error {
	return nil
}
