package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

type LeadRepository struct {
	mu       sync.RWMutex
	leads    map[string]entity.Lead
	products *ProductRepository
}

// NewLeadRepository checks product references against products, like a foreign key would.
func NewLeadRepository(products *ProductRepository) *LeadRepository {
	return &LeadRepository{leads: make(map[string]entity.Lead), products: products}
}

func (r *LeadRepository) Create(ctx context.Context, req *entity.LeadRequest) (*entity.Lead, error) {
	if req.ProductID != nil && r.products != nil && !r.products.exists(*req.ProductID) {
		return nil, fmt.Errorf("create lead: %w", entity.ErrProductNotFound)
	}

	now := time.Now().UTC()
	lead := entity.Lead{
		ID:           uuid.NewString(),
		ProductID:    req.ProductID,
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		FormData:     append(entity.FormData(nil), req.FormData...),
		Status:       entity.LeadStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	r.mu.Lock()
	r.leads[lead.ID] = lead
	r.mu.Unlock()

	return &lead, nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lead, ok := r.leads[id]
	if !ok {
		return nil, entity.ErrLeadNotFound
	}
	return &lead, nil
}

func (r *LeadRepository) List(ctx context.Context, filter entity.LeadFilter) ([]entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []entity.Lead{}
	for _, l := range r.leads {
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		if filter.ProductID != nil && (l.ProductID == nil || *l.ProductID != *filter.ProductID) {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id string, update entity.LeadStatusUpdate) (*entity.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lead, ok := r.leads[id]
	if !ok {
		return nil, entity.ErrLeadNotFound
	}
	lead.Status = update.Status
	if update.Notes != nil {
		lead.Notes = *update.Notes
	}
	if update.ScheduledAt != nil {
		t := *update.ScheduledAt
		lead.ScheduledAt = &t
	}
	lead.UpdatedAt = time.Now().UTC()
	r.leads[id] = lead
	return &lead, nil
}

func (r *LeadRepository) ListSnapshots(ctx context.Context) ([]entity.LeadSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.LeadSnapshot, 0, len(r.leads))
	for _, l := range r.leads {
		out = append(out, entity.LeadSnapshot{Status: l.Status, CreatedAt: l.CreatedAt})
	}
	return out, nil
}

func (r *LeadRepository) Ping(ctx context.Context) error {
	return nil
}
