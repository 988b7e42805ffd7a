package supabase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

type LeadRepository struct {
	Client *Client
}

func NewLeadRepository(c *Client) *LeadRepository {
	return &LeadRepository{Client: c}
}

// leadInsert has no status: the column default marks new rows pending.
type leadInsert struct {
	ProductID    *int64          `json:"product_id"`
	CustomerName string          `json:"customer_name"`
	PhoneNumber  string          `json:"phone_number"`
	Email        string          `json:"email"`
	FormData     entity.FormData `json:"form_data"`
}

type leadPatch struct {
	Status      entity.LeadStatus `json:"status"`
	Notes       *string           `json:"notes,omitempty"`
	ScheduledAt *time.Time        `json:"scheduled_at,omitempty"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// Create inserts one row and returns the stored representation.
// The caller's form_data is kept since jsonb loses key order.
func (r *LeadRepository) Create(ctx context.Context, req *entity.LeadRequest) (*entity.Lead, error) {
	row := leadInsert{
		ProductID:    req.ProductID,
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		FormData:     req.FormData,
	}

	var stored []entity.Lead
	if err := r.Client.Insert(ctx, LeadsTable, row, &stored); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Code == "23503" {
			return nil, fmt.Errorf("create lead: %w", entity.ErrProductNotFound)
		}
		return nil, fmt.Errorf("create lead: %w", err)
	}
	if len(stored) == 0 {
		return nil, errors.New("create lead: empty representation")
	}

	lead := stored[0]
	if len(req.FormData) > 0 {
		lead.FormData = req.FormData
	}
	return &lead, nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	var leads []entity.Lead
	err := r.Client.Select(ctx, LeadsTable, Query{Eq: [][2]string{{"id", id}}, Limit: 1}, &leads)
	if err != nil {
		var apiErr *APIError
		// invalid uuid syntax
		if errors.As(err, &apiErr) && apiErr.Code == "22P02" {
			return nil, entity.ErrLeadNotFound
		}
		return nil, fmt.Errorf("find lead %s: %w", id, err)
	}
	if len(leads) == 0 {
		return nil, entity.ErrLeadNotFound
	}
	return &leads[0], nil
}

func (r *LeadRepository) List(ctx context.Context, filter entity.LeadFilter) ([]entity.Lead, error) {
	q := Query{Order: "created_at.desc", Limit: filter.Limit}
	if filter.Status != "" {
		q.Eq = append(q.Eq, [2]string{"status", string(filter.Status)})
	}
	if filter.ProductID != nil {
		q.Eq = append(q.Eq, [2]string{"product_id", strconv.FormatInt(*filter.ProductID, 10)})
	}

	leads := []entity.Lead{}
	if err := r.Client.Select(ctx, LeadsTable, q, &leads); err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	return leads, nil
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id string, update entity.LeadStatusUpdate) (*entity.Lead, error) {
	patch := leadPatch{
		Status:      update.Status,
		Notes:       update.Notes,
		ScheduledAt: update.ScheduledAt,
		UpdatedAt:   time.Now().UTC(),
	}

	var leads []entity.Lead
	if err := r.Client.Update(ctx, LeadsTable, [][2]string{{"id", id}}, patch, &leads); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Code == "22P02" {
			return nil, entity.ErrLeadNotFound
		}
		return nil, fmt.Errorf("update lead %s: %w", id, err)
	}
	if len(leads) == 0 {
		return nil, entity.ErrLeadNotFound
	}
	return &leads[0], nil
}

func (r *LeadRepository) ListSnapshots(ctx context.Context) ([]entity.LeadSnapshot, error) {
	snapshots := []entity.LeadSnapshot{}
	err := r.Client.Select(ctx, LeadsTable, Query{Select: "status,created_at"}, &snapshots)
	if err != nil {
		return nil, fmt.Errorf("list lead snapshots: %w", err)
	}
	return snapshots, nil
}

func (r *LeadRepository) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx)
}
