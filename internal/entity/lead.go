package entity

import (
	"context"
	"time"
)

type LeadStatus string

const (
	LeadStatusPending   LeadStatus = "pending"
	LeadStatusScheduled LeadStatus = "scheduled"
	LeadStatusCompleted LeadStatus = "completed"
	LeadStatusCancelled LeadStatus = "cancelled"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusPending, LeadStatusScheduled, LeadStatusCompleted, LeadStatusCancelled:
		return true
	}
	return false
}

// LeadRequest is what a visitor submits. Every field may be empty.
type LeadRequest struct {
	ProductID    *int64   `json:"product_id"`
	CustomerName string   `json:"customer_name"`
	PhoneNumber  string   `json:"phone_number"`
	Email        string   `json:"email"`
	FormData     FormData `json:"form_data"`
}

// Lead is a persisted safety call request.
type Lead struct {
	ID           string     `json:"id"`
	ProductID    *int64     `json:"product_id"`
	CustomerName string     `json:"customer_name"`
	PhoneNumber  string     `json:"phone_number"`
	Email        string     `json:"email"`
	FormData     FormData   `json:"form_data"`
	Status       LeadStatus `json:"status"`
	Notes        string     `json:"notes,omitempty"`
	ScheduledAt  *time.Time `json:"scheduled_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// LeadFilter narrows back-office listings. Zero values mean "no filter".
type LeadFilter struct {
	Status    LeadStatus
	ProductID *int64
	Limit     int
}

// LeadStatusUpdate is applied by the back-office workflow, never by submission.
type LeadStatusUpdate struct {
	Status      LeadStatus `json:"status"`
	Notes       *string    `json:"notes,omitempty"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}

type LeadSnapshot struct {
	Status    LeadStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

type LeadStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Scheduled int `json:"scheduled"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
	Recent    int `json:"recent"`
}

type LeadRepository interface {
	Create(ctx context.Context, req *LeadRequest) (*Lead, error)
	FindByID(ctx context.Context, id string) (*Lead, error)
	List(ctx context.Context, filter LeadFilter) ([]Lead, error)
	UpdateStatus(ctx context.Context, id string, update LeadStatusUpdate) (*Lead, error)
	ListSnapshots(ctx context.Context) ([]LeadSnapshot, error)
}

// Pinger is implemented by stores that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// LeadNotification is what operators are told about a freshly stored lead.
type LeadNotification struct {
	Lead        Lead   `json:"lead"`
	ProductName string `json:"product_name"`
}
