package entity

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"time"
)

type ExpansionDirection string

const (
	ExpandUp   ExpansionDirection = "up"
	ExpandDown ExpansionDirection = "down"
)

// FormField describes one input of a product's safety-call form.
type FormField struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Placeholder string `json:"placeholder,omitempty"`
}

// UnmarshalJSON also accepts the legacy form where a field is stored as a bare string.
func (f *FormField) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*f = FormField{Name: name, Label: name, Type: "text"}
		return nil
	}

	type plain FormField
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Label == "" {
		p.Label = p.Name
	}
	if p.Type == "" {
		p.Type = "text"
	}
	*f = FormField(p)
	return nil
}

type Product struct {
	ID                 int64              `json:"id"`
	Name               string             `json:"name"`
	Slug               string             `json:"slug"`
	Description        string             `json:"description"`
	IconPath           string             `json:"icon_path"`
	Statistics         []string           `json:"statistics"`
	FormFields         []FormField        `json:"form_fields"`
	ExpansionDirection ExpansionDirection `json:"expansion_direction"`
	IsActive           bool               `json:"is_active"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func NewProduct(name, slug, description, iconPath string, statistics []string, fields []FormField, direction ExpansionDirection) (*Product, error) {
	if direction == "" {
		direction = ExpandDown
	}
	p := &Product{
		Name:               strings.TrimSpace(name),
		Slug:               strings.TrimSpace(slug),
		Description:        description,
		IconPath:           iconPath,
		Statistics:         statistics,
		FormFields:         fields,
		ExpansionDirection: direction,
		IsActive:           true,
		CreatedAt:          time.Now().UTC(),
		UpdatedAt:          time.Now().UTC(),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Product) Validate() error {
	if p.Name == "" {
		return ErrProductNameRequired
	}
	if !slugPattern.MatchString(p.Slug) {
		return ErrInvalidSlug
	}
	if p.ExpansionDirection != ExpandUp && p.ExpansionDirection != ExpandDown {
		return ErrInvalidExpansion
	}
	return nil
}

// ProductRepository is the catalog side of the store boundary.
// ListActive returns only active products ordered by created_at ascending.
type ProductRepository interface {
	ListActive(ctx context.Context) ([]Product, error)
	FindBySlug(ctx context.Context, slug string) (*Product, error)
	FindByID(ctx context.Context, id int64) (*Product, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Deactivate(ctx context.Context, id int64) error
}
