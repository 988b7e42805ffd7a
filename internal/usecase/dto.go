package usecase

import "github.com/xavierca1/nicsan-site/internal/entity"

// ProductInput is the back-office payload for creating or replacing a product.
type ProductInput struct {
	Name               string                    `json:"name"`
	Slug               string                    `json:"slug"`
	Description        string                    `json:"description"`
	IconPath           string                    `json:"icon_path"`
	Statistics         []string                  `json:"statistics"`
	FormFields         []entity.FormField        `json:"form_fields"`
	ExpansionDirection entity.ExpansionDirection `json:"expansion_direction"`
	IsActive           *bool                     `json:"is_active,omitempty"`
}
