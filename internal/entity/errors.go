package entity

import "errors"

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrProductNameRequired = errors.New("product name is required")
	ErrInvalidSlug         = errors.New("slug must be lowercase letters, digits and dashes")
	ErrInvalidExpansion    = errors.New("expansion_direction must be up or down")
	ErrDuplicateSlug       = errors.New("slug already used by another product")

	ErrLeadNotFound  = errors.New("lead not found")
	ErrInvalidStatus = errors.New("status must be pending, scheduled, completed or cancelled")
)
