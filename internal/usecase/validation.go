package usecase

import (
	"fmt"
	"strings"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Form keys the product and hero forms use for the contact columns.
var (
	nameKeys  = []string{"Name", "name"}
	phoneKeys = []string{"Phone No.", "phone"}
	emailKeys = []string{"Email", "email"}
)

// NormalizeLeadInput fills the contact columns from form data when the caller left them empty.
// Nothing is rejected: empty strings are valid everywhere.
func NormalizeLeadInput(req entity.LeadRequest) entity.LeadRequest {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	req.Email = strings.TrimSpace(req.Email)

	if req.CustomerName == "" {
		req.CustomerName = strings.TrimSpace(req.FormData.First(nameKeys...))
	}
	if req.PhoneNumber == "" {
		req.PhoneNumber = strings.TrimSpace(req.FormData.First(phoneKeys...))
	}
	if req.Email == "" {
		req.Email = strings.TrimSpace(req.FormData.First(emailKeys...))
	}
	if req.FormData == nil {
		req.FormData = entity.FormData{}
	}
	return req
}

func ValidateProductInput(input ProductInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 100 {
		errors = append(errors, ValidationError{"name", "must not exceed 100 characters"})
	}

	if strings.TrimSpace(input.Slug) == "" {
		errors = append(errors, ValidationError{"slug", "is required"})
	}

	switch input.ExpansionDirection {
	case "", entity.ExpandUp, entity.ExpandDown:
	default:
		errors = append(errors, ValidationError{"expansion_direction", "must be up or down"})
	}

	for i, f := range input.FormFields {
		if strings.TrimSpace(f.Name) == "" {
			errors = append(errors, ValidationError{fmt.Sprintf("form_fields[%d].name", i), "is required"})
		}
	}

	return errors
}

func ValidateStatusUpdate(update entity.LeadStatusUpdate) []ValidationError {
	var errors []ValidationError

	if !update.Status.Valid() {
		errors = append(errors, ValidationError{"status", "must be pending, scheduled, completed or cancelled"})
	}
	if update.Status == entity.LeadStatusScheduled && update.ScheduledAt == nil {
		errors = append(errors, ValidationError{"scheduled_at", "is required when status is scheduled"})
	}

	return errors
}

func validationDomainError(errs []ValidationError) *DomainError {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Field+" ("+e.Message+")")
	}
	return &DomainError{
		Code:    CodeValidation,
		Message: "validation failed: " + strings.Join(parts, ", "),
	}
}
