package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductDefaultsToDown(t *testing.T) {
	p, err := NewProduct("Health", "health", "Stay healthy, stay wealthy", "/static/images/healthcare-icon.svg", nil, nil, "")
	require.NoError(t, err)

	assert.Equal(t, ExpandDown, p.ExpansionDirection)
	assert.True(t, p.IsActive)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestProductValidate(t *testing.T) {
	tests := []struct {
		name string
		p    Product
		want error
	}{
		{"missing name", Product{Slug: "health", ExpansionDirection: ExpandDown}, ErrProductNameRequired},
		{"slug with spaces", Product{Name: "Health", Slug: "health plan", ExpansionDirection: ExpandDown}, ErrInvalidSlug},
		{"uppercase slug", Product{Name: "Health", Slug: "Health", ExpansionDirection: ExpandDown}, ErrInvalidSlug},
		{"bad direction", Product{Name: "Health", Slug: "health", ExpansionDirection: "left"}, ErrInvalidExpansion},
		{"valid", Product{Name: "Two Wheeler", Slug: "two-wheeler", ExpansionDirection: ExpandUp}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// TestFormFieldLegacyStrings - older rows store form_fields as a plain list of labels
func TestFormFieldLegacyStrings(t *testing.T) {
	var fields []FormField
	require.NoError(t, json.Unmarshal([]byte(`["Name","Phone No.",{"name":"age","label":"Age","type":"number","required":true}]`), &fields))

	require.Len(t, fields, 3)
	assert.Equal(t, FormField{Name: "Name", Label: "Name", Type: "text"}, fields[0])
	assert.Equal(t, FormField{Name: "Phone No.", Label: "Phone No.", Type: "text"}, fields[1])
	assert.Equal(t, FormField{Name: "age", Label: "Age", Type: "number", Required: true}, fields[2])
}

func TestLeadStatusValid(t *testing.T) {
	for _, s := range []LeadStatus{LeadStatusPending, LeadStatusScheduled, LeadStatusCompleted, LeadStatusCancelled} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, LeadStatus("archived").Valid())
	assert.False(t, LeadStatus("").Valid())
}
