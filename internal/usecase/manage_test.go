package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

func TestManageLeadsListClampsLimit(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, defaultLeadListLimit},
		{-3, defaultLeadListLimit},
		{20, 20},
		{10000, maxLeadListLimit},
	}

	for _, tt := range tests {
		leads := new(MockLeadRepository)
		leads.On("List", mock.Anything, entity.LeadFilter{Status: entity.LeadStatusPending, Limit: tt.want}).
			Return([]entity.Lead{{ID: "a"}}, nil).Once()

		uc := NewManageLeadsUseCase(leads, nil)
		got, err := uc.List(context.Background(), entity.LeadFilter{Status: entity.LeadStatusPending, Limit: tt.in})

		require.NoError(t, err)
		assert.Len(t, got, 1)
		leads.AssertExpectations(t)
	}
}

func TestManageLeadsListRejectsUnknownStatus(t *testing.T) {
	uc := NewManageLeadsUseCase(new(MockLeadRepository), nil)
	_, err := uc.List(context.Background(), entity.LeadFilter{Status: "archived"})

	assert.True(t, IsDomainError(err))
	assert.ErrorIs(t, err, entity.ErrInvalidStatus)
}

func TestManageLeadsGetNotFound(t *testing.T) {
	leads := new(MockLeadRepository)
	leads.On("FindByID", mock.Anything, "missing").Return(nil, entity.ErrLeadNotFound)

	_, err := NewManageLeadsUseCase(leads, nil).Get(context.Background(), "missing")

	var de *DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, CodeLeadNotFound, de.Code)
}

func TestManageLeadsUpdateStatus(t *testing.T) {
	at := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	update := entity.LeadStatusUpdate{Status: entity.LeadStatusScheduled, ScheduledAt: &at}

	leads := new(MockLeadRepository)
	leads.On("UpdateStatus", mock.Anything, "abc", update).
		Return(&entity.Lead{ID: "abc", Status: entity.LeadStatusScheduled, ScheduledAt: &at}, nil)

	lead, err := NewManageLeadsUseCase(leads, nil).UpdateStatus(context.Background(), "abc", update)

	require.NoError(t, err)
	assert.Equal(t, entity.LeadStatusScheduled, lead.Status)
}

func TestManageLeadsUpdateStatusValidation(t *testing.T) {
	uc := NewManageLeadsUseCase(new(MockLeadRepository), nil)

	_, err := uc.UpdateStatus(context.Background(), "abc", entity.LeadStatusUpdate{Status: "done"})
	var de *DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, CodeInvalidStatus, de.Code)

	_, err = uc.UpdateStatus(context.Background(), "abc", entity.LeadStatusUpdate{Status: entity.LeadStatusScheduled})
	require.True(t, errors.As(err, &de))
	assert.Equal(t, CodeValidation, de.Code)
}

func TestManageProductsCreate(t *testing.T) {
	products := new(MockProductRepository)
	products.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
		return p.Slug == "two-wheeler" && p.ExpansionDirection == entity.ExpandDown && p.IsActive
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Product).ID = 7
	}).Return(nil)

	uc := NewManageProductsUseCase(products, nil)
	p, err := uc.Create(context.Background(), ProductInput{
		Name:       "Two Wheeler",
		Slug:       "two-wheeler",
		FormFields: []entity.FormField{{Name: "Name", Label: "Name", Type: "text"}},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)
	products.AssertExpectations(t)
}

func TestManageProductsCreateErrors(t *testing.T) {
	products := new(MockProductRepository)
	products.On("Create", mock.Anything, mock.Anything).Return(entity.ErrDuplicateSlug)
	uc := NewManageProductsUseCase(products, nil)

	_, err := uc.Create(context.Background(), ProductInput{Name: "Health", Slug: "health"})
	var de *DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, CodeDuplicateSlug, de.Code)

	_, err = uc.Create(context.Background(), ProductInput{Slug: "x", ExpansionDirection: "left"})
	require.True(t, errors.As(err, &de))
	assert.Equal(t, CodeValidation, de.Code)

	_, err = uc.Create(context.Background(), ProductInput{Name: "Pet", Slug: "Pet Care"})
	require.True(t, errors.As(err, &de))
	assert.ErrorIs(t, err, entity.ErrInvalidSlug)
}

func TestManageProductsUpdate(t *testing.T) {
	existing := &entity.Product{ID: 2, Name: "Life", Slug: "life", ExpansionDirection: entity.ExpandDown, IsActive: true}
	inactive := false

	products := new(MockProductRepository)
	products.On("FindByID", mock.Anything, int64(2)).Return(existing, nil)
	products.On("Update", mock.Anything, existing).Return(nil)

	p, err := NewManageProductsUseCase(products, nil).Update(context.Background(), 2, ProductInput{
		Name:     "Term Life",
		Slug:     "term-life",
		IsActive: &inactive,
	})

	require.NoError(t, err)
	assert.Equal(t, "Term Life", p.Name)
	assert.Equal(t, entity.ExpandDown, p.ExpansionDirection)
	assert.False(t, p.IsActive)
}

func TestManageProductsDeactivate(t *testing.T) {
	products := new(MockProductRepository)
	products.On("Deactivate", mock.Anything, int64(5)).Return(nil)
	products.On("Deactivate", mock.Anything, int64(50)).Return(entity.ErrProductNotFound)
	uc := NewManageProductsUseCase(products, nil)

	require.NoError(t, uc.Deactivate(context.Background(), 5))
	assert.True(t, IsDomainError(uc.Deactivate(context.Background(), 50)))
}
