package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

func seed() []entity.Product {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []entity.Product{
		{ID: 2, Name: "Life", Slug: "life", IsActive: true, CreatedAt: base.Add(time.Hour)},
		{ID: 1, Name: "Health", Slug: "health", IsActive: true, CreatedAt: base},
		{ID: 3, Name: "Old", Slug: "old", IsActive: false, CreatedAt: base.Add(-time.Hour)},
	}
}

func TestListActiveOrderedAndFiltered(t *testing.T) {
	repo := NewProductRepository(seed())

	products, err := repo.ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "health", products[0].Slug)
	assert.Equal(t, "life", products[1].Slug)
}

func TestProductWrites(t *testing.T) {
	repo := NewProductRepository(seed())
	ctx := context.Background()

	dup := &entity.Product{Name: "Health 2", Slug: "health", IsActive: true}
	assert.ErrorIs(t, repo.Create(ctx, dup), entity.ErrDuplicateSlug)

	// inactive rows do not hold their slug
	reuse := &entity.Product{Name: "Old again", Slug: "old", IsActive: true}
	require.NoError(t, repo.Create(ctx, reuse))
	assert.Equal(t, int64(4), reuse.ID)

	require.NoError(t, repo.Deactivate(ctx, 1))
	_, err := repo.FindBySlug(ctx, "health")
	assert.ErrorIs(t, err, entity.ErrProductNotFound)

	p, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.False(t, p.IsActive)

	assert.ErrorIs(t, repo.Deactivate(ctx, 42), entity.ErrProductNotFound)
}

func TestLeadLifecycle(t *testing.T) {
	products := NewProductRepository(seed())
	leads := NewLeadRepository(products)
	ctx := context.Background()

	pid := int64(1)
	first, err := leads.Create(ctx, &entity.LeadRequest{ProductID: &pid, CustomerName: "Asha"})
	require.NoError(t, err)
	second, err := leads.Create(ctx, &entity.LeadRequest{CustomerName: "Asha"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, entity.LeadStatusPending, first.Status)

	missing := int64(99)
	_, err = leads.Create(ctx, &entity.LeadRequest{ProductID: &missing})
	assert.ErrorIs(t, err, entity.ErrProductNotFound)

	list, err := leads.List(ctx, entity.LeadFilter{ProductID: &pid})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, first.ID, list[0].ID)

	notes := "called back"
	updated, err := leads.UpdateStatus(ctx, first.ID, entity.LeadStatusUpdate{Status: entity.LeadStatusCompleted, Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, entity.LeadStatusCompleted, updated.Status)
	assert.Equal(t, notes, updated.Notes)

	_, err = leads.UpdateStatus(ctx, "nope", entity.LeadStatusUpdate{Status: entity.LeadStatusCompleted})
	assert.ErrorIs(t, err, entity.ErrLeadNotFound)

	snapshots, err := leads.ListSnapshots(ctx)
	require.NoError(t, err)
	assert.Len(t, snapshots, 2)
}

// TestConcurrentSubmissions - identical submissions each produce their own row
func TestConcurrentSubmissions(t *testing.T) {
	leads := NewLeadRepository(nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := leads.Create(ctx, &entity.LeadRequest{CustomerName: "Ravi", PhoneNumber: "9123456789"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := leads.List(ctx, entity.LeadFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 20)
}
