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

func TestComputeLeadStats(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	snapshots := []entity.LeadSnapshot{
		{Status: entity.LeadStatusPending, CreatedAt: now.Add(-time.Hour)},
		{Status: entity.LeadStatusPending, CreatedAt: now.AddDate(0, 0, -7)},                     // boundary, recent
		{Status: entity.LeadStatusScheduled, CreatedAt: now.AddDate(0, 0, -7).Add(-time.Second)}, // just outside
		{Status: entity.LeadStatusCompleted, CreatedAt: now.AddDate(0, 0, -30)},
		{Status: entity.LeadStatusCancelled, CreatedAt: now.AddDate(0, 0, -2)},
		{Status: entity.LeadStatusCompleted, CreatedAt: now.AddDate(0, 0, -6)},
		{Status: "archived", CreatedAt: now.AddDate(-1, 0, 0)},
	}

	got := ComputeLeadStats(snapshots, now)

	assert.Equal(t, entity.LeadStats{
		Total:     7,
		Pending:   2,
		Scheduled: 1,
		Completed: 2,
		Cancelled: 1,
		Recent:    4,
	}, got)
}

func TestComputeLeadStatsEmpty(t *testing.T) {
	assert.Equal(t, entity.LeadStats{}, ComputeLeadStats(nil, time.Now()))
}

// TestComputeLeadStatsAcrossDST - the window is seven calendar days, not 168 hours
func TestComputeLeadStatsAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		t.Skip("tzdata not available")
	}
	now := time.Date(2025, 3, 31, 9, 0, 0, 0, loc)
	inside := time.Date(2025, 3, 24, 9, 0, 0, 0, loc)

	got := ComputeLeadStats([]entity.LeadSnapshot{{Status: entity.LeadStatusPending, CreatedAt: inside}}, now)
	assert.Equal(t, 1, got.Recent)
}

func TestLeadStatsUseCase(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	leads := new(MockLeadRepository)
	leads.On("ListSnapshots", mock.Anything).Return([]entity.LeadSnapshot{
		{Status: entity.LeadStatusPending, CreatedAt: now.Add(-time.Minute)},
		{Status: entity.LeadStatusScheduled, CreatedAt: now.AddDate(0, -1, 0)},
	}, nil)

	uc := NewLeadStatsUseCase(leads)
	uc.Now = func() time.Time { return now }

	stats, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.LeadStats{Total: 2, Pending: 1, Scheduled: 1, Recent: 1}, stats)
}

func TestLeadStatsUseCaseStoreFailure(t *testing.T) {
	leads := new(MockLeadRepository)
	leads.On("ListSnapshots", mock.Anything).Return(nil, errors.New("timeout"))

	_, err := NewLeadStatsUseCase(leads).Execute(context.Background())
	assert.True(t, IsTechnicalError(err))
}
