package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

// RecentWindowDays is the trailing window counted as "recent".
const RecentWindowDays = 7

// ComputeLeadStats reduces (status, created_at) pairs into counters.
// A lead is recent when created at or after now minus seven calendar days.
// Unknown statuses still count toward Total.
func ComputeLeadStats(snapshots []entity.LeadSnapshot, now time.Time) entity.LeadStats {
	cutoff := now.AddDate(0, 0, -RecentWindowDays)

	var stats entity.LeadStats
	for _, s := range snapshots {
		stats.Total++
		switch s.Status {
		case entity.LeadStatusPending:
			stats.Pending++
		case entity.LeadStatusScheduled:
			stats.Scheduled++
		case entity.LeadStatusCompleted:
			stats.Completed++
		case entity.LeadStatusCancelled:
			stats.Cancelled++
		}
		if !s.CreatedAt.Before(cutoff) {
			stats.Recent++
		}
	}
	return stats
}

type LeadStatsUseCase struct {
	Leads entity.LeadRepository
	Now   Clock
}

func NewLeadStatsUseCase(leads entity.LeadRepository) *LeadStatsUseCase {
	return &LeadStatsUseCase{Leads: leads, Now: time.Now}
}

func (uc *LeadStatsUseCase) Execute(ctx context.Context) (entity.LeadStats, error) {
	snapshots, err := uc.Leads.ListSnapshots(ctx)
	if err != nil {
		return entity.LeadStats{}, &TechnicalError{
			Code:    CodeStatsUnavailable,
			Message: "could not load lead statistics",
			Err:     err,
		}
	}
	now := time.Now
	if uc.Now != nil {
		now = uc.Now
	}
	return ComputeLeadStats(snapshots, now()), nil
}
