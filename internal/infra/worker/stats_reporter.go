package worker

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

var (
	leadsByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "leads_by_status",
			Help: "Stored safety call requests per status",
		},
		[]string{"status"},
	)

	leadsRecent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "leads_recent",
			Help: "Safety call requests created in the last seven days",
		},
	)
)

type StatsSource interface {
	Execute(ctx context.Context) (entity.LeadStats, error)
}

// StatsReporter periodically exports lead statistics as gauges for the back office.
type StatsReporter struct {
	source       StatsSource
	tickInterval time.Duration
	logger       *zap.Logger
}

func NewStatsReporter(source StatsSource, interval time.Duration, logger *zap.Logger) *StatsReporter {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsReporter{
		source:       source,
		tickInterval: interval,
		logger:       logger,
	}
}

// Start reports once immediately, then on every tick until ctx is done.
func (w *StatsReporter) Start(ctx context.Context) {
	w.logger.Info("stats reporter started", zap.Duration("interval", w.tickInterval))

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.report(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("stats reporter stopped")
			return
		case <-ticker.C:
			w.report(ctx)
		}
	}
}

func (w *StatsReporter) report(ctx context.Context) {
	stats, err := w.source.Execute(ctx)
	if err != nil {
		// Previous values stay exported.
		w.logger.Warn("lead stats unavailable", zap.Error(err))
		return
	}

	leadsByStatus.WithLabelValues(string(entity.LeadStatusPending)).Set(float64(stats.Pending))
	leadsByStatus.WithLabelValues(string(entity.LeadStatusScheduled)).Set(float64(stats.Scheduled))
	leadsByStatus.WithLabelValues(string(entity.LeadStatusCompleted)).Set(float64(stats.Completed))
	leadsByStatus.WithLabelValues(string(entity.LeadStatusCancelled)).Set(float64(stats.Cancelled))
	leadsRecent.Set(float64(stats.Recent))

	w.logger.Debug("lead stats reported", zap.Int("total", stats.Total), zap.Int("recent", stats.Recent))
}
