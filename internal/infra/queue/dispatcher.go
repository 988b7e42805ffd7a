package queue

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

type LeadNotificationPublisher interface {
	PublishLeadNotification(ctx context.Context, payload LeadNotificationPayload) error
}

// Deliverer sends a notification right away. notify.Dispatcher implements it.
type Deliverer interface {
	Dispatch(ctx context.Context, n entity.LeadNotification) error
}

// Dispatcher enqueues lead notifications for the worker and delivers inline when the broker refuses.
type Dispatcher struct {
	Producer LeadNotificationPublisher
	Inline   Deliverer
	Logger   *zap.Logger
}

func NewDispatcher(producer LeadNotificationPublisher, inline Deliverer, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{Producer: producer, Inline: inline, Logger: logger}
}

func (d *Dispatcher) Dispatch(ctx context.Context, n entity.LeadNotification) error {
	err := d.Producer.PublishLeadNotification(ctx, LeadNotificationPayload{
		Lead:        n.Lead,
		ProductName: n.ProductName,
		QueuedAt:    time.Now().UTC(),
	})
	if err == nil {
		return nil
	}

	d.Logger.Warn("enqueue failed, delivering inline", zap.String("lead_id", n.Lead.ID), zap.Error(err))
	if d.Inline == nil {
		return err
	}
	return d.Inline.Dispatch(ctx, n)
}
