package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var ErrNoChannels = errors.New("notify: no notification channel configured")

var notificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "lead_notifications_total",
		Help: "Lead notification attempts by channel and result",
	},
	[]string{"channel", "result"},
)

// Channel delivers a notification through one external service.
type Channel interface {
	Name() string
	Send(ctx context.Context, n Notification) error
}

// Chain tries its channels in order. The first success wins and every channel is tried at most once.
type Chain struct {
	channels []Channel
	logger   *zap.Logger
}

func NewChain(logger *zap.Logger, channels ...Channel) *Chain {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Chain{logger: logger}
	for _, ch := range channels {
		if ch != nil {
			c.channels = append(c.channels, ch)
		}
	}
	return c
}

func (c *Chain) Len() int {
	return len(c.channels)
}

func (c *Chain) Send(ctx context.Context, n Notification) error {
	if len(c.channels) == 0 {
		return ErrNoChannels
	}

	var errs []error
	for _, ch := range c.channels {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		err := ch.Send(ctx, n)
		if err == nil {
			notificationsTotal.WithLabelValues(ch.Name(), "sent").Inc()
			c.logger.Info("lead notification sent", zap.String("channel", ch.Name()), zap.String("request_id", n.RequestID))
			return nil
		}
		notificationsTotal.WithLabelValues(ch.Name(), "failed").Inc()
		c.logger.Warn("notification channel failed", zap.String("channel", ch.Name()), zap.String("request_id", n.RequestID), zap.Error(err))
		errs = append(errs, fmt.Errorf("%s: %w", ch.Name(), err))
	}
	return errors.Join(errs...)
}
