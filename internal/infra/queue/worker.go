package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

// Consumer is the subset of *amqp.Channel the worker needs.
type Consumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

type Worker struct {
	Channel   Consumer
	Deliverer Deliverer
	Timeout   time.Duration
	Logger    *zap.Logger
}

func NewWorker(ch Consumer, deliverer Deliverer, timeout time.Duration, logger *zap.Logger) *Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Worker{Channel: ch, Deliverer: deliverer, Timeout: timeout, Logger: logger}
}

// Start consumes queueName until ctx is cancelled or the delivery channel closes.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName,
		"",
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("queue: register consumer: %w", err)
	}

	w.Logger.Info("notification worker waiting", zap.String("queue", queueName))
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			w.handle(ctx, d)
		}
	}
}

// handle acks delivered notifications and dead-letters everything else.
func (w *Worker) handle(ctx context.Context, d amqp.Delivery) {
	var payload LeadNotificationPayload
	if err := json.Unmarshal(d.Body, &payload); err != nil {
		w.Logger.Error("malformed notification payload", zap.Error(err))
		d.Nack(false, false)
		return
	}

	dctx, cancel := context.WithTimeout(ctx, w.Timeout)
	defer cancel()

	err := w.Deliverer.Dispatch(dctx, entity.LeadNotification{Lead: payload.Lead, ProductName: payload.ProductName})
	if err != nil {
		w.Logger.Error("notification delivery failed", zap.String("lead_id", payload.Lead.ID), zap.Error(err))
		d.Nack(false, false)
		return
	}
	d.Ack(false)
}
