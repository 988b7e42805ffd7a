package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

// LeadNotificationPayload is the message body on q.lead-notifications.
type LeadNotificationPayload struct {
	Lead        entity.Lead `json:"lead"`
	ProductName string      `json:"product_name"`
	QueuedAt    time.Time   `json:"queued_at"`
}

// Publisher is the subset of *amqp.Channel the producer needs.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type RabbitMQProducer struct {
	Ch Publisher
}

func NewProducer(ch Publisher) *RabbitMQProducer {
	return &RabbitMQProducer{Ch: ch}
}

func (p *RabbitMQProducer) PublishLeadNotification(ctx context.Context, payload LeadNotificationPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("queue: encode payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			MessageId:    payload.Lead.ID,
			Timestamp:    payload.QueuedAt,
		},
	)
	if err != nil {
		return fmt.Errorf("queue: publish failed: %w", err)
	}
	return nil
}
