package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/xavierca1/nicsan-site/internal/config"
	"github.com/xavierca1/nicsan-site/internal/entity"
	"github.com/xavierca1/nicsan-site/internal/infra/notify"
	"github.com/xavierca1/nicsan-site/internal/infra/queue"
	"github.com/xavierca1/nicsan-site/internal/usecase"
)

// notifications wires the channel chain and, when a broker is configured, the queue in front of it.
type notifications struct {
	Dispatcher usecase.NotificationDispatcher
	Broker     entity.Pinger
	close      func() error
}

func setupNotifications(ctx context.Context, cfg *config.Config, logger *zap.Logger) *notifications {
	chain := notify.ChainFromConfig(cfg.Notify, logger)
	if chain.Len() == 0 {
		logger.Warn("no notification channels configured, leads will only be stored")
	}
	inline := notify.NewDispatcher(chain, cfg.Notify.Recipient)

	n := &notifications{Dispatcher: inline, close: func() error { return nil }}
	if cfg.RabbitMQURL == "" {
		return n
	}

	mq, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
	if err != nil {
		logger.Warn("rabbitmq unavailable, notifying inline", zap.Error(err))
		return n
	}

	worker := queue.NewWorker(mq.Ch, inline, cfg.Notify.Timeout, logger)
	go func() {
		if err := worker.Start(ctx, queue.QueueName); err != nil {
			logger.Error("notification worker stopped", zap.Error(err))
		}
	}()

	n.Dispatcher = queue.NewDispatcher(queue.NewProducer(mq.Ch), inline, logger)
	n.Broker = mq
	n.close = mq.Close
	logger.Info("lead notifications queued", zap.String("queue", queue.QueueName))
	return n
}
