package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/xavierca1/nicsan-site/internal/config"
	"github.com/xavierca1/nicsan-site/internal/entity"
)

// Sender is satisfied by Chain.
type Sender interface {
	Send(ctx context.Context, n Notification) error
}

// Dispatcher renders lead notifications and delivers them inline.
type Dispatcher struct {
	Sender    Sender
	Recipient string
}

func NewDispatcher(sender Sender, recipient string) *Dispatcher {
	return &Dispatcher{Sender: sender, Recipient: recipient}
}

func (d *Dispatcher) Dispatch(ctx context.Context, n entity.LeadNotification) error {
	return d.Sender.Send(ctx, NewNotification(d.Recipient, n))
}

// ChainFromConfig builds the channel chain in its fixed order:
// primary relay, secondary relay, SendGrid, SMTP. Unconfigured channels are skipped.
func ChainFromConfig(cfg config.NotifyConfig, logger *zap.Logger) *Chain {
	var channels []Channel
	if cfg.RelayPrimaryURL != "" {
		channels = append(channels, NewRelayChannel("relay_primary", cfg.RelayPrimaryURL, cfg.Timeout))
	}
	if cfg.RelaySecondaryURL != "" {
		channels = append(channels, NewRelayChannel("relay_secondary", cfg.RelaySecondaryURL, cfg.Timeout))
	}
	if cfg.SendGridAPIKey != "" && cfg.SendGridFromEmail != "" {
		channels = append(channels, NewSendGridChannel(SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}))
	}
	if cfg.SMTPHost != "" {
		channels = append(channels, NewSMTPChannel(SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPass,
			From:     cfg.SMTPFrom,
		}))
	}
	return NewChain(logger, channels...)
}
