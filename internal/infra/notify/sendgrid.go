package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
	// Host overrides the API host, used by tests.
	Host string
}

// SendGridChannel sends the notification as a plain-text email through the SendGrid API.
type SendGridChannel struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewSendGridChannel(cfg SendGridConfig) *SendGridChannel {
	if cfg.FromName == "" {
		cfg.FromName = "Nicsan Insurance"
	}
	request := sendgrid.GetRequest(cfg.APIKey, "/v3/mail/send", cfg.Host)
	request.Method = "POST"
	return &SendGridChannel{
		client:    &sendgrid.Client{Request: request},
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

func (s *SendGridChannel) Name() string {
	return "sendgrid"
}

func (s *SendGridChannel) Send(ctx context.Context, n Notification) error {
	if n.To == "" {
		return errors.New("sendgrid: recipient is empty")
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("", n.To)
	message := mail.NewSingleEmailPlainText(from, n.Subject, to, n.Message)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}
	return nil
}
