package notify

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// SMTPChannel mails the notification through a plain SMTP relay.
type SMTPChannel struct {
	from   string
	dialer *gomail.Dialer
}

func NewSMTPChannel(cfg SMTPConfig) *SMTPChannel {
	return &SMTPChannel{
		from:   cfg.From,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
	}
}

func (s *SMTPChannel) Name() string {
	return "smtp"
}

func (s *SMTPChannel) Send(ctx context.Context, n Notification) error {
	m := s.buildMessage(n)

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *SMTPChannel) buildMessage(n Notification) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", n.To)
	m.SetHeader("Subject", n.Subject)
	m.SetBody("text/plain", n.Message)
	return m
}
