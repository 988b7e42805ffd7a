package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// RelayChannel posts the notification as JSON to a form-relay endpoint such as Formspree.
type RelayChannel struct {
	name     string
	endpoint string
	client   *resty.Client
}

func NewRelayChannel(name, endpoint string, timeout time.Duration) *RelayChannel {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	return &RelayChannel{name: name, endpoint: endpoint, client: client}
}

func (r *RelayChannel) Name() string {
	return r.name
}

func (r *RelayChannel) Send(ctx context.Context, n Notification) error {
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(n).
		Post(r.endpoint)
	if err != nil {
		return fmt.Errorf("relay request failed: %w", err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return fmt.Errorf("relay returned status %d", resp.StatusCode())
	}
	return nil
}
