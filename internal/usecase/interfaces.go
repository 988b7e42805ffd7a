package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

// NotificationDispatcher hands a stored lead to the notification side.
// Implementations deliver inline or enqueue; either way the result is best-effort.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, n entity.LeadNotification) error
}

type Clock func() time.Time
