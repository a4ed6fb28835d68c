package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// Notification is a user-facing event published after a state change:
// order placed, delivery advanced, claim resolved.
type Notification struct {
	RecipientID kernel.UUID
	Subject     string
	Body        string
}

// Notifier publishes notifications to the messaging backbone. Publishing is
// best effort: handlers log failures but never fail the business operation
// over an undelivered notification.
type Notifier interface {
	Notify(ctx context.Context, notification Notification) error
}
