// Package ports defines the contracts between the application core and the
// infrastructure adapters: repositories, the stock ledger, the unit of work,
// and outbound collaborators (catalog, notification sink). These interfaces
// enable dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored together with their line items; lines are created with
// the order and removed with it, never mutated individually.
type OrderRepository interface {
	// Add persists a new order aggregate and all of its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status changes of an existing order.
	// Lines are immutable and are not touched by updates.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its lines by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPendingCreatedBefore retrieves pending orders created before the
	// cutoff. Used by the stale-order job to reclaim abandoned reservations.
	GetAllPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// Delete removes an order and its lines.
	// Callers must verify deletability and release reservations first;
	// associated deliveries and claims are removed through their own
	// repositories inside the same unit of work.
	Delete(ctx context.Context, id kernel.UUID) error
}
