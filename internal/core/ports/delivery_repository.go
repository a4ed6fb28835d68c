package ports

import (
	"context"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// Deliveries are 1:1 with orders; GetByOrderID is the uniqueness probe used
// before attaching a new delivery to an order.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByOrderID retrieves the delivery attached to an order.
	// Returns an ObjectNotFoundError when the order has no delivery.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// Delete removes a delivery by its unique identifier.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteByOrderID removes the delivery attached to an order, if any.
	// Used by order deletion cascades; deleting a missing delivery is not an error.
	DeleteByOrderID(ctx context.Context, orderID kernel.UUID) error
}
