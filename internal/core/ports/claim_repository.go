package ports

import (
	"context"

	"marketplace/internal/core/domain/model/claim"
	"marketplace/internal/core/domain/model/kernel"
)

// ClaimRepository defines the persistence contract for claim aggregates.
type ClaimRepository interface {
	// Add persists a new claim aggregate.
	Add(ctx context.Context, aggregate *claim.Claim) error

	// Update persists changes to an existing claim aggregate.
	Update(ctx context.Context, aggregate *claim.Claim) error

	// Get retrieves a claim by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*claim.Claim, error)

	// GetAllByOrderID retrieves every claim filed against an order.
	GetAllByOrderID(ctx context.Context, orderID kernel.UUID) ([]*claim.Claim, error)

	// Delete removes a claim by its unique identifier.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteByOrderID removes all claims filed against an order.
	// Used by order deletion cascades; zero matching claims is not an error.
	DeleteByOrderID(ctx context.Context, orderID kernel.UUID) error
}
