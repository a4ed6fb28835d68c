package ports

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

// ErrInsufficientStock is returned by Reserve when the variation's available
// stock is lower than the requested quantity.
var ErrInsufficientStock = errors.New("insufficient stock for variation")

// StockLedger is the authoritative record of sellable stock per article
// variation. Reserve decrements the available counter atomically so that
// concurrent reservations can never drive it below zero; Release is the
// compensating increment when an order is cancelled, refunded or abandoned.
type StockLedger interface {
	// Reserve decrements the available stock of the variation by quantity.
	// Returns ErrInsufficientStock when not enough stock remains; the
	// ledger is left untouched in that case.
	Reserve(ctx context.Context, variationID kernel.UUID, quantity int) error

	// Release returns quantity units of the variation to the available pool.
	Release(ctx context.Context, variationID kernel.UUID, quantity int) error
}
