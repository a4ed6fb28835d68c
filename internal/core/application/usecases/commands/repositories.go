// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
// Each handler depends only on the narrowest composition it needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// ClaimRepoFactory provides access to the claim repository within a transaction.
	ClaimRepoFactory interface {
		ClaimRepository() ports.ClaimRepository
	}

	// StockLedgerFactory provides access to the stock ledger within a transaction.
	StockLedgerFactory interface {
		StockLedger() ports.StockLedger
	}

	// OrderStockUoW manages transactions spanning orders and stock.
	// Used where reservations and order changes must commit atomically.
	OrderStockUoW interface {
		TxManager
		OrderRepoFactory
		StockLedgerFactory
	}

	// OrderStockUoWFactory creates order/stock unit of work instances.
	OrderStockUoWFactory interface {
		Create() OrderStockUoW
	}

	// OrderDeliveryUoW manages transactions spanning orders and deliveries.
	// Used by operations where a delivery change propagates to the order.
	OrderDeliveryUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
	}

	// OrderDeliveryUoWFactory creates order/delivery unit of work instances.
	OrderDeliveryUoWFactory interface {
		Create() OrderDeliveryUoW
	}

	// DeliveryUoW manages transactions for delivery-only operations.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// OrderClaimUoW manages transactions spanning orders and claims.
	// Claim creation loads the order to check ownership in the same transaction.
	OrderClaimUoW interface {
		TxManager
		OrderRepoFactory
		ClaimRepoFactory
	}

	// OrderClaimUoWFactory creates order/claim unit of work instances.
	OrderClaimUoWFactory interface {
		Create() OrderClaimUoW
	}

	// ClaimUoW manages transactions for claim-only operations.
	ClaimUoW interface {
		TxManager
		ClaimRepoFactory
	}

	// ClaimUoWFactory creates claim unit of work instances.
	ClaimUoWFactory interface {
		Create() ClaimUoW
	}

	// UoW manages transactions across all fulfillment aggregates and the
	// stock ledger. Used by order deletion, which cascades to deliveries and
	// claims and releases reservations in one transaction.
	UoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
		ClaimRepoFactory
		StockLedgerFactory
	}

	// UoWFactory creates unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
