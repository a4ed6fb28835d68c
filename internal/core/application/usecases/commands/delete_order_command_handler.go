package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// DeleteOrderCommandHandler handles the business logic for order deletion.
// The cascade removes claims, the delivery record and the order with its
// lines in one transaction; stock reserved by a still-pending order is
// released before the rows go away.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory UoWFactory, policy services.AccessPolicy) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the order deletion command.
// Fails with ErrInvalidStateForDeletion unless the order is pending or
// cancelled; only the owning buyer or an administrator may delete.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.policy.CanDeleteOrder(cmd.Actor(), aggregate); err != nil {
		return err
	}

	if err = aggregate.EnsureDeletable(); err != nil {
		return err
	}

	// Pending orders still hold reservations; give the stock back before
	// the lines are removed. Cancelled orders released theirs already.
	if aggregate.HoldsReservations() {
		ledger := uow.StockLedger()
		for _, line := range aggregate.Lines() {
			if line.VariationID() == nil {
				continue
			}
			if err = ledger.Release(ctx, *line.VariationID(), line.Quantity()); err != nil {
				return err
			}
		}
	}

	if err = uow.ClaimRepository().DeleteByOrderID(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().DeleteByOrderID(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
