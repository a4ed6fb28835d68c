package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// DeleteDeliveryCommandHandler handles delivery removal.
// Removing the delivery reverts the parent order to preparing so a new
// delivery can be scheduled; both changes commit in one transaction.
type DeleteDeliveryCommandHandler struct {
	uowFactory OrderDeliveryUoWFactory
	policy     services.AccessPolicy
}

// NewDeleteDeliveryCommandHandler creates a handler for delivery removal.
func NewDeleteDeliveryCommandHandler(
	uowFactory OrderDeliveryUoWFactory,
	policy services.AccessPolicy,
) DeleteDeliveryCommandHandler {
	return DeleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the delivery removal command.
// Administrator only; fails with delivery.ErrDeliveryAlreadyCompleted when
// the parcel already reached the buyer.
func (h *DeleteDeliveryCommandHandler) Handle(ctx context.Context, cmd DeleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanDeleteDelivery(cmd.Actor()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = aggregate.EnsureDeletable(); err != nil {
		return err
	}

	parent, err := uow.OrderRepository().Get(ctx, aggregate.OrderID())
	if err != nil {
		return err
	}

	if err = parent.RevertToPreparing(); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, parent); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
