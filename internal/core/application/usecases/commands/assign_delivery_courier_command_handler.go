package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// AssignDeliveryCourierCommandHandler handles courier assignment.
type AssignDeliveryCourierCommandHandler struct {
	uowFactory DeliveryUoWFactory
	policy     services.AccessPolicy
}

// NewAssignDeliveryCourierCommandHandler creates a handler for courier assignment.
func NewAssignDeliveryCourierCommandHandler(
	uowFactory DeliveryUoWFactory,
	policy services.AccessPolicy,
) AssignDeliveryCourierCommandHandler {
	return AssignDeliveryCourierCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the courier assignment command. Administrator only.
func (h *AssignDeliveryCourierCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanAssignCourier(cmd.Actor()); err != nil {
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

	if err = aggregate.AssignCourier(cmd.CourierID()); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
