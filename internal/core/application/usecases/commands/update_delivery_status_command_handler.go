package commands

import (
	"context"
	"fmt"
	"log/slog"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// UpdateDeliveryStatusCommandHandler handles delivery progress reports.
// The delivery status change and its propagation to the parent order commit
// in one transaction, so the two can never diverge.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory OrderDeliveryUoWFactory
	policy     services.AccessPolicy
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery progress reports.
func NewUpdateDeliveryStatusCommandHandler(
	uowFactory OrderDeliveryUoWFactory,
	policy services.AccessPolicy,
	notifier ports.Notifier,
	logger *slog.Logger,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the delivery status report.
// Only the assigned courier or an administrator may report. EnRoute moves the
// parent order to in_delivery, Completed moves it to delivered; Scheduled has
// no order effect.
func (h *UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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

	aggregate, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = h.policy.CanUpdateDelivery(cmd.Actor(), aggregate); err != nil {
		return err
	}

	effect, err := aggregate.ChangeStatus(cmd.Status())
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	parent, err := uow.OrderRepository().Get(ctx, aggregate.OrderID())
	if err != nil {
		return err
	}

	switch effect {
	case delivery.OrderEffectStartDelivery:
		err = parent.StartDelivery()
	case delivery.OrderEffectCompleteDelivery:
		err = parent.CompleteDelivery()
	case delivery.OrderEffectNone:
	}
	if err != nil {
		return err
	}

	if effect != delivery.OrderEffectNone {
		if err = uow.OrderRepository().Update(ctx, parent); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.Notify(ctx, ports.Notification{
		RecipientID: parent.BuyerID(),
		Subject:     "Delivery update",
		Body:        fmt.Sprintf("Delivery for order %s is now %s.", parent.ID(), aggregate.Status()),
	}); err != nil {
		h.logger.WarnContext(ctx, "notification publish failed",
			slog.String("recipient", parent.BuyerID().String()),
			slog.Any("error", err),
		)
	}

	return nil
}
