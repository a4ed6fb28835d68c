package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// CreateDeliveryCommandHandler handles the business logic for delivery creation.
// Enforces the 1:1 order/delivery relationship and advances a pending or
// preparing order to ready_for_delivery in the same transaction.
type CreateDeliveryCommandHandler struct {
	uowFactory OrderDeliveryUoWFactory
	catalog    ports.CatalogReader
	policy     services.AccessPolicy
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation.
func NewCreateDeliveryCommandHandler(
	uowFactory OrderDeliveryUoWFactory,
	catalog ports.CatalogReader,
	policy services.AccessPolicy,
	notifier ports.Notifier,
	logger *slog.Logger,
) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		policy:     policy,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the delivery creation command.
// Only an administrator or a seller owning at least one of the order's
// articles may create a delivery. Fails with delivery.ErrDeliveryAlreadyExists
// when the order already has one.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
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

	if err = h.authorize(ctx, cmd.Actor(), aggregate); err != nil {
		return err
	}

	_, err = uow.DeliveryRepository().GetByOrderID(ctx, aggregate.ID())
	switch {
	case err == nil:
		return delivery.ErrDeliveryAlreadyExists
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	newDelivery, err := delivery.NewDelivery(
		cmd.DeliveryID(), aggregate.ID(), cmd.Address(), cmd.CourierID(), cmd.TargetDate(),
	)
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, newDelivery); err != nil {
		return err
	}

	if status := aggregate.Status(); status == order.Pending || status == order.Preparing {
		if err = aggregate.MarkReady(); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.Notify(ctx, ports.Notification{
		RecipientID: aggregate.BuyerID(),
		Subject:     "Delivery update",
		Body:        fmt.Sprintf("A delivery has been scheduled for order %s.", aggregate.ID()),
	}); err != nil {
		h.logger.WarnContext(ctx, "notification publish failed",
			slog.String("recipient", aggregate.BuyerID().String()),
			slog.Any("error", err),
		)
	}

	return nil
}

func (h *CreateDeliveryCommandHandler) authorize(
	ctx context.Context,
	actor kernel.Actor,
	aggregate *order.Order,
) error {
	if actor.IsAdministrator() {
		return h.policy.CanCreateDelivery(actor, nil)
	}

	sellerIDs, err := h.catalog.GetSellerIDs(ctx, aggregate.ArticleIDs())
	if err != nil {
		return err
	}
	return h.policy.CanCreateDelivery(actor, sellerIDs)
}
