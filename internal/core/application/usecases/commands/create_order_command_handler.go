package commands

import (
	"context"
	"fmt"
	"log/slog"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for placing an order.
// Resolves prices from the catalog, reserves stock for every line, and
// persists the new order; reservation and persistence share one transaction,
// so a failed reservation rolls back all prior ones.
type CreateOrderCommandHandler struct {
	uowFactory OrderStockUoWFactory
	catalog    ports.CatalogReader
	policy     services.AccessPolicy
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory OrderStockUoWFactory,
	catalog ports.CatalogReader,
	policy services.AccessPolicy,
	notifier ports.Notifier,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		policy:     policy,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the order placement command.
// Builds lines with catalog price snapshots, creates the order in pending
// status, and reserves stock for every line referencing a variation. The
// whole placement is all-or-nothing.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanCreateOrder(cmd.Actor()); err != nil {
		return err
	}

	lines, err := h.buildLines(ctx, cmd.Lines())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.Actor().ID(), lines)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ledger := uow.StockLedger()
	for _, line := range newOrder.Lines() {
		if line.VariationID() == nil {
			continue
		}
		if err = ledger.Reserve(ctx, *line.VariationID(), line.Quantity()); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notify(ctx, ports.Notification{
		RecipientID: newOrder.BuyerID(),
		Subject:     "Order placed",
		Body:        fmt.Sprintf("Your order %s has been placed.", newOrder.ID()),
	})

	return nil
}

// buildLines turns caller line inputs into domain lines with price snapshots.
// The catalog supplies the unit price; a variation given for the wrong
// article is rejected before anything is reserved.
func (h *CreateOrderCommandHandler) buildLines(
	ctx context.Context,
	inputs []OrderLineInput,
) ([]order.Line, error) {
	lines := make([]order.Line, 0, len(inputs))
	for _, input := range inputs {
		article, err := h.catalog.GetArticle(ctx, input.ArticleID)
		if err != nil {
			return nil, err
		}

		if input.VariationID != nil {
			ok, err := h.catalog.ArticleHasVariation(ctx, input.ArticleID, *input.VariationID)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, errs.NewObjectNotFoundError("variationID", *input.VariationID)
			}
		}

		line, err := order.NewLine(kernel.NewUUID(), input.ArticleID, input.VariationID, input.Quantity, article.Price)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (h *CreateOrderCommandHandler) notify(ctx context.Context, n ports.Notification) {
	if err := h.notifier.Notify(ctx, n); err != nil {
		h.logger.WarnContext(ctx, "notification publish failed",
			slog.String("recipient", n.RecipientID.String()),
			slog.Any("error", err),
		)
	}
}
