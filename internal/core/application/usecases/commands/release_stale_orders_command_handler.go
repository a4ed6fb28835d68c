package commands

import (
	"context"
	"log/slog"
)

// ReleaseStaleOrdersCommandHandler cancels abandoned pending orders.
// Buyers who never complete checkout leave reservations that would otherwise
// starve the stock pool; the sweep cancels those orders and releases their
// stock in one transaction.
type ReleaseStaleOrdersCommandHandler struct {
	uowFactory OrderStockUoWFactory
	logger     *slog.Logger
}

// NewReleaseStaleOrdersCommandHandler creates a handler for the stale-order sweep.
func NewReleaseStaleOrdersCommandHandler(
	uowFactory OrderStockUoWFactory,
	logger *slog.Logger,
) ReleaseStaleOrdersCommandHandler {
	return ReleaseStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the sweep.
// Every pending order created before the cutoff is cancelled and its
// reservations are released.
func (h *ReleaseStaleOrdersCommandHandler) Handle(ctx context.Context, cmd ReleaseStaleOrdersCommand) error {
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

	stale, err := uow.OrderRepository().GetAllPendingCreatedBefore(ctx, cmd.Cutoff())
	if err != nil {
		return err
	}

	if len(stale) == 0 {
		return uow.Commit(ctx)
	}

	ledger := uow.StockLedger()
	for _, aggregate := range stale {
		if err = aggregate.Cancel(); err != nil {
			return err
		}

		for _, line := range aggregate.Lines() {
			if line.VariationID() == nil {
				continue
			}
			if err = ledger.Release(ctx, *line.VariationID(), line.Quantity()); err != nil {
				return err
			}
		}

		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return err
		}

		h.logger.InfoContext(ctx, "stale pending order cancelled",
			slog.String("order_id", aggregate.ID().String()),
			slog.Time("created_at", aggregate.CreatedAt()),
		)
	}

	return uow.Commit(ctx)
}
