package commands

import (
	"context"
	"fmt"
	"log/slog"

	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// UpdateClaimStatusCommandHandler handles claim review decisions.
// A claim's status never feeds back into order or delivery state; the
// claimant is notified of the decision instead.
type UpdateClaimStatusCommandHandler struct {
	uowFactory ClaimUoWFactory
	policy     services.AccessPolicy
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewUpdateClaimStatusCommandHandler creates a handler for claim review decisions.
func NewUpdateClaimStatusCommandHandler(
	uowFactory ClaimUoWFactory,
	policy services.AccessPolicy,
	notifier ports.Notifier,
	logger *slog.Logger,
) UpdateClaimStatusCommandHandler {
	return UpdateClaimStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the claim review command. Administrator only.
func (h *UpdateClaimStatusCommandHandler) Handle(ctx context.Context, cmd UpdateClaimStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanUpdateClaimStatus(cmd.Actor()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.ClaimRepository().Get(ctx, cmd.ClaimID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = uow.ClaimRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.Notify(ctx, ports.Notification{
		RecipientID: aggregate.ClaimantID(),
		Subject:     "Claim update",
		Body:        fmt.Sprintf("Your claim %s is now %s.", aggregate.ID(), aggregate.Status()),
	}); err != nil {
		h.logger.WarnContext(ctx, "notification publish failed",
			slog.String("recipient", aggregate.ClaimantID().String()),
			slog.Any("error", err),
		)
	}

	return nil
}
