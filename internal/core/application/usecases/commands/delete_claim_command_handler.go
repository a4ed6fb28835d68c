package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// DeleteClaimCommandHandler handles claim withdrawal.
type DeleteClaimCommandHandler struct {
	uowFactory ClaimUoWFactory
	policy     services.AccessPolicy
}

// NewDeleteClaimCommandHandler creates a handler for claim withdrawal.
func NewDeleteClaimCommandHandler(uowFactory ClaimUoWFactory, policy services.AccessPolicy) DeleteClaimCommandHandler {
	return DeleteClaimCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the claim withdrawal command. Claimant only.
func (h *DeleteClaimCommandHandler) Handle(ctx context.Context, cmd DeleteClaimCommand) error {
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

	aggregate, err := uow.ClaimRepository().Get(ctx, cmd.ClaimID())
	if err != nil {
		return err
	}

	if err = h.policy.CanDeleteClaim(cmd.Actor(), aggregate); err != nil {
		return err
	}

	if err = uow.ClaimRepository().Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
