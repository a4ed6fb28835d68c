package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// UpdateClaimDetailsCommandHandler handles claim description revisions.
type UpdateClaimDetailsCommandHandler struct {
	uowFactory ClaimUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateClaimDetailsCommandHandler creates a handler for claim revisions.
func NewUpdateClaimDetailsCommandHandler(
	uowFactory ClaimUoWFactory,
	policy services.AccessPolicy,
) UpdateClaimDetailsCommandHandler {
	return UpdateClaimDetailsCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the claim revision command. Claimant only.
func (h *UpdateClaimDetailsCommandHandler) Handle(ctx context.Context, cmd UpdateClaimDetailsCommand) error {
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

	if err = h.policy.CanUpdateClaimDetails(cmd.Actor(), aggregate); err != nil {
		return err
	}

	if err = aggregate.UpdateDescription(cmd.Description()); err != nil {
		return err
	}

	if err = uow.ClaimRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
