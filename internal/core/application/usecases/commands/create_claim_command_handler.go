package commands

import (
	"context"

	"marketplace/internal/core/domain/model/claim"
	"marketplace/internal/core/domain/services"
)

// CreateClaimCommandHandler handles claim filing.
// Claims are informational: filing one never touches the order or delivery.
type CreateClaimCommandHandler struct {
	uowFactory OrderClaimUoWFactory
	policy     services.AccessPolicy
}

// NewCreateClaimCommandHandler creates a handler for claim filing.
func NewCreateClaimCommandHandler(uowFactory OrderClaimUoWFactory, policy services.AccessPolicy) CreateClaimCommandHandler {
	return CreateClaimCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the claim filing command.
// Only the buyer who placed the order may file against it.
func (h *CreateClaimCommandHandler) Handle(ctx context.Context, cmd CreateClaimCommand) error {
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

	disputed, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.policy.CanCreateClaim(cmd.Actor(), disputed); err != nil {
		return err
	}

	newClaim, err := claim.NewClaim(cmd.ClaimID(), disputed.ID(), cmd.Actor().ID(), cmd.Description())
	if err != nil {
		return err
	}

	if err = uow.ClaimRepository().Add(ctx, newClaim); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
