package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrDeleteClaimCommandIsNotConstructed = errors.New(
	"DeleteClaimCommand must be created via NewDeleteClaimCommand constructor",
)

// DeleteClaimCommand represents the claimant withdrawing their dispute.
type DeleteClaimCommand struct { //nolint:recvcheck //using for validation
	claimID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewDeleteClaimCommand creates a command to withdraw a claim.
func NewDeleteClaimCommand(claimID kernel.UUID, actor kernel.Actor) (DeleteClaimCommand, error) {
	cmd := DeleteClaimCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClaimID(claimID),
		cmd.setActor(actor),
	); err != nil {
		return DeleteClaimCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteClaimCommand) Validate() error {
	return c.guard.Validate(ErrDeleteClaimCommandIsNotConstructed)
}

// ClaimID returns the claim to withdraw.
func (c DeleteClaimCommand) ClaimID() kernel.UUID {
	return c.claimID
}

// Actor returns the claimant.
func (c DeleteClaimCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *DeleteClaimCommand) setClaimID(claimID kernel.UUID) error {
	if err := claimID.Validate(); err != nil {
		return err
	}

	c.claimID = claimID
	return nil
}

func (c *DeleteClaimCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
