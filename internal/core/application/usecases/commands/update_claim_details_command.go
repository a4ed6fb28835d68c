package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateClaimDetailsCommandIsNotConstructed = errors.New(
	"UpdateClaimDetailsCommand must be created via NewUpdateClaimDetailsCommand constructor",
)

// UpdateClaimDetailsCommand represents the claimant revising the free-text
// account of their dispute.
type UpdateClaimDetailsCommand struct { //nolint:recvcheck //using for validation
	claimID     kernel.UUID
	actor       kernel.Actor
	description string

	guard guard.ConstructorGuard
}

// NewUpdateClaimDetailsCommand creates a command to revise a claim description.
func NewUpdateClaimDetailsCommand(
	claimID kernel.UUID,
	actor kernel.Actor,
	description string,
) (UpdateClaimDetailsCommand, error) {
	cmd := UpdateClaimDetailsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClaimID(claimID),
		cmd.setActor(actor),
		cmd.setDescription(description),
	); err != nil {
		return UpdateClaimDetailsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateClaimDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateClaimDetailsCommandIsNotConstructed)
}

// ClaimID returns the claim being revised.
func (c UpdateClaimDetailsCommand) ClaimID() kernel.UUID {
	return c.claimID
}

// Actor returns the claimant.
func (c UpdateClaimDetailsCommand) Actor() kernel.Actor {
	return c.actor
}

// Description returns the new free-text description.
func (c UpdateClaimDetailsCommand) Description() string {
	return c.description
}

func (c *UpdateClaimDetailsCommand) setClaimID(claimID kernel.UUID) error {
	if err := claimID.Validate(); err != nil {
		return err
	}

	c.claimID = claimID
	return nil
}

func (c *UpdateClaimDetailsCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateClaimDetailsCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}

	c.description = description
	return nil
}
