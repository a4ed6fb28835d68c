package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/claim"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateClaimStatusCommandIsNotConstructed = errors.New(
	"UpdateClaimStatusCommand must be created via NewUpdateClaimStatusCommand constructor",
)

// UpdateClaimStatusCommand represents an administrator moving a claim through
// its review lifecycle. The raw status string is parsed at construction time.
type UpdateClaimStatusCommand struct { //nolint:recvcheck //using for validation
	claimID kernel.UUID
	actor   kernel.Actor
	status  claim.Status

	guard guard.ConstructorGuard
}

// NewUpdateClaimStatusCommand creates a command to set a claim's review status.
func NewUpdateClaimStatusCommand(
	claimID kernel.UUID,
	actor kernel.Actor,
	rawStatus string,
) (UpdateClaimStatusCommand, error) {
	cmd := UpdateClaimStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClaimID(claimID),
		cmd.setActor(actor),
		cmd.setStatus(rawStatus),
	); err != nil {
		return UpdateClaimStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateClaimStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateClaimStatusCommandIsNotConstructed)
}

// ClaimID returns the claim under review.
func (c UpdateClaimStatusCommand) ClaimID() kernel.UUID {
	return c.claimID
}

// Actor returns the administrator performing the review.
func (c UpdateClaimStatusCommand) Actor() kernel.Actor {
	return c.actor
}

// Status returns the parsed target status.
func (c UpdateClaimStatusCommand) Status() claim.Status {
	return c.status
}

func (c *UpdateClaimStatusCommand) setClaimID(claimID kernel.UUID) error {
	if err := claimID.Validate(); err != nil {
		return err
	}

	c.claimID = claimID
	return nil
}

func (c *UpdateClaimStatusCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateClaimStatusCommand) setStatus(rawStatus string) error {
	status, err := claim.StatusFromString(rawStatus)
	if err != nil {
		return err
	}

	c.status = status
	return nil
}
