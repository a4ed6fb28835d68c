package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateClaimCommandIsNotConstructed = errors.New(
	"CreateClaimCommand must be created via NewCreateClaimCommand constructor",
)

// CreateClaimCommand represents a buyer filing a dispute against an order.
type CreateClaimCommand struct { //nolint:recvcheck //using for validation
	claimID     kernel.UUID
	orderID     kernel.UUID
	actor       kernel.Actor
	description string

	guard guard.ConstructorGuard
}

// NewCreateClaimCommand creates a command to file a claim.
func NewCreateClaimCommand(
	claimID kernel.UUID,
	orderID kernel.UUID,
	actor kernel.Actor,
	description string,
) (CreateClaimCommand, error) {
	cmd := CreateClaimCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClaimID(claimID),
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setDescription(description),
	); err != nil {
		return CreateClaimCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateClaimCommand) Validate() error {
	return c.guard.Validate(ErrCreateClaimCommandIsNotConstructed)
}

// ClaimID returns the unique identifier for the new claim.
func (c CreateClaimCommand) ClaimID() kernel.UUID {
	return c.claimID
}

// OrderID returns the disputed order.
func (c CreateClaimCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the buyer filing the claim.
func (c CreateClaimCommand) Actor() kernel.Actor {
	return c.actor
}

// Description returns the free-text account of the dispute.
func (c CreateClaimCommand) Description() string {
	return c.description
}

func (c *CreateClaimCommand) setClaimID(claimID kernel.UUID) error {
	if err := claimID.Validate(); err != nil {
		return err
	}

	c.claimID = claimID
	return nil
}

func (c *CreateClaimCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateClaimCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateClaimCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}

	c.description = description
	return nil
}
