package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrDeleteDeliveryCommandIsNotConstructed = errors.New(
	"DeleteDeliveryCommand must be created via NewDeleteDeliveryCommand constructor",
)

// DeleteDeliveryCommand represents a request to remove a delivery record.
// Completed deliveries cannot be removed; on success the parent order falls
// back to preparing.
type DeleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	actor      kernel.Actor

	guard guard.ConstructorGuard
}

// NewDeleteDeliveryCommand creates a command to delete a delivery.
func NewDeleteDeliveryCommand(deliveryID kernel.UUID, actor kernel.Actor) (DeleteDeliveryCommand, error) {
	cmd := DeleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setActor(actor),
	); err != nil {
		return DeleteDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to delete.
func (c DeleteDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Actor returns the user requesting the deletion.
func (c DeleteDeliveryCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *DeleteDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *DeleteDeliveryCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
