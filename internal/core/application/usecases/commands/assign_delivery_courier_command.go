package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrAssignDeliveryCourierCommandIsNotConstructed = errors.New(
	"AssignDeliveryCourierCommand must be created via NewAssignDeliveryCourierCommand constructor",
)

// AssignDeliveryCourierCommand represents a request to attach a courier to an
// existing delivery. Reassignment is allowed while the delivery is not
// completed.
type AssignDeliveryCourierCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	courierID  kernel.UUID
	actor      kernel.Actor

	guard guard.ConstructorGuard
}

// NewAssignDeliveryCourierCommand creates a command to assign a courier.
func NewAssignDeliveryCourierCommand(
	deliveryID kernel.UUID,
	courierID kernel.UUID,
	actor kernel.Actor,
) (AssignDeliveryCourierCommand, error) {
	cmd := AssignDeliveryCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setCourierID(courierID),
		cmd.setActor(actor),
	); err != nil {
		return AssignDeliveryCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCourierCommandIsNotConstructed)
}

// DeliveryID returns the delivery receiving the courier.
func (c AssignDeliveryCourierCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CourierID returns the courier to assign.
func (c AssignDeliveryCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Actor returns the user performing the assignment.
func (c AssignDeliveryCourierCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *AssignDeliveryCourierCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *AssignDeliveryCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *AssignDeliveryCourierCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
