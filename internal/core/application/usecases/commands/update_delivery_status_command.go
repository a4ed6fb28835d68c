package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents a courier's or administrator's report
// of delivery progress. The raw status string is parsed at construction time;
// anything outside the declared enum never reaches the handler.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	actor      kernel.Actor
	status     delivery.Status

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command to report delivery progress.
// rawStatus must parse to a declared delivery status.
func NewUpdateDeliveryStatusCommand(
	deliveryID kernel.UUID,
	actor kernel.Actor,
	rawStatus string,
) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setActor(actor),
		cmd.setStatus(rawStatus),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the delivery being reported on.
func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Actor returns the user reporting progress.
func (c UpdateDeliveryStatusCommand) Actor() kernel.Actor {
	return c.actor
}

// Status returns the parsed target status.
func (c UpdateDeliveryStatusCommand) Status() delivery.Status {
	return c.status
}

func (c *UpdateDeliveryStatusCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateDeliveryStatusCommand) setStatus(rawStatus string) error {
	status, err := delivery.StatusFromString(rawStatus)
	if err != nil {
		return err
	}

	c.status = status
	return nil
}
