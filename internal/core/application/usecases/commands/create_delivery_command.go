package commands

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a request to attach a delivery to an order.
// Only one delivery may exist per order. A courier may be named up front or
// assigned later by an administrator.
//
// Example:
//
//	address, _ := delivery.NewAddress("12 Rue des Halles", "Lyon", "69002")
//	cmd, err := NewCreateDeliveryCommand(deliveryID, orderID, seller, address, nil, targetDate)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create delivery: %w", err)
//	}
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	orderID    kernel.UUID
	actor      kernel.Actor
	address    delivery.Address
	courierID  *kernel.UUID
	targetDate time.Time

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to attach a delivery to an order.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	orderID kernel.UUID,
	actor kernel.Actor,
	address delivery.Address,
	courierID *kernel.UUID,
	targetDate time.Time,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setAddress(address),
		cmd.setCourierID(courierID),
		cmd.setTargetDate(targetDate),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the unique identifier for the new delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// OrderID returns the order the delivery fulfills.
func (c CreateDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the user creating the delivery.
func (c CreateDeliveryCommand) Actor() kernel.Actor {
	return c.actor
}

// Address returns the delivery destination.
func (c CreateDeliveryCommand) Address() delivery.Address {
	return c.address
}

// CourierID returns the courier to assign up front, or nil.
func (c CreateDeliveryCommand) CourierID() *kernel.UUID {
	return c.courierID
}

// TargetDate returns the planned delivery date.
func (c CreateDeliveryCommand) TargetDate() time.Time {
	return c.targetDate
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateDeliveryCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateDeliveryCommand) setAddress(address delivery.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}

func (c *CreateDeliveryCommand) setCourierID(courierID *kernel.UUID) error {
	if courierID == nil {
		return nil
	}
	if err := courierID.Validate(); err != nil {
		return err
	}

	id := *courierID
	c.courierID = &id
	return nil
}

func (c *CreateDeliveryCommand) setTargetDate(targetDate time.Time) error {
	if targetDate.IsZero() {
		return errs.NewValueIsRequiredError("targetDate")
	}

	c.targetDate = targetDate
	return nil
}
