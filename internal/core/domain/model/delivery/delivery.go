package delivery

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through the NewDelivery or RestoreDelivery factory functions.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

	// ErrDeliveryAlreadyExists is returned when creating a delivery for an
	// order that already has one. Deliveries are 1:1 with orders.
	ErrDeliveryAlreadyExists = errors.New("order already has a delivery")
)

// Address is the destination of a delivery.
// A value object: all fields are required and immutable after construction.
type Address struct {
	street string
	city   string
	zip    string

	isConstructed bool
}

// NewAddress creates a validated delivery address.
func NewAddress(street, city, zip string) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}
	if zip == "" {
		return Address{}, errs.NewValueIsRequiredError("zip")
	}
	return Address{street: street, city: city, zip: zip, isConstructed: true}, nil
}

// Validate ensures the Address was created through NewAddress.
func (a Address) Validate() error {
	if !a.isConstructed {
		return errs.NewValueIsRequiredError("address must be created via NewAddress")
	}
	return nil
}

// Street returns the street line of the address.
func (a Address) Street() string { return a.street }

// City returns the city of the address.
func (a Address) City() string { return a.city }

// Zip returns the postal code of the address.
func (a Address) Zip() string { return a.zip }

// Delivery is the fulfillment record tracking physical transport of an order
// to the buyer. At most one delivery exists per order, and its status is the
// externally visible fulfillment state that feeds back into the order status.
type Delivery struct {
	id         kernel.UUID
	orderID    kernel.UUID
	courierID  *kernel.UUID
	address    Address
	targetDate time.Time
	status     Status

	isConstructed bool
}

// NewDelivery creates a delivery in Scheduled status.
// courierID is optional; it may be assigned later via AssignCourier.
func NewDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	address Address,
	courierID *kernel.UUID,
	targetDate time.Time,
) (*Delivery, error) {
	d := &Delivery{
		status:        Scheduled,
		targetDate:    targetDate,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setAddress(address),
		d.setCourierID(courierID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a delivery from persistence.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	address Address,
	courierID *kernel.UUID,
	targetDate time.Time,
	status Status,
) (*Delivery, error) {
	d := &Delivery{
		targetDate:    targetDate,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setAddress(address),
		d.setCourierID(courierID),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	d.status = status
	return d, nil
}

// Validate ensures the Delivery instance was created through a factory function.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the identifier of the fulfilled order.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// CourierID returns the assigned courier, or nil when unassigned.
func (d *Delivery) CourierID() *kernel.UUID {
	return d.courierID
}

// Address returns the delivery destination.
func (d *Delivery) Address() Address {
	return d.address
}

// TargetDate returns the planned delivery date.
func (d *Delivery) TargetDate() time.Time {
	return d.targetDate
}

// Status returns the current delivery status.
func (d *Delivery) Status() Status {
	return d.status
}

// IsAssignedTo reports whether the given courier is assigned to this delivery.
func (d *Delivery) IsAssignedTo(courierID kernel.UUID) bool {
	return d.courierID != nil && d.courierID.IsEqual(courierID)
}

// ChangeStatus moves the delivery to a new status.
// Completed deliveries reject any change with ErrDeliveryAlreadyCompleted.
// The returned OrderEffect tells the caller how to propagate the change to
// the parent order.
func (d *Delivery) ChangeStatus(next Status) (OrderEffect, error) {
	newStatus, err := d.status.Transition(next)
	if err != nil {
		return OrderEffectNone, err
	}
	d.status = newStatus
	return newStatus.OrderEffect(), nil
}

// AssignCourier attaches a courier to the delivery.
// Reassignment is allowed while the delivery is not completed.
func (d *Delivery) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if d.status.IsCompleted() {
		return ErrDeliveryAlreadyCompleted
	}
	d.courierID = &courierID
	return nil
}

// EnsureDeletable returns nil if the delivery may be removed.
// Completed deliveries cannot be deleted: the order has already been handed
// over to the buyer.
func (d *Delivery) EnsureDeletable() error {
	if d.status.IsCompleted() {
		return ErrDeliveryAlreadyCompleted
	}
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	d.address = address
	return nil
}

func (d *Delivery) setCourierID(courierID *kernel.UUID) error {
	if courierID == nil {
		return nil
	}
	if err := courierID.Validate(); err != nil {
		return err
	}
	c := *courierID
	d.courierID = &c
	return nil
}
