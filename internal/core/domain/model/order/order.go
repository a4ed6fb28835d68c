package order

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for a buyer's purchase. It owns the immutable
// set of order lines, the total price computed from their snapshots, and the
// lifecycle status.
//
// Order maintains these invariants:
//   - At least one line; lines never change after creation
//   - Total price equals the sum of line subtotals
//   - Status transitions follow the state machine in Status
//   - InDelivery/Delivered are only reached through delivery propagation
//   - Deletion is only possible while Pending or Cancelled
type Order struct {
	id         kernel.UUID
	buyerID    kernel.UUID
	lines      []Line
	totalPrice kernel.Money
	status     Status
	createdAt  time.Time

	isConstructed bool
}

// NewOrder creates an order in Pending status from a validated line set.
// The total price is derived from the line subtotals; callers never supply it.
// Stock reservation is the caller's concern and must happen in the same
// logical transaction as persisting the new order.
func NewOrder(id kernel.UUID, buyerID kernel.UUID, lines []Line) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyerID(buyerID),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	o.totalPrice = sumSubtotals(o.lines)
	return o, nil
}

// RestoreOrder reconstructs an order from persistence.
// All fields including status and creation time come from storage; the status
// must be a valid lifecycle value.
func RestoreOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	lines []Line,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyerID(buyerID),
		o.setLines(lines),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.totalPrice = sumSubtotals(o.lines)
	return o, nil
}

// Validate ensures the Order instance was created through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the identifier of the buyer who placed the order.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// Lines returns a copy of the order's line items.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// ArticleIDs returns the distinct article identifiers referenced by the lines.
// Used by authorization to decide whether a seller owns part of the order.
func (o *Order) ArticleIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(o.lines))
	ids := make([]kernel.UUID, 0, len(o.lines))
	for _, line := range o.lines {
		if _, ok := seen[line.ArticleID()]; ok {
			continue
		}
		seen[line.ArticleID()] = struct{}{}
		ids = append(ids, line.ArticleID())
	}
	return ids
}

// TotalPrice returns the order total, the sum of line subtotals.
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the order's creation time in UTC.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsOwnedBy reports whether the given user placed the order.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.buyerID.IsEqual(userID)
}

// HoldsReservations reports whether stock is still reserved for this order.
func (o *Order) HoldsReservations() bool {
	return o.status.HoldsReservations()
}

// MarkReady advances the order to ReadyForDelivery.
// Called when a delivery record is attached to the order.
func (o *Order) MarkReady() error {
	return o.transition(o.status.MarkReady)
}

// StartDelivery advances the order to InDelivery.
// Driven exclusively by the delivery tracker reporting the courier en route.
func (o *Order) StartDelivery() error {
	return o.transition(o.status.StartDelivery)
}

// CompleteDelivery advances the order to Delivered.
// Driven exclusively by the delivery tracker reporting completion.
func (o *Order) CompleteDelivery() error {
	return o.transition(o.status.CompleteDelivery)
}

// Cancel withdraws the order before fulfillment.
func (o *Order) Cancel() error {
	return o.transition(o.status.Cancel)
}

// Refund marks the order as reimbursed. Terminal.
func (o *Order) Refund() error {
	return o.transition(o.status.Refund)
}

// RevertToPreparing moves the order back to Preparing after its delivery
// record was deleted.
func (o *Order) RevertToPreparing() error {
	return o.transition(o.status.RevertToPreparing)
}

// EnsureDeletable returns nil if the order may be destroyed.
// Orders are deletable only while Pending or Cancelled; any other status
// yields ErrInvalidStateForDeletion (terminal states included).
func (o *Order) EnsureDeletable() error {
	if !o.status.CanBeDeleted() {
		return ErrInvalidStateForDeletion
	}
	return nil
}

func (o *Order) transition(apply func() (Status, error)) error {
	newStatus, err := apply()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	o.buyerID = buyerID
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func sumSubtotals(lines []Line) kernel.Money {
	var total kernel.Money
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}
	return total
}
