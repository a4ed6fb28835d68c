package order

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Sentinel errors for status transition failures. Handlers match on these with
// errors.Is to translate domain conflicts into the API error taxonomy.
var (
	// ErrTerminalStatus is returned when any transition is attempted from
	// Delivered or Refunded.
	ErrTerminalStatus = errors.New("order status is terminal")

	// ErrInvalidStatusTransition is returned when the requested transition is
	// not allowed from the current status.
	ErrInvalidStatusTransition = errors.New("order status transition is not allowed")

	// ErrInvalidStateForDeletion is returned when deleting an order that is
	// neither pending nor cancelled.
	ErrInvalidStateForDeletion = errors.New("order can only be deleted while pending or cancelled")
)

// Status represents the lifecycle state of a marketplace order.
// It implements a state machine with defined transitions to keep order state
// consistent with stock reservations and the attached delivery.
//
// State transitions:
//
//	Pending ──> Preparing ──> ReadyForDelivery ──> InDelivery ──> Delivered
//	   │            │                 │                │
//	   │            │                 └──── revert ────┘ (delivery deleted -> Preparing)
//	   ├────────────┴──> Cancelled ──> Refunded
//	   └──> Refunded
//
// Delivered and Refunded are terminal: no transition leaves them.
// InDelivery and Delivered are never set directly by clients; they are derived
// from delivery status changes only.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status after checkout. Stock for every line is
	// reserved while an order is Pending.
	Pending

	// Preparing indicates the seller has started picking the order.
	Preparing

	// ReadyForDelivery indicates a delivery record has been created for the order.
	ReadyForDelivery

	// InDelivery indicates the courier reported the delivery as en route.
	InDelivery

	// Delivered indicates the delivery was completed. Terminal.
	Delivered

	// Cancelled indicates the order was withdrawn before fulfillment.
	Cancelled

	// Refunded indicates the buyer was reimbursed. Terminal.
	Refunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "unknown",
		Pending:          "pending",
		Preparing:        "preparing",
		ReadyForDelivery: "ready_for_delivery",
		InDelivery:       "in_delivery",
		Delivered:        "delivered",
		Cancelled:        "cancelled",
		Refunded:         "refunded",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:          "pending",
		Preparing:        "preparing",
		ReadyForDelivery: "ready_for_delivery",
		InDelivery:       "in_delivery",
		Delivered:        "delivered",
		Cancelled:        "cancelled",
		Refunded:         "refunded",
	}
}

// StatusFromString parses an order status as stored or received over the wire.
// Unrecognized names are rejected.
func StatusFromString(str string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == str {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"order status",
		fmt.Errorf("%q is not a valid order status", str),
	)
}

// String returns the wire name of the status, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the status is one of the declared lifecycle values.
// Used when rehydrating orders from persistence.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%d: %w", s, ErrInvalidStatusTransition)
	}
	return nil
}

// IsTerminal reports whether no further transition may leave this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Refunded
}

// CanBeDeleted reports whether an order in this status may be destroyed.
// Only pending and cancelled orders are deletable.
func (s Status) CanBeDeleted() bool {
	return s == Pending || s == Cancelled
}

// HoldsReservations reports whether stock is still reserved for an order in
// this status. Reservations are released when the order leaves Pending through
// cancellation or deletion, and consumed once fulfillment proceeds.
func (s Status) HoldsReservations() bool {
	return s == Pending
}

// MarkReady transitions the status to ReadyForDelivery.
// Allowed from Pending and Preparing; driven by delivery creation.
func (s Status) MarkReady() (Status, error) {
	if err := s.checkNotTerminal(); err != nil {
		return 0, err
	}
	if s != Pending && s != Preparing {
		return 0, fmt.Errorf("cannot mark %s order ready for delivery: %w", s, ErrInvalidStatusTransition)
	}
	return ReadyForDelivery, nil
}

// StartDelivery transitions the status to InDelivery.
// Allowed from ReadyForDelivery; repeating the transition from InDelivery is
// accepted so couriers can re-report progress without error.
func (s Status) StartDelivery() (Status, error) {
	if err := s.checkNotTerminal(); err != nil {
		return 0, err
	}
	if s != ReadyForDelivery && s != InDelivery {
		return 0, fmt.Errorf("cannot start delivery for %s order: %w", s, ErrInvalidStatusTransition)
	}
	return InDelivery, nil
}

// CompleteDelivery transitions the status to Delivered.
// Allowed from ReadyForDelivery and InDelivery; driven by delivery completion.
func (s Status) CompleteDelivery() (Status, error) {
	if err := s.checkNotTerminal(); err != nil {
		return 0, err
	}
	if s != ReadyForDelivery && s != InDelivery {
		return 0, fmt.Errorf("cannot complete delivery for %s order: %w", s, ErrInvalidStatusTransition)
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
// Allowed from Pending and Preparing only.
func (s Status) Cancel() (Status, error) {
	if err := s.checkNotTerminal(); err != nil {
		return 0, err
	}
	if s != Pending && s != Preparing {
		return 0, fmt.Errorf("cannot cancel %s order: %w", s, ErrInvalidStatusTransition)
	}
	return Cancelled, nil
}

// Refund transitions the status to Refunded.
// Allowed from Pending and Cancelled only.
func (s Status) Refund() (Status, error) {
	if err := s.checkNotTerminal(); err != nil {
		return 0, err
	}
	if s != Pending && s != Cancelled {
		return 0, fmt.Errorf("cannot refund %s order: %w", s, ErrInvalidStatusTransition)
	}
	return Refunded, nil
}

// RevertToPreparing transitions the status back to Preparing.
// Allowed from ReadyForDelivery and InDelivery; driven by delivery deletion.
func (s Status) RevertToPreparing() (Status, error) {
	if err := s.checkNotTerminal(); err != nil {
		return 0, err
	}
	if s != ReadyForDelivery && s != InDelivery {
		return 0, fmt.Errorf("cannot revert %s order to preparing: %w", s, ErrInvalidStatusTransition)
	}
	return Preparing, nil
}

func (s Status) checkNotTerminal() error {
	if s.IsTerminal() {
		return fmt.Errorf("%s: %w", s, ErrTerminalStatus)
	}
	return nil
}
