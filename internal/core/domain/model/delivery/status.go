package delivery

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
)

// ErrDeliveryAlreadyCompleted is returned when mutating or deleting a delivery
// whose status is Completed. Completed is terminal.
var ErrDeliveryAlreadyCompleted = errors.New("delivery is already completed")

// Status represents the fulfillment state of a delivery.
// The set is a closed enum: free-text courier updates are parsed through
// StatusFromString and anything outside the declared values is rejected,
// so the propagation to the parent order is always well defined.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Scheduled is the initial status: the delivery is planned but the
	// courier has not picked up the parcel yet.
	Scheduled

	// EnRoute indicates the courier reported the parcel as in transit.
	EnRoute

	// Completed indicates the parcel reached the buyer. Terminal.
	Completed
)

// OrderEffect describes how a delivery status propagates to the parent order.
// The mapping is one-directional: delivery drives order, never the reverse.
type OrderEffect int

const (
	// OrderEffectNone leaves the parent order untouched.
	OrderEffectNone OrderEffect = iota

	// OrderEffectStartDelivery moves the parent order to in_delivery.
	OrderEffectStartDelivery

	// OrderEffectCompleteDelivery moves the parent order to delivered.
	OrderEffectCompleteDelivery
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Scheduled: "scheduled",
		EnRoute:   "en_route",
		Completed: "completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Scheduled: "scheduled",
		EnRoute:   "en_route",
		Completed: "completed",
	}
}

// StatusFromString parses a delivery status received over the wire.
// Unrecognized strings are rejected: an unmapped fulfillment state would
// leave the parent order silently inconsistent.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"delivery status",
		fmt.Errorf("%q is not a valid delivery status", s),
	)
}

// String returns the wire name of the status, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the status is one of the declared values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery status",
			fmt.Errorf("%d is not a valid delivery status", s),
		)
	}
	return nil
}

// IsCompleted reports whether the delivery reached its terminal status.
func (s Status) IsCompleted() bool {
	return s == Completed
}

// OrderEffect returns the declared propagation of this status to the parent
// order: Scheduled has no effect, EnRoute starts delivery, Completed
// completes it.
func (s Status) OrderEffect() OrderEffect {
	switch s {
	case EnRoute:
		return OrderEffectStartDelivery
	case Completed:
		return OrderEffectCompleteDelivery
	default:
		return OrderEffectNone
	}
}

// Transition validates moving from the current status to next.
// Completed deliveries accept no further changes; everything else may move
// freely within the declared enum, including re-reporting the same status.
func (s Status) Transition(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if s.IsCompleted() {
		return 0, ErrDeliveryAlreadyCompleted
	}
	return next, nil
}
