package claim

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the review state of a claim.
// Claims have an independent lifecycle: no claim status change ever alters
// the parent order or its delivery.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// PendingReview is the initial status of a freshly filed claim.
	PendingReview

	// InProgress indicates an administrator is handling the claim.
	InProgress

	// Rejected indicates the claim was reviewed and dismissed.
	Rejected

	// Refunded indicates the claim was accepted and the buyer reimbursed.
	Refunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "unknown",
		PendingReview: "pending_review",
		InProgress:    "in_progress",
		Rejected:      "rejected",
		Refunded:      "refunded",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingReview: "pending_review",
		InProgress:    "in_progress",
		Rejected:      "rejected",
		Refunded:      "refunded",
	}
}

// StatusFromString parses a claim status received over the wire.
// Administrators may only set values from the declared enum.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"claim status",
		fmt.Errorf("%q is not a valid claim status", s),
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
			"claim status",
			fmt.Errorf("%d is not a valid claim status", s),
		)
	}
	return nil
}
