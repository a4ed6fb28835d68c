package commands

import (
	"errors"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrReleaseStaleOrdersCommandIsNotConstructed = errors.New(
	"ReleaseStaleOrdersCommand must be created via NewReleaseStaleOrdersCommand constructor",
)

// ReleaseStaleOrdersCommand represents a maintenance sweep that cancels
// pending orders created before the cutoff and returns their reserved stock
// to the pool. Issued by the background job, not by users.
type ReleaseStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewReleaseStaleOrdersCommand creates a command to sweep stale pending orders.
func NewReleaseStaleOrdersCommand(cutoff time.Time) (ReleaseStaleOrdersCommand, error) {
	cmd := ReleaseStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if cutoff.IsZero() {
		return ReleaseStaleOrdersCommand{}, errs.NewValueIsRequiredError("cutoff")
	}
	cmd.cutoff = cutoff

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrReleaseStaleOrdersCommandIsNotConstructed)
}

// Cutoff returns the creation time before which pending orders are considered
// abandoned.
func (c ReleaseStaleOrdersCommand) Cutoff() time.Time {
	return c.cutoff
}
