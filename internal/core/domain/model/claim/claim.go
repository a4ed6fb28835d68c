package claim

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrClaimIsNotConstructed is returned when a Claim instance was not created
// through the NewClaim or RestoreClaim factory functions.
var ErrClaimIsNotConstructed = errors.New("Claim must be created via NewClaim or RestoreClaim")

// Claim records a post-purchase dispute raised by a buyer against an order.
// Claims are informational: their lifecycle never blocks or unblocks order or
// delivery transitions, and multiple claims may exist for the same order.
type Claim struct {
	id          kernel.UUID
	orderID     kernel.UUID
	claimantID  kernel.UUID
	description string
	status      Status

	isConstructed bool
}

// NewClaim files a claim in PendingReview status.
func NewClaim(id, orderID, claimantID kernel.UUID, description string) (*Claim, error) {
	c := &Claim{
		status:        PendingReview,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setOrderID(orderID),
		c.setClaimantID(claimantID),
		c.setDescription(description),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreClaim reconstructs a claim from persistence.
func RestoreClaim(id, orderID, claimantID kernel.UUID, description string, status Status) (*Claim, error) {
	c := &Claim{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setOrderID(orderID),
		c.setClaimantID(claimantID),
		c.setDescription(description),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	c.status = status
	return c, nil
}

// Validate ensures the Claim instance was created through a factory function.
func (c *Claim) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClaimIsNotConstructed
	}
	return nil
}

// ID returns the claim's unique identifier.
func (c *Claim) ID() kernel.UUID {
	return c.id
}

// OrderID returns the disputed order's identifier.
func (c *Claim) OrderID() kernel.UUID {
	return c.orderID
}

// ClaimantID returns the buyer who filed the claim.
func (c *Claim) ClaimantID() kernel.UUID {
	return c.claimantID
}

// Description returns the claimant's free-text account of the dispute.
func (c *Claim) Description() string {
	return c.description
}

// Status returns the current review status.
func (c *Claim) Status() Status {
	return c.status
}

// IsFiledBy reports whether the given user filed this claim.
func (c *Claim) IsFiledBy(userID kernel.UUID) bool {
	return c.claimantID.IsEqual(userID)
}

// ChangeStatus sets a new review status. Administrator operation; the status
// must be one of the declared enum values.
func (c *Claim) ChangeStatus(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	c.status = next
	return nil
}

// UpdateDescription replaces the claimant's free-text description.
func (c *Claim) UpdateDescription(description string) error {
	return c.setDescription(description)
}

func (c *Claim) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Claim) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *Claim) setClaimantID(claimantID kernel.UUID) error {
	if err := claimantID.Validate(); err != nil {
		return err
	}
	c.claimantID = claimantID
	return nil
}

func (c *Claim) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}
