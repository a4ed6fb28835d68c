package services

import (
	"errors"

	"marketplace/internal/core/domain/model/claim"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// ErrForbidden is returned when the acting user lacks the role or ownership
// required for an operation. It is returned after the target entity has been
// loaded, so it reveals nothing beyond what the caller already implied.
var ErrForbidden = errors.New("operation is not permitted for this actor")

// AccessPolicy is the domain service deciding whether an actor may perform a
// fulfillment operation. Every rule is of the form "administrator, or a
// specific relationship between the actor and the resource": buyer-of-order,
// seller-of-line-item, assigned-courier, or claimant.
//
// The policy is stateless; relationship data (e.g. which sellers own the
// articles of an order) is supplied by the caller, which has already loaded
// the aggregates involved.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanCreateOrder permits buyers placing an order for themselves, or an
// administrator.
func (AccessPolicy) CanCreateOrder(actor kernel.Actor) error {
	if actor.IsAdministrator() || actor.Role() == kernel.RoleBuyer {
		return nil
	}
	return ErrForbidden
}

// CanDeleteOrder permits the buyer who placed the order, or an administrator.
func (AccessPolicy) CanDeleteOrder(actor kernel.Actor, o *order.Order) error {
	if actor.IsAdministrator() || o.IsOwnedBy(actor.ID()) {
		return nil
	}
	return ErrForbidden
}

// CanViewOrder permits the buyer who placed the order, or an administrator.
func (AccessPolicy) CanViewOrder(actor kernel.Actor, o *order.Order) error {
	if actor.IsAdministrator() || o.IsOwnedBy(actor.ID()) {
		return nil
	}
	return ErrForbidden
}

// CanCreateDelivery permits an administrator, or a seller owning at least one
// of the order's articles. sellerIDs are the owners of the order's articles
// as resolved from the catalog.
func (AccessPolicy) CanCreateDelivery(actor kernel.Actor, sellerIDs []kernel.UUID) error {
	if actor.IsAdministrator() {
		return nil
	}
	if actor.Role() == kernel.RoleSeller {
		for _, sellerID := range sellerIDs {
			if sellerID.IsEqual(actor.ID()) {
				return nil
			}
		}
	}
	return ErrForbidden
}

// CanUpdateDelivery permits an administrator or the assigned courier.
// An unassigned delivery can only be updated by an administrator.
func (AccessPolicy) CanUpdateDelivery(actor kernel.Actor, d *delivery.Delivery) error {
	if actor.IsAdministrator() {
		return nil
	}
	if actor.Role() == kernel.RoleCourier && d.IsAssignedTo(actor.ID()) {
		return nil
	}
	return ErrForbidden
}

// CanDeleteDelivery permits administrators only.
func (AccessPolicy) CanDeleteDelivery(actor kernel.Actor) error {
	if actor.IsAdministrator() {
		return nil
	}
	return ErrForbidden
}

// CanAssignCourier permits administrators only.
func (AccessPolicy) CanAssignCourier(actor kernel.Actor) error {
	if actor.IsAdministrator() {
		return nil
	}
	return ErrForbidden
}

// CanCreateClaim permits the buyer who placed the disputed order.
func (AccessPolicy) CanCreateClaim(actor kernel.Actor, o *order.Order) error {
	if o.IsOwnedBy(actor.ID()) {
		return nil
	}
	return ErrForbidden
}

// CanUpdateClaimStatus permits administrators only.
func (AccessPolicy) CanUpdateClaimStatus(actor kernel.Actor) error {
	if actor.IsAdministrator() {
		return nil
	}
	return ErrForbidden
}

// CanUpdateClaimDetails permits the claimant only.
// Administrators edit status, not the claimant's own account of the dispute.
func (AccessPolicy) CanUpdateClaimDetails(actor kernel.Actor, c *claim.Claim) error {
	if c.IsFiledBy(actor.ID()) {
		return nil
	}
	return ErrForbidden
}

// CanDeleteClaim permits the claimant only.
func (AccessPolicy) CanDeleteClaim(actor kernel.Actor, c *claim.Claim) error {
	if c.IsFiledBy(actor.ID()) {
		return nil
	}
	return ErrForbidden
}
