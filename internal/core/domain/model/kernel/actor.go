package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role classifies the authenticated caller of an operation.
// Roles are assigned by the identity provider; the core never invents them.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleBuyer places orders and raises claims against them.
	RoleBuyer

	// RoleSeller owns articles and may create deliveries for orders
	// containing their line items.
	RoleSeller

	// RoleCourier is assigned to deliveries and reports their progress.
	RoleCourier

	// RoleAdministrator may perform any operation.
	RoleAdministrator
)

func getRoleNames() map[Role]string {
	return map[Role]string{
		RoleBuyer:         "buyer",
		RoleSeller:        "seller",
		RoleCourier:       "courier",
		RoleAdministrator: "administrator",
	}
}

// RoleFromString parses a role name as produced by the identity provider.
// Unrecognized names are rejected.
func RoleFromString(s string) (Role, error) {
	for role, name := range getRoleNames() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// String returns the wire name of the role, or "unknown" for invalid values.
func (r Role) String() string {
	if name, ok := getRoleNames()[r]; ok {
		return name
	}
	return "unknown"
}

// Validate checks that the role is one of the declared values.
func (r Role) Validate() error {
	if _, ok := getRoleNames()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// Actor is the authenticated caller identity resolved by the identity provider.
// It is a value object carried through every command for authorization checks.
type Actor struct {
	id   UUID
	role Role
}

// NewActor creates an Actor from a validated user ID and role.
func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// ID returns the actor's user identifier.
func (a Actor) ID() UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// IsAdministrator reports whether the actor carries the administrator role.
func (a Actor) IsAdministrator() bool {
	return a.role == RoleAdministrator
}

// Validate checks that the actor was built from a valid identity.
func (a Actor) Validate() error {
	if err := a.id.Validate(); err != nil {
		return err
	}
	return a.role.Validate()
}
