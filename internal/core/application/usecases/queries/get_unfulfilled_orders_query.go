package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetUnfulfilledOrdersQueryIsNotConstructed = errors.New(
	"GetUnfulfilledOrdersQuery must be created via NewGetUnfulfilledOrdersQuery constructor",
)

// GetUnfulfilledOrdersQuery retrieves every order that still needs fulfillment
// work: anything not yet delivered, cancelled or refunded. Back office
// monitoring view, administrator only.
type GetUnfulfilledOrdersQuery struct { //nolint:recvcheck //using for validation
	actor kernel.Actor

	guard guard.ConstructorGuard
}

// NewGetUnfulfilledOrdersQuery creates a query for the fulfillment backlog.
func NewGetUnfulfilledOrdersQuery(actor kernel.Actor) (GetUnfulfilledOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetUnfulfilledOrdersQuery{}, err
	}

	return GetUnfulfilledOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnfulfilledOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnfulfilledOrdersQueryIsNotConstructed)
}

// Actor returns the requesting user.
func (q GetUnfulfilledOrdersQuery) Actor() kernel.Actor {
	return q.actor
}

// GetUnfulfilledOrdersQueryResponse is one row of the fulfillment backlog.
type GetUnfulfilledOrdersQueryResponse struct {
	ID        kernel.UUID
	BuyerID   kernel.UUID
	Status    string
	CreatedAt time.Time
}
