// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read projections straight from
// the database; they never mutate state.
package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetBuyerOrdersQueryIsNotConstructed = errors.New(
	"GetBuyerOrdersQuery must be created via NewGetBuyerOrdersQuery constructor",
)

// GetBuyerOrdersQuery retrieves all orders placed by a buyer.
// Buyers may only list their own orders; administrators may list anyone's.
type GetBuyerOrdersQuery struct { //nolint:recvcheck //using for validation
	buyerID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewGetBuyerOrdersQuery creates a query for a buyer's order history.
func NewGetBuyerOrdersQuery(buyerID kernel.UUID, actor kernel.Actor) (GetBuyerOrdersQuery, error) {
	query := GetBuyerOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := buyerID.Validate(); err != nil {
		return GetBuyerOrdersQuery{}, err
	}
	if err := actor.Validate(); err != nil {
		return GetBuyerOrdersQuery{}, err
	}

	query.buyerID = buyerID
	query.actor = actor
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBuyerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBuyerOrdersQueryIsNotConstructed)
}

// BuyerID returns the buyer whose orders are requested.
func (q GetBuyerOrdersQuery) BuyerID() kernel.UUID {
	return q.buyerID
}

// Actor returns the requesting user.
func (q GetBuyerOrdersQuery) Actor() kernel.Actor {
	return q.actor
}

// GetBuyerOrdersQueryResponse is one row of a buyer's order history.
type GetBuyerOrdersQueryResponse struct {
	ID         kernel.UUID
	Status     string
	TotalPrice kernel.Money
	CreatedAt  time.Time
}
