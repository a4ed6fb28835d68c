package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("at least one order line is required")
)

// OrderLineInput is the caller-supplied shape of a single order line.
// Prices are never accepted from the caller; they are resolved from the
// catalog when the command is handled.
type OrderLineInput struct {
	ArticleID   kernel.UUID
	VariationID *kernel.UUID
	Quantity    int
}

func (in OrderLineInput) validate() error {
	if err := in.ArticleID.Validate(); err != nil {
		return err
	}
	if in.VariationID != nil {
		if err := in.VariationID.Validate(); err != nil {
			return err
		}
	}
	if in.Quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", in.Quantity),
		)
	}
	return nil
}

// CreateOrderCommand represents a request to place a new order.
// The order enters the pending status and reserves stock for every line that
// references a variation; reservation and persistence happen in one
// transaction, so a single unavailable line aborts the whole order.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, buyer, []OrderLineInput{
//	    {ArticleID: articleID, VariationID: &variationID, Quantity: 2},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor
	lines   []OrderLineInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates the order ID, the acting user, and every line input.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	lines []OrderLineInput,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setActor(actor),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the user placing the order.
func (c CreateOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []OrderLineInput {
	lines := make([]OrderLineInput, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLineInput) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for _, line := range lines {
		if err := line.validate(); err != nil {
			return err
		}
	}

	c.lines = make([]OrderLineInput, len(lines))
	copy(c.lines, lines)
	return nil
}
