package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Money is a value object representing a non-negative monetary amount in cents.
// Storing integer cents avoids floating point rounding in price arithmetic.
// The zero value (0 cents) is valid: free articles and empty totals exist.
type Money struct {
	cents int64
}

// NewMoney creates a Money amount from integer cents.
// Negative amounts are rejected.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money amount",
			fmt.Errorf("%d cents is negative", cents),
		)
	}
	return Money{cents: cents}, nil
}

// Cents returns the amount in integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Multiply returns the amount multiplied by a non-negative quantity.
func (m Money) Multiply(qty int) (Money, error) {
	if qty < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is negative", qty),
		)
	}
	return Money{cents: m.cents * int64(qty)}, nil
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// IsEqual reports whether two amounts are equal.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount as a decimal string, e.g. "12.50".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
