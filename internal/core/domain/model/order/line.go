package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine factory function.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is a single article/variation/quantity entry within an order.
// The unit price is snapshotted at purchase time and never re-read from the
// catalog. Lines are owned exclusively by their order: they are created with
// it and never mutated individually.
type Line struct {
	id          kernel.UUID
	articleID   kernel.UUID
	variationID *kernel.UUID
	quantity    int
	unitPrice   kernel.Money

	isConstructed bool
}

// NewLine creates a validated order line.
// variationID is optional: articles without purchasable variants are ordered
// directly. Quantity must be positive.
func NewLine(
	id kernel.UUID,
	articleID kernel.UUID,
	variationID *kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
) (Line, error) {
	line := Line{isConstructed: true}

	if err := errors.Join(
		line.setID(id),
		line.setArticleID(articleID),
		line.setVariationID(variationID),
		line.setQuantity(quantity),
	); err != nil {
		return Line{}, err
	}

	line.unitPrice = unitPrice
	return line, nil
}

// Validate ensures the Line instance was created through NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (l Line) ID() kernel.UUID {
	return l.id
}

// ArticleID returns the identifier of the ordered article.
func (l Line) ArticleID() kernel.UUID {
	return l.articleID
}

// VariationID returns the ordered variation, or nil when the article has none.
func (l Line) VariationID() *kernel.UUID {
	return l.variationID
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price per unit snapshotted at purchase time.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Subtotal returns unit price multiplied by quantity.
func (l Line) Subtotal() kernel.Money {
	subtotal, _ := l.unitPrice.Multiply(l.quantity)
	return subtotal
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setArticleID(articleID kernel.UUID) error {
	if err := articleID.Validate(); err != nil {
		return err
	}
	l.articleID = articleID
	return nil
}

func (l *Line) setVariationID(variationID *kernel.UUID) error {
	if variationID == nil {
		return nil
	}
	if err := variationID.Validate(); err != nil {
		return err
	}
	v := *variationID
	l.variationID = &v
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	l.quantity = quantity
	return nil
}
