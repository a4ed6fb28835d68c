// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its wire string so back office queries stay readable.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	BuyerID    uuid.UUID `gorm:"type:uuid;index"`
	TotalPrice int64
	Status     string    `gorm:"index"`
	CreatedAt  time.Time `gorm:"index"`
	Lines      []LineDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents a single order line row.
// Lines are created with their order and removed with it, never updated.
type LineDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID  `gorm:"type:uuid;index"`
	ArticleID   uuid.UUID  `gorm:"type:uuid;index"`
	VariationID *uuid.UUID `gorm:"type:uuid"`
	Quantity    int
	UnitPrice   int64
}

// TableName specifies the database table name for order line entities.
func (LineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	lines := aggregate.Lines()
	lineDTOs := make([]LineDTO, 0, len(lines))
	for _, line := range lines {
		var variationID *uuid.UUID
		if id := line.VariationID(); id != nil {
			raw := id.Bytes()
			variationID = &raw
		}

		lineDTOs = append(lineDTOs, LineDTO{
			ID:          line.ID().Bytes(),
			OrderID:     aggregate.ID().Bytes(),
			ArticleID:   line.ArticleID().Bytes(),
			VariationID: variationID,
			Quantity:    line.Quantity(),
			UnitPrice:   line.UnitPrice().Cents(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		BuyerID:    aggregate.BuyerID().Bytes(),
		TotalPrice: aggregate.TotalPrice().Cents(),
		Status:     aggregate.Status().String(),
		CreatedAt:  aggregate.CreatedAt(),
		Lines:      lineDTOs,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, buyerID, lines, status, dto.CreatedAt)
}

func lineToDomain(dto LineDTO) (order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Line{}, err
	}

	articleID, err := kernel.UUIDFromBytes(dto.ArticleID[:])
	if err != nil {
		return order.Line{}, err
	}

	var variationID *kernel.UUID
	if dto.VariationID != nil {
		vID, varErr := kernel.UUIDFromBytes((*dto.VariationID)[:])
		if varErr != nil {
			return order.Line{}, varErr
		}
		variationID = &vID
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Line{}, err
	}

	return order.NewLine(id, articleID, variationID, dto.Quantity, unitPrice)
}
