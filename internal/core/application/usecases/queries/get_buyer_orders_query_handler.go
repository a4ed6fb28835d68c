package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBuyerOrdersQueryHandler reads a buyer's order history from the database.
type GetBuyerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetBuyerOrdersQueryHandler creates a handler for buyer order history queries.
func NewGetBuyerOrdersQueryHandler(db *gorm.DB) GetBuyerOrdersQueryHandler {
	return GetBuyerOrdersQueryHandler{db: db}
}

// Handle executes the query.
// Returns the buyer's orders newest first. A buyer asking for another buyer's
// history is rejected with services.ErrForbidden.
func (h GetBuyerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetBuyerOrdersQuery,
) ([]GetBuyerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Actor().IsAdministrator() && !query.Actor().ID().IsEqual(query.BuyerID()) {
		return nil, services.ErrForbidden
	}

	orders := make([]GetBuyerOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			total_price,
			created_at
		FROM orders
		WHERE buyer_id = ?
		ORDER BY created_at DESC
	`, query.BuyerID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         uuid.UUID
			status     string
			totalPrice int64
			createdAt  time.Time
		)

		if err = rows.Scan(&id, &status, &totalPrice, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		price, priceErr := kernel.NewMoney(totalPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		orders = append(orders, GetBuyerOrdersQueryResponse{
			ID:         orderID,
			Status:     status,
			TotalPrice: price,
			CreatedAt:  createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
