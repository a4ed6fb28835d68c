package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnfulfilledOrdersQueryHandler reads the fulfillment backlog from the database.
type GetUnfulfilledOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnfulfilledOrdersQueryHandler creates a handler for backlog queries.
func NewGetUnfulfilledOrdersQueryHandler(db *gorm.DB) GetUnfulfilledOrdersQueryHandler {
	return GetUnfulfilledOrdersQueryHandler{db: db}
}

// Handle executes the query.
// Returns orders whose status is neither delivered, cancelled nor refunded,
// oldest first so the longest-waiting orders surface on top.
func (h GetUnfulfilledOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnfulfilledOrdersQuery,
) ([]GetUnfulfilledOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Actor().IsAdministrator() {
		return nil, services.ErrForbidden
	}

	orders := make([]GetUnfulfilledOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			buyer_id,
			status,
			created_at
		FROM orders
		WHERE status NOT IN (?, ?, ?)
		ORDER BY created_at
	`, order.Delivered.String(), order.Cancelled.String(), order.Refunded.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        uuid.UUID
			buyerID   uuid.UUID
			status    string
			createdAt time.Time
		)

		if err = rows.Scan(&id, &buyerID, &status, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		buyer, idErr := kernel.UUIDFromBytes(buyerID[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, GetUnfulfilledOrdersQueryResponse{
			ID:        orderID,
			BuyerID:   buyer,
			Status:    status,
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
