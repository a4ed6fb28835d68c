package http

import "time"

// ErrorResponse is the uniform error body for all failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse carries the server-generated identifier of a new resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// OrderLineRequest is one requested line of a new order. Prices are resolved
// server-side from the catalog.
type OrderLineRequest struct {
	ArticleID   string  `json:"article_id"`
	VariationID *string `json:"variation_id,omitempty"`
	Quantity    int     `json:"quantity"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	Lines []OrderLineRequest `json:"lines"`
}

// CreateDeliveryRequest is the body of POST /api/v1/orders/:id/delivery.
type CreateDeliveryRequest struct {
	Street     string    `json:"street"`
	City       string    `json:"city"`
	Zip        string    `json:"zip"`
	CourierID  *string   `json:"courier_id,omitempty"`
	TargetDate time.Time `json:"target_date"`
}

// UpdateDeliveryStatusRequest is the body of PATCH /api/v1/deliveries/:id/status.
type UpdateDeliveryStatusRequest struct {
	Status string `json:"status"`
}

// AssignCourierRequest is the body of PATCH /api/v1/deliveries/:id/courier.
type AssignCourierRequest struct {
	CourierID string `json:"courier_id"`
}

// CreateClaimRequest is the body of POST /api/v1/orders/:id/claims.
type CreateClaimRequest struct {
	Description string `json:"description"`
}

// UpdateClaimStatusRequest is the body of PATCH /api/v1/claims/:id/status.
type UpdateClaimStatusRequest struct {
	Status string `json:"status"`
}

// UpdateClaimDetailsRequest is the body of PATCH /api/v1/claims/:id.
type UpdateClaimDetailsRequest struct {
	Description string `json:"description"`
}

// StatusUpdateResponse confirms a status change with the resource id and its
// new status.
type StatusUpdateResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// OrderResponse is one row of a buyer's order history.
type OrderResponse struct {
	ID         string    `json:"id"`
	Status     string    `json:"status"`
	TotalPrice int64     `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

// UnfulfilledOrderResponse is one row of the fulfillment backlog.
type UnfulfilledOrderResponse struct {
	ID        string    `json:"id"`
	BuyerID   string    `json:"buyer_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
