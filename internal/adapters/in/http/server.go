// Package http exposes the fulfillment operations over an echo HTTP server.
// Handlers stay thin: resolve the acting user from gateway headers, build a
// command or query, and map the outcome to a status code.
package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the API gateway after authentication.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

var errMissingIdentity = errors.New("missing user identity headers")

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler           commands.CreateOrderCommandHandler
	deleteOrderHandler           commands.DeleteOrderCommandHandler
	createDeliveryHandler        commands.CreateDeliveryCommandHandler
	updateDeliveryStatusHandler  commands.UpdateDeliveryStatusCommandHandler
	deleteDeliveryHandler        commands.DeleteDeliveryCommandHandler
	assignDeliveryCourierHandler commands.AssignDeliveryCourierCommandHandler
	createClaimHandler           commands.CreateClaimCommandHandler
	updateClaimStatusHandler     commands.UpdateClaimStatusCommandHandler
	updateClaimDetailsHandler    commands.UpdateClaimDetailsCommandHandler
	deleteClaimHandler           commands.DeleteClaimCommandHandler

	// Query handlers
	getBuyerOrdersHandler       queries.GetBuyerOrdersQueryHandler
	getUnfulfilledOrdersHandler queries.GetUnfulfilledOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	deleteDeliveryHandler commands.DeleteDeliveryCommandHandler,
	assignDeliveryCourierHandler commands.AssignDeliveryCourierCommandHandler,
	createClaimHandler commands.CreateClaimCommandHandler,
	updateClaimStatusHandler commands.UpdateClaimStatusCommandHandler,
	updateClaimDetailsHandler commands.UpdateClaimDetailsCommandHandler,
	deleteClaimHandler commands.DeleteClaimCommandHandler,
	getBuyerOrdersHandler queries.GetBuyerOrdersQueryHandler,
	getUnfulfilledOrdersHandler queries.GetUnfulfilledOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		deleteOrderHandler:           deleteOrderHandler,
		createDeliveryHandler:        createDeliveryHandler,
		updateDeliveryStatusHandler:  updateDeliveryStatusHandler,
		deleteDeliveryHandler:        deleteDeliveryHandler,
		assignDeliveryCourierHandler: assignDeliveryCourierHandler,
		createClaimHandler:           createClaimHandler,
		updateClaimStatusHandler:     updateClaimStatusHandler,
		updateClaimDetailsHandler:    updateClaimDetailsHandler,
		deleteClaimHandler:           deleteClaimHandler,
		getBuyerOrdersHandler:        getBuyerOrdersHandler,
		getUnfulfilledOrdersHandler:  getUnfulfilledOrdersHandler,
	}
}

// RegisterRoutes attaches all fulfillment routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetBuyerOrders)
	api.GET("/orders/unfulfilled", s.GetUnfulfilledOrders)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/:id/delivery", s.CreateDelivery)
	api.POST("/orders/:id/claims", s.CreateClaim)

	api.PATCH("/deliveries/:id/status", s.UpdateDeliveryStatus)
	api.PATCH("/deliveries/:id/courier", s.AssignDeliveryCourier)
	api.DELETE("/deliveries/:id", s.DeleteDelivery)

	api.PATCH("/claims/:id/status", s.UpdateClaimStatus)
	api.PATCH("/claims/:id", s.UpdateClaimDetails)
	api.DELETE("/claims/:id", s.DeleteClaim)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := resolveActor(ctx)
	if err != nil {
		return unauthenticated(ctx)
	}

	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lines := make([]commands.OrderLineInput, 0, len(request.Lines))
	for _, line := range request.Lines {
		articleID, lineErr := kernel.UUIDFromString(line.ArticleID)
		if lineErr != nil {
			return badRequest(ctx, "Invalid article id: "+line.ArticleID)
		}

		var variationID *kernel.UUID
		if line.VariationID != nil {
			id, varErr := kernel.UUIDFromString(*line.VariationID)
			if varErr != nil {
				return badRequest(ctx, "Invalid variation id: "+*line.VariationID)
			}
			variationID = &id
		}

		lines = append(lines, commands.OrderLineInput{
			ArticleID:   articleID,
			VariationID: variationID,
			Quantity:    line.Quantity,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, actor, lines)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// DeleteOrder handles DELETE /api/v1/orders/:id - removes an order.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	actor, err := resolveActor(ctx)
	if err != nil {
		return unauthenticated(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, actor)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetBuyerOrders handles GET /api/v1/orders - retrieves a buyer's order history.
// The buyer_id query parameter defaults to the acting user.
func (s *Server) GetBuyerOrders(ctx echo.Context) error {
	actor, err := resolveActor(ctx)
	if err != nil {
		return unauthenticated(ctx)
	}

	buyerID := actor.ID()
	if raw := ctx.QueryParam("buyer_id"); raw != "" {
		buyerID, err = kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid buyer id")
		}
	}

	query, err := queries.NewGetBuyerOrdersQuery(buyerID, actor)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	orders, err := s.getBuyerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderResponse{
			ID:         o.ID.String(),
			Status:     o.Status,
			TotalPrice: o.TotalPrice.Cents(),
			CreatedAt:  o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUnfulfilledOrders handles GET /api/v1/orders/unfulfilled - back-office
// list of orders still moving through fulfillment.
func (s *Server) GetUnfulfilledOrders(ctx echo.Context) error {
	actor, err := resolveActor(ctx)
	if err != nil {
		return unauthenticated(ctx)
	}

	query, err := queries.NewGetUnfulfilledOrdersQuery(actor)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	orders, err := s.getUnfulfilledOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]UnfulfilledOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = UnfulfilledOrderResponse{
			ID:        o.ID.String(),
			BuyerID:   o.BuyerID.String(),
			Status:    o.Status,
			CreatedAt: o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDelivery handles POST /api/v1/orders/:id/delivery - attaches a delivery.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	actor, err := resolveActor(ctx)
	if err != nil {
		return unauthenticated(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request CreateDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	address, err := delivery.NewAddress(request.Street, request.City, request.Zip)
	if err != nil {
		return badRequest(ctx, "Invalid address: "+err.Error())
	}

	var courierID *kernel.UUID
	if request.CourierID != nil {
		id, courierErr := kernel.UUIDFromString(*request.CourierID)
		if courierErr != nil {
			return badRequest(ctx, "Invalid courier id")
		}
		courierID = &id
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(
		deliveryID, orderID, actor, address, courierID, request.TargetDate)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if handleErr := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: deliveryID.String()})
}

// UpdateDeliveryStatus handles PATCH /api/v1/deliveries/:id/status - reports
// delivery progress and propagates it to the parent order.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	actor, err := resolveActor(ctx)
	if err != nil {
		return unauthenticated(ctx)
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	var request UpdateDeliveryStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, actor, request.Status)
	if err != nil {
		return badRequest(ctx, "Invalid delivery status: "+err.Error())
	}

	if handleErr := s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, StatusUpdateResponse{
		ID:     deliveryID.String(),
		Status: request.Status,
	})
}

// AssignDeliveryCourier handles PATCH /api/v1/deliveries/:id/courier.
func (s *Server) AssignDeliveryCourier(ctx echo.Context) error {
	actor, err := resolveActor(ctx)
	if err != nil {
		return unauthenticated(ctx)
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	var request AssignCourierRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(request.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	cmd, err := commands.NewAssignDeliveryCourierCommand(deliveryID, courierID, actor)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if handleErr := s.assignDeliveryCourierHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteDelivery handles DELETE /api/v1/deliveries/:id - removes a delivery
// and reverts the parent order to preparing.
func (s *Server) DeleteDelivery(ctx echo.Context) error {
	actor, err := resolveActor(ctx)
	if err != nil {
		return unauthenticated(ctx)
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	cmd, err := commands.NewDeleteDeliveryCommand(deliveryID, actor)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if handleErr := s.deleteDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateClaim handles POST /api/v1/orders/:id/claims - files a dispute.
func (s *Server) CreateClaim(ctx echo.Context) error {
	actor, err := resolveActor(ctx)
	if err != nil {
		return unauthenticated(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request CreateClaimRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	claimID := kernel.NewUUID()
	cmd, err := commands.NewCreateClaimCommand(claimID, orderID, actor, request.Description)
	if err != nil {
		return badRequest(ctx, "Invalid claim data: "+err.Error())
	}

	if handleErr := s.createClaimHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: claimID.String()})
}

// UpdateClaimStatus handles PATCH /api/v1/claims/:id/status.
func (s *Server) UpdateClaimStatus(ctx echo.Context) error {
	actor, err := resolveActor(ctx)
	if err != nil {
		return unauthenticated(ctx)
	}

	claimID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid claim id")
	}

	var request UpdateClaimStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateClaimStatusCommand(claimID, actor, request.Status)
	if err != nil {
		return badRequest(ctx, "Invalid claim status: "+err.Error())
	}

	if handleErr := s.updateClaimStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, StatusUpdateResponse{
		ID:     claimID.String(),
		Status: request.Status,
	})
}

// UpdateClaimDetails handles PATCH /api/v1/claims/:id - revises the description.
func (s *Server) UpdateClaimDetails(ctx echo.Context) error {
	actor, err := resolveActor(ctx)
	if err != nil {
		return unauthenticated(ctx)
	}

	claimID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid claim id")
	}

	var request UpdateClaimDetailsRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateClaimDetailsCommand(claimID, actor, request.Description)
	if err != nil {
		return badRequest(ctx, "Invalid claim data: "+err.Error())
	}

	if handleErr := s.updateClaimDetailsHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteClaim handles DELETE /api/v1/claims/:id.
func (s *Server) DeleteClaim(ctx echo.Context) error {
	actor, err := resolveActor(ctx)
	if err != nil {
		return unauthenticated(ctx)
	}

	claimID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid claim id")
	}

	cmd, err := commands.NewDeleteClaimCommand(claimID, actor)
	if err != nil {
		return badRequest(ctx, "Invalid claim data: "+err.Error())
	}

	if handleErr := s.deleteClaimHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// resolveActor builds the acting user from the gateway identity headers.
func resolveActor(ctx echo.Context) (kernel.Actor, error) {
	rawID := ctx.Request().Header.Get(HeaderUserID)
	rawRole := ctx.Request().Header.Get(HeaderUserRole)
	if rawID == "" || rawRole == "" {
		return kernel.Actor{}, errMissingIdentity
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return kernel.Actor{}, err
	}

	role, err := kernel.RoleFromString(rawRole)
	if err != nil {
		return kernel.Actor{}, err
	}

	return kernel.NewActor(id, role)
}

// statusCodeFor maps application errors to HTTP status codes.
func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, ports.ErrInsufficientStock),
		errors.Is(err, delivery.ErrDeliveryAlreadyExists),
		errors.Is(err, delivery.ErrDeliveryAlreadyCompleted),
		errors.Is(err, order.ErrInvalidStateForDeletion),
		errors.Is(err, order.ErrInvalidStatusTransition),
		errors.Is(err, order.ErrTerminalStatus):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx echo.Context, err error) error {
	code := statusCodeFor(err)
	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func unauthenticated(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: "Unknown or missing user identity",
	})
}
