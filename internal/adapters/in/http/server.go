// Package http exposes the order management and tracking operations over
// REST. Handlers translate between JSON payloads and application commands
// and queries; all domain decisions stay behind those.
package http

import (
	"errors"
	"log/slog"
	"net/http"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	addUpdateHandler   commands.AddShipmentUpdateCommandHandler

	// Query handlers
	trackOrderHandler         queries.TrackOrderQueryHandler
	getAllOrdersHandler       queries.GetAllOrdersQueryHandler
	getShipmentUpdatesHandler queries.GetShipmentUpdatesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addUpdateHandler commands.AddShipmentUpdateCommandHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getShipmentUpdatesHandler queries.GetShipmentUpdatesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		addUpdateHandler:          addUpdateHandler,
		trackOrderHandler:         trackOrderHandler,
		getAllOrdersHandler:       getAllOrdersHandler,
		getShipmentUpdatesHandler: getShipmentUpdatesHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance. The order
// management routes sit behind the authentication middleware; tracking
// and health do not.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/health", s.Health)
	e.GET("/api/track/:trackingCode", s.Track)

	orders := e.Group("/api/orders", auth)
	orders.POST("", s.CreateOrder)
	orders.GET("", s.GetOrders)
	orders.GET("/:orderId/updates", s.GetOrderUpdates)
	orders.POST("/:orderId/updates", s.CreateOrderUpdate)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Track handles GET /api/track/:trackingCode - public tracking lookup.
func (s *Server) Track(ctx echo.Context) error {
	query := queries.NewTrackOrderQuery(ctx.Param("trackingCode"))

	tracked, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	updates := make([]ShipmentUpdate, len(tracked.Updates))
	for i, update := range tracked.Updates {
		updates[i] = updateResponseToJSON(update)
	}

	return ctx.JSON(http.StatusOK, TrackingResponse{
		Order: Order{
			ID:                 tracked.ID.String(),
			TrackingNumber:     tracked.TrackingCode.String(),
			CustomerName:       tracked.CustomerName,
			CustomerEmail:      tracked.CustomerEmail,
			CustomerPhone:      tracked.CustomerPhone,
			ShippingAddress:    tracked.ShippingAddress,
			DestinationAddress: tracked.DestinationAddress,
			Status:             tracked.Status.String(),
			EstimatedDelivery:  tracked.EstimatedDelivery,
			CreatedAt:          tracked.CreatedAt,
			UpdatedAt:          tracked.UpdatedAt,
		},
		Updates: updates,
	})
}

// CreateOrder handles POST /api/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	identity, ok := IdentityFromContext(ctx)
	if !ok {
		return s.writeError(ctx, errs.NewUnauthorizedError("missing identity"))
	}

	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.CustomerName,
		req.CustomerEmail,
		req.CustomerPhone,
		req.ShippingAddress,
		req.DestinationAddress,
		req.EstimatedDelivery,
		identity.UserID,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreatedResponse{Order: orderToJSON(created)})
}

// GetOrders handles GET /api/orders - lists every order, oldest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	result, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders := make([]Order, len(result))
	for i, item := range result {
		orders[i] = Order{
			ID:                 item.ID.String(),
			TrackingNumber:     item.TrackingCode.String(),
			CustomerName:       item.CustomerName,
			CustomerEmail:      item.CustomerEmail,
			CustomerPhone:      item.CustomerPhone,
			ShippingAddress:    item.ShippingAddress,
			DestinationAddress: item.DestinationAddress,
			Status:             item.Status.String(),
			EstimatedDelivery:  item.EstimatedDelivery,
			CreatedAt:          item.CreatedAt,
			UpdatedAt:          item.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, OrdersResponse{Orders: orders})
}

// GetOrderUpdates handles GET /api/orders/:orderId/updates - returns one
// order's update history.
func (s *Server) GetOrderUpdates(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	query, err := queries.NewGetShipmentUpdatesQuery(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.getShipmentUpdatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	updates := make([]ShipmentUpdate, len(result))
	for i, update := range result {
		updates[i] = updateResponseToJSON(update)
	}

	return ctx.JSON(http.StatusOK, ShipmentUpdatesResponse{Updates: updates})
}

// CreateOrderUpdate handles POST /api/orders/:orderId/updates - appends a
// tracking event and projects its status onto the order.
func (s *Server) CreateOrderUpdate(ctx echo.Context) error {
	identity, ok := IdentityFromContext(ctx)
	if !ok {
		return s.writeError(ctx, errs.NewUnauthorizedError("missing identity"))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	var req NewShipmentUpdateRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewAddShipmentUpdateCommand(
		orderID,
		req.Location,
		status,
		req.Description,
		identity.UserID,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	update, err := s.addUpdateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ShipmentUpdateCreatedResponse{
		Update:  updateToJSON(update),
		Message: "Shipment update created successfully",
	})
}

// writeError maps application errors onto HTTP statuses. Validation
// failures read as 400, missing identity as 401, unresolved objects as
// 404; anything else is an opaque 500 with the detail kept server-side.
func (s *Server) writeError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	default:
		status = http.StatusInternalServerError
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("request failed",
			"method", ctx.Request().Method,
			"path", ctx.Request().URL.Path,
			"error", err,
		)
		message = "Internal server error"
	}

	return ctx.JSON(status, Error{Code: status, Message: message})
}

func orderToJSON(aggregate *order.Order) Order {
	return Order{
		ID:                 aggregate.ID().String(),
		TrackingNumber:     aggregate.TrackingCode().String(),
		CustomerName:       aggregate.CustomerName(),
		CustomerEmail:      aggregate.CustomerEmail(),
		CustomerPhone:      aggregate.CustomerPhone(),
		ShippingAddress:    aggregate.ShippingAddress(),
		DestinationAddress: aggregate.DestinationAddress(),
		Status:             aggregate.Status().String(),
		EstimatedDelivery:  aggregate.EstimatedDelivery(),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
	}
}

func updateToJSON(update *shipment.ShipmentUpdate) ShipmentUpdate {
	return ShipmentUpdate{
		ID:          update.ID().String(),
		OrderID:     update.OrderID().String(),
		Location:    update.Location(),
		Status:      update.Status().String(),
		Description: update.Description(),
		Timestamp:   update.Timestamp(),
	}
}

func updateResponseToJSON(update queries.ShipmentUpdateResponse) ShipmentUpdate {
	return ShipmentUpdate{
		ID:          update.ID.String(),
		OrderID:     update.OrderID.String(),
		Location:    update.Location,
		Status:      update.Status.String(),
		Description: update.Description,
		Timestamp:   update.Timestamp,
	}
}
