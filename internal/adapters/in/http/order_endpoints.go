package http

import (
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customer_id")
	}

	location, err := kernel.NewGeoPoint(req.Recipient.Latitude, req.Recipient.Longitude)
	if err != nil {
		return errorJSON(ctx, err)
	}

	recipient, err := order.NewRecipient(req.Recipient.Name, req.Recipient.Phone,
		req.Recipient.Address, location)
	if err != nil {
		return errorJSON(ctx, err)
	}

	dimensions, err := order.NewDimensions(req.Dimensions.LengthCm,
		req.Dimensions.WidthCm, req.Dimensions.HeightCm, req.Dimensions.WeightKg)
	if err != nil {
		return errorJSON(ctx, err)
	}

	declaredValue, err := kernel.MoneyFromFloat(req.DeclaredValue)
	if err != nil {
		return errorJSON(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, recipient,
		dimensions, declaredValue, parseServiceType(req.ServiceType))
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// QuoteOrder handles POST /api/v1/orders/:orderID/quote.
func (s *Server) QuoteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req QuoteOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	price, err := kernel.MoneyFromFloat(req.Price)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewQuoteOrderCommand(orderID, price, req.DeliveryDays)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.handlers.QuoteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ConfirmOrder handles POST /api/v1/orders/:orderID/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.handlers.ConfirmOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req CancelRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}
