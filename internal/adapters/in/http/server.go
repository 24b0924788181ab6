package http

import (
	"errors"
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the application handlers the HTTP surface dispatches to.
// The composition root fills this in; the server never constructs handlers
// itself.
type Handlers struct {
	CreateOrder  commands.CreateOrderCommandHandler
	QuoteOrder   commands.QuoteOrderCommandHandler
	ConfirmOrder commands.ConfirmOrderCommandHandler
	CancelOrder  commands.CancelOrderCommandHandler

	GenerateGuide         commands.GenerateGuideCommandHandler
	RecordTransit         commands.RecordTransitCommandHandler
	MarkOutForDelivery    commands.MarkOutForDeliveryCommandHandler
	RecordDeliveryAttempt commands.RecordDeliveryAttemptCommandHandler
	CancelGuide           commands.CancelGuideCommandHandler

	SchedulePickup      commands.SchedulePickupCommandHandler
	AssignPickupToPoint commands.AssignPickupToPointCommandHandler
	ReschedulePickup    commands.ReschedulePickupCommandHandler
	RecordPickupOutcome commands.RecordPickupOutcomeCommandHandler
	CancelPickup        commands.CancelPickupCommandHandler

	CreateRoute   commands.CreateRouteCommandHandler
	StartRoute    commands.StartRouteCommandHandler
	CompleteRoute commands.CompleteRouteCommandHandler

	ReportIncident   commands.ReportIncidentCommandHandler
	EscalateIncident commands.EscalateIncidentCommandHandler
	ResolveIncident  commands.ResolveIncidentCommandHandler
	CloseIncident    commands.CloseIncidentCommandHandler

	GetShipmentTracking queries.GetShipmentTrackingQueryHandler
	GetRouteSummary     queries.GetRouteSummaryQueryHandler
	GetOverduePickups   queries.GetOverduePickupsQueryHandler
	GetPickupSummary    queries.GetPickupSummaryQueryHandler
}

// Server exposes the shipping use cases over HTTP. It translates JSON
// requests into commands and queries and maps the error taxonomy onto
// status codes.
type Server struct {
	handlers Handlers
}

// NewServer creates an HTTP server over the given application handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:orderID/quote", s.QuoteOrder)
	api.POST("/orders/:orderID/confirm", s.ConfirmOrder)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)

	api.POST("/guides", s.GenerateGuide)
	api.POST("/guides/:guideID/transit", s.RecordTransit)
	api.POST("/guides/:guideID/out-for-delivery", s.MarkOutForDelivery)
	api.POST("/guides/:guideID/attempts", s.RecordDeliveryAttempt)
	api.POST("/guides/:guideID/cancel", s.CancelGuide)
	api.GET("/guides/:guideID/tracking", s.GetShipmentTracking)

	api.POST("/pickups/:pickupID/schedule", s.SchedulePickup)
	api.POST("/pickups/:pickupID/point", s.AssignPickupToPoint)
	api.POST("/pickups/:pickupID/reschedule", s.ReschedulePickup)
	api.POST("/pickups/:pickupID/outcome", s.RecordPickupOutcome)
	api.POST("/pickups/:pickupID/cancel", s.CancelPickup)
	api.GET("/pickups/overdue", s.GetOverduePickups)

	api.POST("/routes", s.CreateRoute)
	api.POST("/routes/:routeID/start", s.StartRoute)
	api.POST("/routes/:routeID/complete", s.CompleteRoute)
	api.GET("/routes/:routeID/summary", s.GetRouteSummary)

	api.POST("/incidents", s.ReportIncident)
	api.POST("/incidents/:incidentID/escalate", s.EscalateIncident)
	api.POST("/incidents/:incidentID/resolve", s.ResolveIncident)
	api.POST("/incidents/:incidentID/close", s.CloseIncident)

	api.GET("/operators/:operatorID/pickup-summary", s.GetPickupSummary)

	e.GET("/health", s.Health)
}

// Health reports process liveness.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// errorJSON classifies an error against the domain taxonomy and writes the
// matching status code. Unclassified errors are reported as 500 without
// leaking internals.
func errorJSON(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrCapacityExhausted),
		errors.Is(err, errs.ErrInvalidStateTransition),
		errors.Is(err, errs.ErrRetryExhausted):
		code = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrInvalidPickupType):
		code = http.StatusBadRequest
		message = err.Error()
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

// badRequest writes a 400 with the given message, used for malformed
// request bodies and path parameters before a command exists.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
