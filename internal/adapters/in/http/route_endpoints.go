package http

import (
	"net/http"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateRoute handles POST /api/v1/routes. The stop order in the persisted
// route is the planner's optimized order, not the request order.
func (s *Server) CreateRoute(ctx echo.Context) error {
	var req CreateRouteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	operatorID, err := kernel.UUIDFromString(req.OperatorID)
	if err != nil {
		return badRequest(ctx, "invalid operator_id")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return badRequest(ctx, "date must use the 2006-01-02 layout")
	}

	startPoint, err := kernel.NewGeoPoint(req.StartLatitude, req.StartLongitude)
	if err != nil {
		return errorJSON(ctx, err)
	}

	pickupIDs := make([]kernel.UUID, len(req.PickupIDs))
	for i, raw := range req.PickupIDs {
		pickupIDs[i], err = kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "invalid pickup id in pickup_ids")
		}
	}

	routeID := kernel.NewUUID()
	cmd, err := commands.NewCreateRouteCommand(routeID, operatorID, date,
		startPoint, pickupIDs)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.handlers.CreateRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: routeID.String()})
}

// StartRoute handles POST /api/v1/routes/:routeID/start.
func (s *Server) StartRoute(ctx echo.Context) error {
	routeID, err := kernel.UUIDFromString(ctx.Param("routeID"))
	if err != nil {
		return badRequest(ctx, "invalid route id")
	}

	cmd, err := commands.NewStartRouteCommand(routeID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.handlers.StartRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CompleteRoute handles POST /api/v1/routes/:routeID/complete.
func (s *Server) CompleteRoute(ctx echo.Context) error {
	routeID, err := kernel.UUIDFromString(ctx.Param("routeID"))
	if err != nil {
		return badRequest(ctx, "invalid route id")
	}

	cmd, err := commands.NewCompleteRouteCommand(routeID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.handlers.CompleteRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RouteSummaryResponse is the progress view of a collection route.
type RouteSummaryResponse struct {
	RouteID        string    `json:"route_id"`
	OperatorID     string    `json:"operator_id"`
	Date           time.Time `json:"date"`
	Status         string    `json:"status"`
	StopCount      int       `json:"stop_count"`
	CompletedStops int       `json:"completed_stops"`
	FailedStops    int       `json:"failed_stops"`
	PendingStops   int       `json:"pending_stops"`
}

// GetRouteSummary handles GET /api/v1/routes/:routeID/summary.
func (s *Server) GetRouteSummary(ctx echo.Context) error {
	routeID, err := kernel.UUIDFromString(ctx.Param("routeID"))
	if err != nil {
		return badRequest(ctx, "invalid route id")
	}

	query, err := queries.NewGetRouteSummaryQuery(routeID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	summary, err := s.handlers.GetRouteSummary.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RouteSummaryResponse{
		RouteID:        summary.RouteID.String(),
		OperatorID:     summary.OperatorID.String(),
		Date:           summary.Date,
		Status:         summary.Status,
		StopCount:      summary.StopCount,
		CompletedStops: summary.CompletedStops,
		FailedStops:    summary.FailedStops,
		PendingStops:   summary.PendingStops,
	})
}
