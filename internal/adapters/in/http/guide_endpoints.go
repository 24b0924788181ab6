package http

import (
	"net/http"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GenerateGuide handles POST /api/v1/guides. The server mints the guide and
// pickup identifiers and returns both; the pickup request is created
// alongside the guide in the same transaction.
func (s *Server) GenerateGuide(ctx echo.Context) error {
	var req GenerateGuideRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "invalid order_id")
	}

	pickupLocation, err := kernel.NewGeoPoint(req.PickupLatitude, req.PickupLongitude)
	if err != nil {
		return errorJSON(ctx, err)
	}

	guideID := kernel.NewUUID()
	pickupID := kernel.NewUUID()

	cmd, err := commands.NewGenerateGuideCommand(guideID, orderID, pickupID,
		req.Operator, parseCustomerTier(req.CustomerTier),
		parsePriority(req.Priority), pickupLocation)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.handlers.GenerateGuide.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, GuideCreatedResponse{
		GuideID:  guideID.String(),
		PickupID: pickupID.String(),
	})
}

// RecordTransit handles POST /api/v1/guides/:guideID/transit.
func (s *Server) RecordTransit(ctx echo.Context) error {
	guideID, err := kernel.UUIDFromString(ctx.Param("guideID"))
	if err != nil {
		return badRequest(ctx, "invalid guide id")
	}

	var req RecordTransitRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRecordTransitCommand(guideID, req.Location)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.handlers.RecordTransit.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// MarkOutForDelivery handles POST /api/v1/guides/:guideID/out-for-delivery.
func (s *Server) MarkOutForDelivery(ctx echo.Context) error {
	guideID, err := kernel.UUIDFromString(ctx.Param("guideID"))
	if err != nil {
		return badRequest(ctx, "invalid guide id")
	}

	cmd, err := commands.NewMarkOutForDeliveryCommand(guideID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.handlers.MarkOutForDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RecordDeliveryAttempt handles POST /api/v1/guides/:guideID/attempts.
func (s *Server) RecordDeliveryAttempt(ctx echo.Context) error {
	guideID, err := kernel.UUIDFromString(ctx.Param("guideID"))
	if err != nil {
		return badRequest(ctx, "invalid guide id")
	}

	var req RecordDeliveryAttemptRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRecordDeliveryAttemptCommand(guideID,
		parseAttemptOutcome(req.Outcome), req.FailureReason, req.Notes,
		req.RecipientName, req.Location, req.Evidence)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.handlers.RecordDeliveryAttempt.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CancelGuide handles POST /api/v1/guides/:guideID/cancel.
func (s *Server) CancelGuide(ctx echo.Context) error {
	guideID, err := kernel.UUIDFromString(ctx.Param("guideID"))
	if err != nil {
		return badRequest(ctx, "invalid guide id")
	}

	var req CancelRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelGuideCommand(guideID, req.Reason)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.handlers.CancelGuide.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// TrackingEventJSON is one movement record in the public tracking view.
type TrackingEventJSON struct {
	Kind       string    `json:"kind"`
	Location   string    `json:"location"`
	Note       string    `json:"note,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// TrackingResponse is the public tracking view of a guide.
type TrackingResponse struct {
	GuideID  string              `json:"guide_id"`
	Status   string              `json:"status"`
	Operator string              `json:"operator"`
	Events   []TrackingEventJSON `json:"events"`
}

// GetShipmentTracking handles GET /api/v1/guides/:guideID/tracking.
func (s *Server) GetShipmentTracking(ctx echo.Context) error {
	guideID, err := kernel.UUIDFromString(ctx.Param("guideID"))
	if err != nil {
		return badRequest(ctx, "invalid guide id")
	}

	query, err := queries.NewGetShipmentTrackingQuery(guideID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	tracking, err := s.handlers.GetShipmentTracking.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := TrackingResponse{
		GuideID:  tracking.GuideID.String(),
		Status:   tracking.Status,
		Operator: tracking.Operator,
		Events:   make([]TrackingEventJSON, len(tracking.Events)),
	}
	for i, event := range tracking.Events {
		response.Events[i] = TrackingEventJSON{
			Kind:       event.Kind,
			Location:   event.Location,
			Note:       event.Note,
			RecordedAt: event.RecordedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
