package http

import (
	"net/http"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// SchedulePickup handles POST /api/v1/pickups/:pickupID/schedule.
func (s *Server) SchedulePickup(ctx echo.Context) error {
	pickupID, err := kernel.UUIDFromString(ctx.Param("pickupID"))
	if err != nil {
		return badRequest(ctx, "invalid pickup id")
	}

	var req SchedulePickupRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	slotID, err := kernel.UUIDFromString(req.SlotID)
	if err != nil {
		return badRequest(ctx, "invalid slot_id")
	}

	cmd, err := commands.NewSchedulePickupCommand(pickupID, slotID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.handlers.SchedulePickup.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AssignPickupToPoint handles POST /api/v1/pickups/:pickupID/point.
func (s *Server) AssignPickupToPoint(ctx echo.Context) error {
	pickupID, err := kernel.UUIDFromString(ctx.Param("pickupID"))
	if err != nil {
		return badRequest(ctx, "invalid pickup id")
	}

	var req AssignPickupToPointRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	pointID, err := kernel.UUIDFromString(req.PointID)
	if err != nil {
		return badRequest(ctx, "invalid point_id")
	}

	cmd, err := commands.NewAssignPickupToPointCommand(pickupID, pointID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.handlers.AssignPickupToPoint.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ReschedulePickup handles POST /api/v1/pickups/:pickupID/reschedule.
func (s *Server) ReschedulePickup(ctx echo.Context) error {
	pickupID, err := kernel.UUIDFromString(ctx.Param("pickupID"))
	if err != nil {
		return badRequest(ctx, "invalid pickup id")
	}

	var req ReschedulePickupRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	newSlotID, err := kernel.UUIDFromString(req.NewSlotID)
	if err != nil {
		return badRequest(ctx, "invalid new_slot_id")
	}

	cmd, err := commands.NewReschedulePickupCommand(pickupID, newSlotID, req.Reason)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.handlers.ReschedulePickup.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RecordPickupOutcome handles POST /api/v1/pickups/:pickupID/outcome.
func (s *Server) RecordPickupOutcome(ctx echo.Context) error {
	pickupID, err := kernel.UUIDFromString(ctx.Param("pickupID"))
	if err != nil {
		return badRequest(ctx, "invalid pickup id")
	}

	var req RecordPickupOutcomeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	operatorID, err := kernel.UUIDFromString(req.OperatorID)
	if err != nil {
		return badRequest(ctx, "invalid operator_id")
	}

	cmd, err := commands.NewRecordPickupOutcomeCommand(pickupID, operatorID,
		req.Succeeded, req.Reason, req.Notes, req.Evidence, req.Location)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.handlers.RecordPickupOutcome.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CancelPickup handles POST /api/v1/pickups/:pickupID/cancel.
func (s *Server) CancelPickup(ctx echo.Context) error {
	pickupID, err := kernel.UUIDFromString(ctx.Param("pickupID"))
	if err != nil {
		return badRequest(ctx, "invalid pickup id")
	}

	var req CancelPickupRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelPickupCommand(pickupID, req.Reason, req.CancelledBy)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.handlers.CancelPickup.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// OverduePickupJSON is one pickup that breached its collection window.
type OverduePickupJSON struct {
	PickupID      string    `json:"pickup_id"`
	GuideID       string    `json:"guide_id"`
	Status        string    `json:"status"`
	ScheduledDate time.Time `json:"scheduled_date"`
	OverdueBy     string    `json:"overdue_by"`
}

// GetOverduePickups handles GET /api/v1/pickups/overdue. The as_of query
// parameter is optional and defaults to the current time.
func (s *Server) GetOverduePickups(ctx echo.Context) error {
	asOf := time.Now().UTC()
	if raw := ctx.QueryParam("as_of"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return badRequest(ctx, "as_of must be RFC 3339")
		}
		asOf = parsed
	}

	query, err := queries.NewGetOverduePickupsQuery(asOf)
	if err != nil {
		return errorJSON(ctx, err)
	}

	overdue, err := s.handlers.GetOverduePickups.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]OverduePickupJSON, len(overdue))
	for i, entry := range overdue {
		response[i] = OverduePickupJSON{
			PickupID:      entry.ID.String(),
			GuideID:       entry.GuideID.String(),
			Status:        entry.Status,
			ScheduledDate: entry.ScheduledDate,
			OverdueBy:     entry.OverdueBy.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PickupSummaryResponse aggregates an operator's pickups for one day.
type PickupSummaryResponse struct {
	OperatorID string    `json:"operator_id"`
	Date       time.Time `json:"date"`
	Total      int       `json:"total"`
	Confirmed  int       `json:"confirmed"`
	InProgress int       `json:"in_progress"`
	Completed  int       `json:"completed"`
	Failed     int       `json:"failed"`
	Cancelled  int       `json:"cancelled"`
	Other      int       `json:"other"`
}

// GetPickupSummary handles GET /api/v1/operators/:operatorID/pickup-summary.
// The date query parameter uses the 2006-01-02 layout.
func (s *Server) GetPickupSummary(ctx echo.Context) error {
	operatorID, err := kernel.UUIDFromString(ctx.Param("operatorID"))
	if err != nil {
		return badRequest(ctx, "invalid operator id")
	}

	date, err := time.Parse("2006-01-02", ctx.QueryParam("date"))
	if err != nil {
		return badRequest(ctx, "date must use the 2006-01-02 layout")
	}

	query, err := queries.NewGetPickupSummaryQuery(operatorID, date)
	if err != nil {
		return errorJSON(ctx, err)
	}

	summary, err := s.handlers.GetPickupSummary.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PickupSummaryResponse{
		OperatorID: summary.OperatorID.String(),
		Date:       summary.Date,
		Total:      summary.Total,
		Confirmed:  summary.Confirmed,
		InProgress: summary.InProgress,
		Completed:  summary.Completed,
		Failed:     summary.Failed,
		Cancelled:  summary.Cancelled,
		Other:      summary.Other,
	})
}
