package http

import (
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ReportIncident handles POST /api/v1/incidents.
func (s *Server) ReportIncident(ctx echo.Context) error {
	var req ReportIncidentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	guideID, err := kernel.UUIDFromString(req.GuideID)
	if err != nil {
		return badRequest(ctx, "invalid guide_id")
	}

	incidentID := kernel.NewUUID()
	cmd, err := commands.NewReportIncidentCommand(incidentID, guideID,
		parseIncidentType(req.Kind), parseIncidentSeverity(req.Severity),
		req.Description)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.handlers.ReportIncident.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: incidentID.String()})
}

// EscalateIncident handles POST /api/v1/incidents/:incidentID/escalate.
func (s *Server) EscalateIncident(ctx echo.Context) error {
	incidentID, err := kernel.UUIDFromString(ctx.Param("incidentID"))
	if err != nil {
		return badRequest(ctx, "invalid incident id")
	}

	var req EscalateIncidentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewEscalateIncidentCommand(incidentID, req.Reason)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.handlers.EscalateIncident.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ResolveIncident handles POST /api/v1/incidents/:incidentID/resolve.
func (s *Server) ResolveIncident(ctx echo.Context) error {
	incidentID, err := kernel.UUIDFromString(ctx.Param("incidentID"))
	if err != nil {
		return badRequest(ctx, "invalid incident id")
	}

	var req ResolveIncidentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewResolveIncidentCommand(incidentID, req.ResolvedBy,
		req.Resolution)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.handlers.ResolveIncident.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CloseIncident handles POST /api/v1/incidents/:incidentID/close.
func (s *Server) CloseIncident(ctx echo.Context) error {
	incidentID, err := kernel.UUIDFromString(ctx.Param("incidentID"))
	if err != nil {
		return badRequest(ctx, "invalid incident id")
	}

	cmd, err := commands.NewCloseIncidentCommand(incidentID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.handlers.CloseIncident.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}
