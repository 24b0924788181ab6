package commands

import (
	"context"

	"shipping/internal/core/domain/model/incident"
	"shipping/internal/core/ports"
)

// ReportIncidentCommandHandler opens an incident against an existing guide.
// The guide is loaded first so the report never references a phantom
// shipment.
type ReportIncidentCommandHandler struct {
	uowFactory IncidentUoWFactory
	clock      ports.Clock
}

// NewReportIncidentCommandHandler creates a handler for incident reports.
func NewReportIncidentCommandHandler(uowFactory IncidentUoWFactory,
	clock ports.Clock) ReportIncidentCommandHandler {
	return ReportIncidentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle verifies the guide, creates the incident and persists it.
func (h *ReportIncidentCommandHandler) Handle(ctx context.Context, cmd ReportIncidentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	guide, err := uow.GuideRepository().Get(ctx, cmd.GuideID())
	if err != nil {
		return err
	}

	reported, err := incident.NewIncident(cmd.IncidentID(), guide.ID(),
		cmd.Kind(), cmd.Severity(), cmd.Description(), h.clock.Now())
	if err != nil {
		return err
	}

	if err = uow.IncidentRepository().Add(ctx, reported); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
