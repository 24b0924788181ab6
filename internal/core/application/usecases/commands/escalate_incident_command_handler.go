package commands

import (
	"context"

	"shipping/internal/core/ports"
)

// EscalateIncidentCommandHandler escalates an open incident. Severity rises
// to at least High inside the aggregate; the resolution path stays open.
type EscalateIncidentCommandHandler struct {
	uowFactory IncidentUoWFactory
	clock      ports.Clock
}

// NewEscalateIncidentCommandHandler creates a handler for incident
// escalation.
func NewEscalateIncidentCommandHandler(uowFactory IncidentUoWFactory,
	clock ports.Clock) EscalateIncidentCommandHandler {
	return EscalateIncidentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle loads the incident, escalates it and persists the change.
func (h *EscalateIncidentCommandHandler) Handle(ctx context.Context, cmd EscalateIncidentCommand) error {
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

	incidentRepo := uow.IncidentRepository()
	reported, err := incidentRepo.Get(ctx, cmd.IncidentID())
	if err != nil {
		return err
	}

	if err = reported.Escalate(cmd.Reason(), h.clock.Now()); err != nil {
		return err
	}

	if err = incidentRepo.Update(ctx, reported); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
