package commands

import (
	"context"

	"shipping/internal/core/domain/model/incident"
	"shipping/internal/core/ports"
)

// ResolveIncidentCommandHandler resolves an open incident. A freshly
// reported incident is acknowledged by the resolver on the way, so the
// review trail always shows who looked at it.
type ResolveIncidentCommandHandler struct {
	uowFactory IncidentUoWFactory
	clock      ports.Clock
}

// NewResolveIncidentCommandHandler creates a handler for incident
// resolution.
func NewResolveIncidentCommandHandler(uowFactory IncidentUoWFactory,
	clock ports.Clock) ResolveIncidentCommandHandler {
	return ResolveIncidentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle loads the incident, resolves it and persists the change.
func (h *ResolveIncidentCommandHandler) Handle(ctx context.Context, cmd ResolveIncidentCommand) error {
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

	now := h.clock.Now()
	if reported.Status() == incident.Reported {
		if err = reported.Acknowledge(cmd.ResolvedBy(), now); err != nil {
			return err
		}
	}

	if err = reported.Resolve(cmd.Resolution(), now); err != nil {
		return err
	}

	if err = incidentRepo.Update(ctx, reported); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
