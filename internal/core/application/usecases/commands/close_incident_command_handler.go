package commands

import (
	"context"

	"shipping/internal/core/ports"
)

// CloseIncidentCommandHandler closes a resolved incident. Only recorded
// resolutions can be confirmed; anything else is a state transition error.
type CloseIncidentCommandHandler struct {
	uowFactory IncidentUoWFactory
	clock      ports.Clock
}

// NewCloseIncidentCommandHandler creates a handler for incident closure.
func NewCloseIncidentCommandHandler(uowFactory IncidentUoWFactory,
	clock ports.Clock) CloseIncidentCommandHandler {
	return CloseIncidentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle loads the incident, closes it and persists the change.
func (h *CloseIncidentCommandHandler) Handle(ctx context.Context, cmd CloseIncidentCommand) error {
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
	resolved, err := incidentRepo.Get(ctx, cmd.IncidentID())
	if err != nil {
		return err
	}

	if err = resolved.Close(h.clock.Now()); err != nil {
		return err
	}

	if err = incidentRepo.Update(ctx, resolved); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
