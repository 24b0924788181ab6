package commands

import (
	"context"

	"shipping/internal/core/ports"
)

// RecordTransitCommandHandler appends a transit waypoint to a guide.
type RecordTransitCommandHandler struct {
	uowFactory GuideUoWFactory
	clock      ports.Clock
}

// NewRecordTransitCommandHandler creates a handler for transit waypoints.
func NewRecordTransitCommandHandler(uowFactory GuideUoWFactory, clock ports.Clock) RecordTransitCommandHandler {
	return RecordTransitCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle loads the guide, records the waypoint and persists the change.
func (h *RecordTransitCommandHandler) Handle(ctx context.Context, cmd RecordTransitCommand) error {
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

	guideRepo := uow.GuideRepository()
	guide, err := guideRepo.Get(ctx, cmd.GuideID())
	if err != nil {
		return err
	}

	if err = guide.Transit(cmd.Location(), h.clock.Now()); err != nil {
		return err
	}

	if err = guideRepo.Update(ctx, guide); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
