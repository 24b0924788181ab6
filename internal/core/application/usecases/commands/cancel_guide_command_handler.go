package commands

import (
	"context"

	"shipping/internal/core/ports"
)

// CancelGuideCommandHandler cancels a guide that has not started moving.
type CancelGuideCommandHandler struct {
	uowFactory GuideUoWFactory
	clock      ports.Clock
}

// NewCancelGuideCommandHandler creates a handler for guide cancellation.
func NewCancelGuideCommandHandler(uowFactory GuideUoWFactory, clock ports.Clock) CancelGuideCommandHandler {
	return CancelGuideCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle loads the guide, cancels it and persists the change.
func (h *CancelGuideCommandHandler) Handle(ctx context.Context, cmd CancelGuideCommand) error {
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

	if err = guide.Cancel(cmd.Reason(), h.clock.Now()); err != nil {
		return err
	}

	if err = guideRepo.Update(ctx, guide); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
