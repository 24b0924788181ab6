package commands

import (
	"context"

	"shipping/internal/core/ports"
)

// MarkOutForDeliveryCommandHandler moves an in-transit guide to
// OutForDelivery, opening the window for delivery attempts.
type MarkOutForDeliveryCommandHandler struct {
	uowFactory GuideUoWFactory
	clock      ports.Clock
}

// NewMarkOutForDeliveryCommandHandler creates a handler for the last-mile
// hand-off.
func NewMarkOutForDeliveryCommandHandler(uowFactory GuideUoWFactory,
	clock ports.Clock) MarkOutForDeliveryCommandHandler {
	return MarkOutForDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle loads the guide, marks it out for delivery and persists the change.
func (h *MarkOutForDeliveryCommandHandler) Handle(ctx context.Context,
	cmd MarkOutForDeliveryCommand) error {
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

	if err = guide.OutForDelivery(h.clock.Now()); err != nil {
		return err
	}

	if err = guideRepo.Update(ctx, guide); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
