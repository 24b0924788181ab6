package commands

import (
	"context"

	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// AssignPickupToPointCommandHandler assigns a point-delivery pickup to a
// logistics point. Only point-delivery requests qualify; the scheduler
// rejects every other pickup type.
type AssignPickupToPointCommandHandler struct {
	uowFactory PickupUoWFactory
	scheduler  services.PickupScheduler
	clock      ports.Clock
}

// NewAssignPickupToPointCommandHandler creates a handler for point assignment.
func NewAssignPickupToPointCommandHandler(uowFactory PickupUoWFactory,
	scheduler services.PickupScheduler, clock ports.Clock) AssignPickupToPointCommandHandler {
	return AssignPickupToPointCommandHandler{
		uowFactory: uowFactory,
		scheduler:  scheduler,
		clock:      clock,
	}
}

// Handle loads the request, assigns the point and persists the change.
func (h *AssignPickupToPointCommandHandler) Handle(ctx context.Context,
	cmd AssignPickupToPointCommand) error {
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

	pickupRepo := uow.PickupRepository()
	request, err := pickupRepo.Get(ctx, cmd.PickupID())
	if err != nil {
		return err
	}

	if err = h.scheduler.AssignToPoint(request, cmd.PointID(), h.clock.Now()); err != nil {
		return err
	}

	if err = pickupRepo.Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
