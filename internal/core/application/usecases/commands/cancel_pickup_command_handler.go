package commands

import (
	"context"

	"shipping/internal/core/domain/model/pickup"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// CancelPickupCommandHandler cancels a pickup request. A held slot
// reservation is released; completed pickups keep their consumed capacity
// and cannot be cancelled.
type CancelPickupCommandHandler struct {
	uowFactory PickupUoWFactory
	scheduler  services.PickupScheduler
	clock      ports.Clock
}

// NewCancelPickupCommandHandler creates a handler for pickup cancellation.
func NewCancelPickupCommandHandler(uowFactory PickupUoWFactory,
	scheduler services.PickupScheduler, clock ports.Clock) CancelPickupCommandHandler {
	return CancelPickupCommandHandler{
		uowFactory: uowFactory,
		scheduler:  scheduler,
		clock:      clock,
	}
}

// Handle cancels the request, releasing any held capacity, and persists
// both sides.
func (h *CancelPickupCommandHandler) Handle(ctx context.Context, cmd CancelPickupCommand) error {
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

	capacity := uow.CapacityProvider()

	var heldSlot *pickup.TimeSlot
	if held := request.TimeSlotID(); held != nil {
		if heldSlot, err = capacity.GetSlot(ctx, *held); err != nil {
			return err
		}
	}

	if err = h.scheduler.Cancel(request, heldSlot, cmd.Reason(),
		cmd.CancelledBy(), h.clock.Now()); err != nil {
		return err
	}

	if heldSlot != nil {
		if err = capacity.SaveSlot(ctx, heldSlot); err != nil {
			return err
		}
	}

	if err = pickupRepo.Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
