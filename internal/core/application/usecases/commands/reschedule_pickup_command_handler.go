package commands

import (
	"context"

	"shipping/internal/core/domain/model/pickup"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// ReschedulePickupCommandHandler moves a pickup to a new slot on customer
// request. The scheduler swaps the reservation between the two slots as one
// operation, so a full target slot leaves everything as it was.
type ReschedulePickupCommandHandler struct {
	uowFactory PickupUoWFactory
	scheduler  services.PickupScheduler
	clock      ports.Clock
}

// NewReschedulePickupCommandHandler creates a handler for manual reschedules.
func NewReschedulePickupCommandHandler(uowFactory PickupUoWFactory,
	scheduler services.PickupScheduler, clock ports.Clock) ReschedulePickupCommandHandler {
	return ReschedulePickupCommandHandler{
		uowFactory: uowFactory,
		scheduler:  scheduler,
		clock:      clock,
	}
}

// Handle loads the request and both slots, swaps the reservation and
// persists all three.
func (h *ReschedulePickupCommandHandler) Handle(ctx context.Context,
	cmd ReschedulePickupCommand) error {
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
	newSlot, err := capacity.GetSlot(ctx, cmd.NewSlotID())
	if err != nil {
		return err
	}

	var oldSlot *pickup.TimeSlot
	if held := request.TimeSlotID(); held != nil {
		if oldSlot, err = capacity.GetSlot(ctx, *held); err != nil {
			return err
		}
	}

	if err = h.scheduler.Reschedule(request, oldSlot, newSlot,
		cmd.Reason(), false, h.clock.Now()); err != nil {
		return err
	}

	if err = capacity.SaveSlot(ctx, newSlot); err != nil {
		return err
	}

	if oldSlot != nil {
		if err = capacity.SaveSlot(ctx, oldSlot); err != nil {
			return err
		}
	}

	if err = pickupRepo.Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
