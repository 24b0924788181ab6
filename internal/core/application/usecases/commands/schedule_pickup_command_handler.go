package commands

import (
	"context"

	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// SchedulePickupCommandHandler books a pickup request into a time slot.
// Capacity is taken through the scheduler, so a full slot fails the command
// without touching the request.
type SchedulePickupCommandHandler struct {
	uowFactory PickupUoWFactory
	scheduler  services.PickupScheduler
	clock      ports.Clock
}

// NewSchedulePickupCommandHandler creates a handler for pickup scheduling.
func NewSchedulePickupCommandHandler(uowFactory PickupUoWFactory,
	scheduler services.PickupScheduler, clock ports.Clock) SchedulePickupCommandHandler {
	return SchedulePickupCommandHandler{
		uowFactory: uowFactory,
		scheduler:  scheduler,
		clock:      clock,
	}
}

// Handle loads the request and the slot, reserves capacity and persists
// both sides of the booking.
func (h *SchedulePickupCommandHandler) Handle(ctx context.Context, cmd SchedulePickupCommand) error {
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
	slot, err := capacity.GetSlot(ctx, cmd.SlotID())
	if err != nil {
		return err
	}

	if err = h.scheduler.Schedule(request, slot, h.clock.Now()); err != nil {
		return err
	}

	if err = capacity.SaveSlot(ctx, slot); err != nil {
		return err
	}

	if err = pickupRepo.Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
