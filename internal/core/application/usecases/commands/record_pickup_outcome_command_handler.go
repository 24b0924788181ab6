package commands

import (
	"context"
	"errors"
	"time"

	"shipping/internal/core/domain/model/pickup"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// RecordPickupOutcomeCommandHandler records a collection attempt. Success
// completes the pickup and stamps the guide as picked up. Failure burns one
// attempt; when the reason is on the auto-reschedule list and the operator
// still has capacity the handler books the next available slot in the same
// transaction.
type RecordPickupOutcomeCommandHandler struct {
	uowFactory PickupOutcomeUoWFactory
	scheduler  services.PickupScheduler
	clock      ports.Clock
}

// NewRecordPickupOutcomeCommandHandler creates a handler for collection
// outcomes.
func NewRecordPickupOutcomeCommandHandler(uowFactory PickupOutcomeUoWFactory,
	scheduler services.PickupScheduler, clock ports.Clock) RecordPickupOutcomeCommandHandler {
	return RecordPickupOutcomeCommandHandler{
		uowFactory: uowFactory,
		scheduler:  scheduler,
		clock:      clock,
	}
}

// Handle records the outcome and persists every aggregate it touched.
func (h *RecordPickupOutcomeCommandHandler) Handle(ctx context.Context,
	cmd RecordPickupOutcomeCommand) error {
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

	now := h.clock.Now()
	if request.Status() == pickup.Confirmed {
		if err = h.scheduler.Start(request, cmd.OperatorID(), now); err != nil {
			return err
		}
	}

	if cmd.Succeeded() {
		err = h.completePickup(ctx, uow, request, cmd, now)
	} else {
		err = h.failPickup(ctx, uow, request, cmd, now)
	}
	if err != nil {
		return err
	}

	if err = pickupRepo.Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// completePickup closes the request and moves the shipment to PickedUp. The
// slot's capacity stays consumed.
func (h *RecordPickupOutcomeCommandHandler) completePickup(ctx context.Context,
	uow PickupOutcomeUoW, request *pickup.PickupRequest,
	cmd RecordPickupOutcomeCommand, now time.Time) error {
	if err := h.scheduler.Complete(request, cmd.OperatorID(), cmd.Notes(),
		cmd.Evidence(), now); err != nil {
		return err
	}

	guideRepo := uow.GuideRepository()
	guide, err := guideRepo.Get(ctx, request.GuideID())
	if err != nil {
		return err
	}

	if err = guide.Pickup(cmd.Location(), now); err != nil {
		return err
	}

	return guideRepo.Update(ctx, guide)
}

// failPickup burns one attempt and, when the failure qualifies, books the
// operator's next open slot automatically. No open slot is not an error:
// the request stays rescheduled and waits for a manual booking.
func (h *RecordPickupOutcomeCommandHandler) failPickup(ctx context.Context,
	uow PickupOutcomeUoW, request *pickup.PickupRequest,
	cmd RecordPickupOutcomeCommand, now time.Time) error {
	_, automatic, err := h.scheduler.Fail(request, cmd.OperatorID(),
		cmd.Reason(), cmd.Notes(), cmd.Evidence(), now)
	if err != nil {
		return err
	}

	if !automatic {
		return nil
	}

	capacity := uow.CapacityProvider()

	var oldSlot *pickup.TimeSlot
	if held := request.TimeSlotID(); held != nil {
		if oldSlot, err = capacity.GetSlot(ctx, *held); err != nil {
			return err
		}
	}

	nextSlot, err := capacity.NextAvailableSlot(ctx, cmd.OperatorID(), now)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err = h.scheduler.Reschedule(request, oldSlot, nextSlot,
		cmd.Reason(), true, now); err != nil {
		return err
	}

	if err = capacity.SaveSlot(ctx, nextSlot); err != nil {
		return err
	}

	if oldSlot != nil {
		return capacity.SaveSlot(ctx, oldSlot)
	}
	return nil
}
