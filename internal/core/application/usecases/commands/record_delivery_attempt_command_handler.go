package commands

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// returnAfterRetriesReason annotates the tracking entry written when the
// retry budget runs out and the parcel turns back.
const returnAfterRetriesReason = "delivery attempts exhausted"

// RecordDeliveryAttemptCommandHandler records one delivery attempt on a
// guide. Success delivers the shipment and closes any open retry cycle.
// Failure burns an attempt; a failure whose reason is on the auto-reschedule
// list is recorded as rescheduled while the cycle still has a later attempt,
// and spending the last one sends the parcel back to origin in the same
// transaction.
type RecordDeliveryAttemptCommandHandler struct {
	uowFactory GuideUoWFactory
	clock      ports.Clock
}

// NewRecordDeliveryAttemptCommandHandler creates a handler for delivery
// attempts.
func NewRecordDeliveryAttemptCommandHandler(uowFactory GuideUoWFactory,
	clock ports.Clock) RecordDeliveryAttemptCommandHandler {
	return RecordDeliveryAttemptCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle records the attempt and persists the guide.
func (h *RecordDeliveryAttemptCommandHandler) Handle(ctx context.Context,
	cmd RecordDeliveryAttemptCommand) error {
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

	now := h.clock.Now()
	if cmd.Outcome() == shipment.OutcomeSuccess {
		err = guide.Deliver(cmd.RecipientName(), cmd.Location(), cmd.Evidence(), now)
	} else {
		err = h.recordFailure(guide, cmd, now)
	}
	if err != nil {
		return err
	}

	if err = guideRepo.Update(ctx, guide); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// recordFailure burns one attempt and turns the shipment around when the
// retry cycle closes without a delivery. The recorded outcome is policy, not
// caller input: an allow-listed reason upgrades Failed to Rescheduled while
// a later attempt is still permitted.
func (h *RecordDeliveryAttemptCommandHandler) recordFailure(guide *shipment.Guide,
	cmd RecordDeliveryAttemptCommand, now time.Time) error {
	outcome := cmd.Outcome()
	if outcome == shipment.OutcomeFailed && qualifiesForReschedule(guide, cmd.FailureReason()) {
		outcome = shipment.OutcomeRescheduled
	}

	if _, err := guide.RecordDeliveryAttempt(outcome, cmd.FailureReason(),
		cmd.Notes(), now); err != nil {
		return err
	}

	if retry := guide.Retry(); retry != nil && !retry.IsOpen() {
		return guide.ReturnToOrigin(returnAfterRetriesReason, now)
	}
	return nil
}

// qualifiesForReschedule applies the shared auto-reschedule allow-list to a
// failed delivery. The attempt about to be recorded must not be the last one:
// exhausting the cycle returns the parcel instead of proposing a new window.
func qualifiesForReschedule(guide *shipment.Guide, reason string) bool {
	if _, automatic := services.AutoRescheduleReasons[reason]; !automatic {
		return false
	}

	remaining := shipment.DefaultMaxDeliveryAttempts
	if retry := guide.Retry(); retry != nil {
		remaining = retry.RemainingAttempts()
	}
	return remaining > 1
}
