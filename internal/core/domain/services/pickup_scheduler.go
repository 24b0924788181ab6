package services

import (
	"errors"
	"strings"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/pickup"
	"shipping/internal/pkg/errs"
)

// AutoRescheduleReasons is the fixed allow-list of failure reasons that
// trigger an automatic reschedule to the next available slot. Every other
// reason requires a manual reschedule decision.
var AutoRescheduleReasons = map[string]struct{}{
	"customer_not_available": {},
	"address_not_found":      {},
	"traffic_delay":          {},
}

// DerivePickupType maps a customer's commercial tier to how their packages
// enter the network. Small customers drop packages at logistics points;
// medium and large customers get an operator at their door. This is policy,
// not caller input.
func DerivePickupType(tier pickup.CustomerTier) (pickup.Type, error) {
	if err := tier.Validate(); err != nil {
		return pickup.TypeUnknown, err
	}
	if tier == pickup.TierSmall {
		return pickup.PointDelivery, nil
	}
	return pickup.DirectPickup, nil
}

// PickupScheduler is the domain service coordinating pickup requests with
// slot capacity. It owns the pairing invariant: every reservation a request
// holds is released exactly once, by reschedule, cancellation, or nothing at
// all on completion (success consumes the capacity for the day).
//
// The scheduler mutates the aggregate only after capacity is secured, and
// compensates the capacity operation when the aggregate rejects the
// transition, so a failed call never leaks a reservation.
type PickupScheduler struct{}

// NewPickupScheduler creates a new PickupScheduler instance.
func NewPickupScheduler() PickupScheduler {
	return PickupScheduler{}
}

// Schedule reserves one unit of the slot's capacity and confirms the request
// against the slot's operator and date. Requests already holding a slot must
// go through Reschedule instead.
func (s PickupScheduler) Schedule(request *pickup.PickupRequest,
	slot *pickup.TimeSlot, now time.Time) error {
	if err := request.Validate(); err != nil {
		return err
	}
	if err := slot.Validate(); err != nil {
		return err
	}
	if request.TimeSlotID() != nil {
		return errs.NewValueIsInvalidErrorWithCause("request",
			errors.New("request already holds a slot, use Reschedule"))
	}

	if err := slot.Reserve(); err != nil {
		return err
	}
	if err := request.Schedule(slot.Start(), slot.ID(), slot.OperatorID(), now); err != nil {
		// The aggregate rejected the transition, give the capacity back.
		_ = slot.Release()
		return err
	}
	return nil
}

// AssignToPoint confirms a point-delivery request against a logistics point.
// Point capacity is modeled outside this core, so no slot is touched.
func (s PickupScheduler) AssignToPoint(request *pickup.PickupRequest,
	pointID kernel.UUID, now time.Time) error {
	if err := request.Validate(); err != nil {
		return err
	}
	return request.AssignToPoint(pointID, now)
}

// Start marks the collection as in progress.
func (s PickupScheduler) Start(request *pickup.PickupRequest,
	operatorID kernel.UUID, now time.Time) error {
	if err := request.Validate(); err != nil {
		return err
	}
	return request.Start(operatorID, now)
}

// Complete records a successful collection. The slot's capacity stays
// consumed; success never returns it.
func (s PickupScheduler) Complete(request *pickup.PickupRequest,
	operatorID kernel.UUID, notes string, evidence []string, now time.Time) error {
	if err := request.Validate(); err != nil {
		return err
	}
	return request.Complete(operatorID, notes, evidence, now)
}

// Fail records a failed collection attempt. The second return value reports
// whether the failure qualifies for an automatic reschedule: the reason is on
// the allow-list and the request can still take a new slot. The old slot's
// reservation stays held until the reschedule moves or the cancellation
// releases it.
func (s PickupScheduler) Fail(request *pickup.PickupRequest, operatorID kernel.UUID,
	reason string, notes string, evidence []string, now time.Time) (pickup.Attempt, bool, error) {
	if err := request.Validate(); err != nil {
		return pickup.Attempt{}, false, err
	}

	attempt, err := request.Fail(operatorID, reason, notes, evidence, now)
	if err != nil {
		return pickup.Attempt{}, false, err
	}

	_, automatic := AutoRescheduleReasons[reason]
	return attempt, automatic && request.CanBeRescheduled(), nil
}

// Reschedule moves the request to a new slot. When the request holds a
// reservation on oldSlot, the release/reserve pair runs as one atomic swap:
// a full new slot fails the whole operation and the old reservation
// survives. Requests holding no reservation just reserve the new slot.
func (s PickupScheduler) Reschedule(request *pickup.PickupRequest,
	oldSlot *pickup.TimeSlot, newSlot *pickup.TimeSlot,
	reason string, automatic bool, now time.Time) error {
	if err := request.Validate(); err != nil {
		return err
	}
	if err := newSlot.Validate(); err != nil {
		return err
	}
	if !request.CanBeRescheduled() {
		if request.AttemptCount() >= request.MaxAttempts() {
			return errs.NewRetryExhaustedError("PickupRequest", request.MaxAttempts())
		}
		return errs.NewInvalidStateTransitionError("PickupRequest",
			request.Status().String(), pickup.Rescheduled.String())
	}
	// Everything the aggregate will check must be checked here first: once the
	// capacity moved, a rejected transition forces a compensating swap that can
	// itself fail if the old slot refilled in the meantime.
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if newSlot.Start().IsZero() {
		return errs.NewValueIsRequiredError("newSlot start")
	}

	held := request.TimeSlotID()
	switch {
	case held == nil:
		if err := newSlot.Reserve(); err != nil {
			return err
		}
	case oldSlot == nil || !oldSlot.ID().IsEqual(*held):
		return errs.NewValueIsInvalidErrorWithCause("oldSlot",
			errors.New("old slot does not match the request's reservation"))
	default:
		if err := pickup.SwapReservation(oldSlot, newSlot); err != nil {
			return err
		}
	}

	if err := request.Reschedule(newSlot.Start(), newSlot.ID(), reason, automatic, now); err != nil {
		// Undo the capacity move so the request's reservation stays where
		// it was. A failed undo strands the reservation and must reach the
		// caller together with the original rejection.
		var undoErr error
		if held == nil {
			undoErr = newSlot.Release()
		} else {
			undoErr = pickup.SwapReservation(newSlot, oldSlot)
		}
		return errors.Join(err, undoErr)
	}
	return nil
}

// Cancel terminates the request and releases its reservation when one is
// held. Completed pickups cannot be cancelled; their capacity was consumed.
func (s PickupScheduler) Cancel(request *pickup.PickupRequest,
	heldSlot *pickup.TimeSlot, reason string, cancelledBy string, now time.Time) error {
	if err := request.Validate(); err != nil {
		return err
	}

	held := request.TimeSlotID()
	if held != nil {
		if heldSlot == nil || !heldSlot.ID().IsEqual(*held) {
			return errs.NewValueIsInvalidErrorWithCause("heldSlot",
				errors.New("held slot does not match the request's reservation"))
		}
	}

	if err := request.Cancel(reason, cancelledBy, now); err != nil {
		return err
	}

	if held != nil {
		if err := heldSlot.Release(); err != nil {
			return err
		}
		request.ReleaseSlot()
	}
	return nil
}
