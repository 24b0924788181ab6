package pickup

import (
	"errors"
	"strings"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// OverdueThreshold is how long past the scheduled date a confirmed or
// in-progress pickup may run before the SLA sweep flags it.
const OverdueThreshold = 2 * time.Hour

// ErrPickupRequestIsNotConstructed is returned when a PickupRequest was not
// created through its constructors.
var ErrPickupRequestIsNotConstructed = errors.New(
	"PickupRequest must be created via NewPickupRequest or RestorePickupRequest constructor")

// PickupRequest is the aggregate root of the collection process. It tracks
// slot assignment, collection attempts up to a fixed bound, and the pickup's
// lifecycle state. Slot capacity itself lives on TimeSlot; the request only
// remembers which slot it holds so the scheduler can pair every reservation
// with its release.
type PickupRequest struct {
	kernel.EventRecorder

	id            kernel.UUID
	guideID       kernel.UUID
	customerID    kernel.UUID
	pickupType    Type
	priority      Priority
	location      kernel.GeoPoint
	status        Status
	scheduledDate time.Time
	timeSlotID    *kernel.UUID
	operatorID    *kernel.UUID
	pointID       *kernel.UUID
	attempts      []Attempt
	maxAttempts   int

	isConstructed bool
}

// NewPickupRequest creates a pickup request for a guide and records
// PickupRequested. The pickup type comes from the tier derivation policy,
// never from caller input.
func NewPickupRequest(id kernel.UUID, guideID kernel.UUID, customerID kernel.UUID,
	pickupType Type, priority Priority, location kernel.GeoPoint,
	now time.Time) (*PickupRequest, error) {
	request := &PickupRequest{
		id:          id,
		status:      Scheduled,
		maxAttempts: DefaultMaxAttempts,

		isConstructed: true,
	}

	if err := errors.Join(
		request.setGuideID(guideID),
		request.setCustomerID(customerID),
		request.setPickupType(pickupType),
		request.setPriority(priority),
		request.setLocation(location),
	); err != nil {
		return nil, err
	}

	request.RecordEvent(PickupRequested{
		pickupID:   id,
		guideID:    guideID,
		pickupType: pickupType,
		priority:   priority,
		occurredAt: now,
	})
	return request, nil
}

// RestorePickupRequest reconstructs a PickupRequest from persisted state
// without recording events.
func RestorePickupRequest(id kernel.UUID, guideID kernel.UUID, customerID kernel.UUID,
	pickupType Type, priority Priority, location kernel.GeoPoint,
	status Status, scheduledDate time.Time,
	timeSlotID *kernel.UUID, operatorID *kernel.UUID, pointID *kernel.UUID,
	attempts []Attempt, maxAttempts int) (*PickupRequest, error) {
	request := &PickupRequest{
		id:            id,
		status:        status,
		scheduledDate: scheduledDate,
		timeSlotID:    timeSlotID,
		operatorID:    operatorID,
		pointID:       pointID,
		maxAttempts:   maxAttempts,

		isConstructed: true,
	}

	if err := errors.Join(
		request.setGuideID(guideID),
		request.setCustomerID(customerID),
		request.setPickupType(pickupType),
		request.setPriority(priority),
		request.setLocation(location),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if maxAttempts <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("maxAttempts is invalid",
			errors.New("maxAttempts must be greater than 0"))
	}
	if len(attempts) > maxAttempts {
		return nil, errs.NewValueIsOutOfRangeError("attempts", len(attempts), 0, maxAttempts)
	}

	request.attempts = make([]Attempt, len(attempts))
	copy(request.attempts, attempts)

	return request, nil
}

// Validate ensures the PickupRequest was properly constructed.
func (p *PickupRequest) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPickupRequestIsNotConstructed
	}
	return nil
}

// ID returns the pickup request's identifier.
func (p *PickupRequest) ID() kernel.UUID { return p.id }

// GuideID returns the guide this pickup collects.
func (p *PickupRequest) GuideID() kernel.UUID { return p.guideID }

// CustomerID returns the customer the package is collected from.
func (p *PickupRequest) CustomerID() kernel.UUID { return p.customerID }

// PickupType returns the derived pickup type.
func (p *PickupRequest) PickupType() Type { return p.pickupType }

// Priority returns the pickup's collection priority.
func (p *PickupRequest) Priority() Priority { return p.priority }

// Location returns the geographic point the package is collected at.
func (p *PickupRequest) Location() kernel.GeoPoint { return p.location }

// Status returns the pickup's lifecycle status.
func (p *PickupRequest) Status() Status { return p.status }

// ScheduledDate returns the confirmed collection date, zero until scheduled.
func (p *PickupRequest) ScheduledDate() time.Time { return p.scheduledDate }

// TimeSlotID returns the reserved slot, nil when none is held.
func (p *PickupRequest) TimeSlotID() *kernel.UUID { return p.timeSlotID }

// OperatorID returns the assigned operator, nil until one is assigned.
func (p *PickupRequest) OperatorID() *kernel.UUID { return p.operatorID }

// PointID returns the assigned logistics point, nil unless the pickup is a
// point delivery bound to one.
func (p *PickupRequest) PointID() *kernel.UUID { return p.pointID }

// MaxAttempts returns the attempt bound.
func (p *PickupRequest) MaxAttempts() int { return p.maxAttempts }

// Attempts returns a copy of the recorded collection attempts.
func (p *PickupRequest) Attempts() []Attempt {
	attempts := make([]Attempt, len(p.attempts))
	copy(attempts, p.attempts)
	return attempts
}

// AttemptCount returns the number of recorded attempts.
func (p *PickupRequest) AttemptCount() int { return len(p.attempts) }

// CanBeRescheduled reports whether the request may take a new slot: attempts
// below the bound and the request neither completed nor cancelled.
func (p *PickupRequest) CanBeRescheduled() bool {
	return len(p.attempts) < p.maxAttempts &&
		p.status != Completed && p.status != Cancelled
}

// IsOverdue reports whether a confirmed or in-progress pickup slipped past
// its scheduled date by more than the SLA threshold. Derived, never stored.
func (p *PickupRequest) IsOverdue(now time.Time) bool {
	if p.status != Confirmed && p.status != InProgress {
		return false
	}
	return now.After(p.scheduledDate.Add(OverdueThreshold))
}

// Schedule confirms a slot and operator for the request. The caller reserves
// the slot's capacity first; a confirmed request holds exactly one
// reservation.
func (p *PickupRequest) Schedule(date time.Time, timeSlotID kernel.UUID,
	operatorID kernel.UUID, now time.Time) error {
	next, err := p.status.Confirm()
	if err != nil {
		return err
	}
	if err := errors.Join(
		validateSlotID(timeSlotID, "timeSlotID"),
		validateSlotID(operatorID, "operatorID"),
	); err != nil {
		return err
	}
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}

	p.scheduledDate = date
	p.timeSlotID = &timeSlotID
	p.operatorID = &operatorID
	p.status = next
	p.RecordEvent(PickupScheduled{
		pickupID:   p.id,
		operatorID: operatorID,
		timeSlotID: timeSlotID,
		date:       date,
		occurredAt: now,
	})
	return nil
}

// AssignToPoint confirms the request against a logistics point. Valid only
// for point deliveries; slot capacity is never touched because points carry
// their own capacity outside this core.
func (p *PickupRequest) AssignToPoint(pointID kernel.UUID, now time.Time) error {
	if p.pickupType != PointDelivery {
		return errs.NewInvalidPickupTypeError(PointDelivery.String(), p.pickupType.String())
	}
	next, err := p.status.Confirm()
	if err != nil {
		return err
	}
	if err := validateSlotID(pointID, "pointID"); err != nil {
		return err
	}

	p.pointID = &pointID
	p.status = next
	p.RecordEvent(PickupAssignedToPoint{
		pickupID:   p.id,
		pointID:    pointID,
		occurredAt: now,
	})
	return nil
}

// Start marks the collection as in progress. The operator must match the
// assignment when one exists; point-delivery pickups take the acting
// operator here.
func (p *PickupRequest) Start(operatorID kernel.UUID, now time.Time) error {
	next, err := p.status.Start()
	if err != nil {
		return err
	}
	if err := validateSlotID(operatorID, "operatorID"); err != nil {
		return err
	}
	if p.operatorID != nil && !p.operatorID.IsEqual(operatorID) {
		return errs.NewValueIsInvalidErrorWithCause("operatorID",
			errors.New("operator does not match the assignment"))
	}

	if p.operatorID == nil {
		p.operatorID = &operatorID
	}
	p.status = next
	p.RecordEvent(PickupStarted{
		pickupID:   p.id,
		operatorID: operatorID,
		occurredAt: now,
	})
	return nil
}

// Complete records a successful collection attempt and terminates the
// request. Slot capacity stays consumed; success never returns it.
func (p *PickupRequest) Complete(operatorID kernel.UUID, notes string,
	evidence []string, now time.Time) error {
	next, err := p.status.Complete()
	if err != nil {
		return err
	}
	if len(p.attempts) >= p.maxAttempts {
		return errs.NewRetryExhaustedError("PickupRequest", p.maxAttempts)
	}

	attempt, err := newAttempt(len(p.attempts)+1, operatorID, true, "", notes, evidence, now)
	if err != nil {
		return err
	}

	p.attempts = append(p.attempts, attempt)
	p.status = next
	p.RecordEvent(PickupCompleted{
		pickupID:      p.id,
		operatorID:    operatorID,
		attemptNumber: attempt.Number(),
		occurredAt:    now,
	})
	return nil
}

// Fail records a failed collection attempt. Below the attempt bound the
// request moves to Rescheduled and waits for a new slot; on the final
// permitted attempt it fails terminally. The returned attempt carries the
// failure reason the auto-reschedule policy inspects.
func (p *PickupRequest) Fail(operatorID kernel.UUID, reason string, notes string,
	evidence []string, now time.Time) (Attempt, error) {
	if len(p.attempts) >= p.maxAttempts {
		return Attempt{}, errs.NewRetryExhaustedError("PickupRequest", p.maxAttempts)
	}
	if _, err := p.status.Fail(); err != nil {
		return Attempt{}, err
	}

	attempt, err := newAttempt(len(p.attempts)+1, operatorID, false, reason, notes, evidence, now)
	if err != nil {
		return Attempt{}, err
	}

	p.attempts = append(p.attempts, attempt)
	terminal := len(p.attempts) >= p.maxAttempts
	if terminal {
		p.status = Failed
	} else {
		p.status = Rescheduled
	}

	p.RecordEvent(PickupFailed{
		pickupID:      p.id,
		operatorID:    operatorID,
		attemptNumber: attempt.Number(),
		reason:        reason,
		terminal:      terminal,
		occurredAt:    now,
	})
	return attempt, nil
}

// Reschedule moves the request to a new date and slot. The caller swaps the
// slot reservations atomically before this is applied; see
// services.PickupScheduler.
func (p *PickupRequest) Reschedule(newDate time.Time, newTimeSlotID kernel.UUID,
	reason string, automatic bool, now time.Time) error {
	if !p.CanBeRescheduled() {
		if len(p.attempts) >= p.maxAttempts {
			return errs.NewRetryExhaustedError("PickupRequest", p.maxAttempts)
		}
		return errs.NewInvalidStateTransitionError("PickupRequest",
			p.status.String(), Rescheduled.String())
	}
	if err := validateSlotID(newTimeSlotID, "newTimeSlotID"); err != nil {
		return err
	}
	if newDate.IsZero() {
		return errs.NewValueIsRequiredError("newDate")
	}
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	oldDate := p.scheduledDate
	p.scheduledDate = newDate
	p.timeSlotID = &newTimeSlotID
	p.status = Confirmed
	p.RecordEvent(PickupRescheduled{
		pickupID:   p.id,
		oldDate:    oldDate,
		newDate:    newDate,
		reason:     reason,
		automatic:  automatic,
		occurredAt: now,
	})
	return nil
}

// Cancel terminates the request. Completed pickups consumed their capacity
// and cannot be cancelled; the scheduler releases any held reservation after
// a successful cancel.
func (p *PickupRequest) Cancel(reason string, cancelledBy string, now time.Time) error {
	next, err := p.status.Cancel()
	if err != nil {
		return err
	}
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if strings.TrimSpace(cancelledBy) == "" {
		return errs.NewValueIsRequiredError("cancelledBy")
	}

	from := p.status
	p.status = next
	p.RecordEvent(PickupCancelled{
		pickupID:    p.id,
		from:        from,
		reason:      reason,
		cancelledBy: cancelledBy,
		occurredAt:  now,
	})
	return nil
}

// ReleaseSlot forgets the held slot reference after the scheduler returned
// its capacity. Pairs every reservation with exactly one release.
func (p *PickupRequest) ReleaseSlot() {
	p.timeSlotID = nil
}

func (p *PickupRequest) setGuideID(guideID kernel.UUID) error {
	if err := guideID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("guideID", err)
	}
	p.guideID = guideID
	return nil
}

func (p *PickupRequest) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerID", err)
	}
	p.customerID = customerID
	return nil
}

func (p *PickupRequest) setPickupType(pickupType Type) error {
	if err := pickupType.Validate(); err != nil {
		return err
	}
	p.pickupType = pickupType
	return nil
}

func (p *PickupRequest) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	p.priority = priority
	return nil
}

func (p *PickupRequest) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("location", err)
	}
	p.location = location
	return nil
}
