package pickup

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
)

// PickupRequested is recorded when a pickup request is created for a guide.
type PickupRequested struct {
	pickupID   kernel.UUID
	guideID    kernel.UUID
	pickupType Type
	priority   Priority
	occurredAt time.Time
}

// EventName returns the stable name of the transition.
func (e PickupRequested) EventName() string { return "pickup.requested" }

// AggregateID returns the pickup request's identifier.
func (e PickupRequested) AggregateID() kernel.UUID { return e.pickupID }

// OccurredAt returns the time the request was created.
func (e PickupRequested) OccurredAt() time.Time { return e.occurredAt }

// GuideID returns the guide the pickup collects.
func (e PickupRequested) GuideID() kernel.UUID { return e.guideID }

// PickupType returns the request's derived pickup type.
func (e PickupRequested) PickupType() Type { return e.pickupType }

// Priority returns the request's priority.
func (e PickupRequested) Priority() Priority { return e.priority }

// PickupScheduled is recorded when a slot and operator are confirmed.
type PickupScheduled struct {
	pickupID   kernel.UUID
	operatorID kernel.UUID
	timeSlotID kernel.UUID
	date       time.Time
	occurredAt time.Time
}

// EventName returns the stable name of the transition.
func (e PickupScheduled) EventName() string { return "pickup.scheduled" }

// AggregateID returns the pickup request's identifier.
func (e PickupScheduled) AggregateID() kernel.UUID { return e.pickupID }

// OccurredAt returns the time of confirmation.
func (e PickupScheduled) OccurredAt() time.Time { return e.occurredAt }

// OperatorID returns the assigned operator.
func (e PickupScheduled) OperatorID() kernel.UUID { return e.operatorID }

// TimeSlotID returns the reserved slot.
func (e PickupScheduled) TimeSlotID() kernel.UUID { return e.timeSlotID }

// Date returns the confirmed collection date.
func (e PickupScheduled) Date() time.Time { return e.date }

// PickupAssignedToPoint is recorded when a point-delivery pickup is bound to
// a logistics point.
type PickupAssignedToPoint struct {
	pickupID   kernel.UUID
	pointID    kernel.UUID
	occurredAt time.Time
}

// EventName returns the stable name of the transition.
func (e PickupAssignedToPoint) EventName() string { return "pickup.assigned_to_point" }

// AggregateID returns the pickup request's identifier.
func (e PickupAssignedToPoint) AggregateID() kernel.UUID { return e.pickupID }

// OccurredAt returns the time of assignment.
func (e PickupAssignedToPoint) OccurredAt() time.Time { return e.occurredAt }

// PointID returns the assigned logistics point.
func (e PickupAssignedToPoint) PointID() kernel.UUID { return e.pointID }

// PickupStarted is recorded when the operator begins the collection.
type PickupStarted struct {
	pickupID   kernel.UUID
	operatorID kernel.UUID
	occurredAt time.Time
}

// EventName returns the stable name of the transition.
func (e PickupStarted) EventName() string { return "pickup.started" }

// AggregateID returns the pickup request's identifier.
func (e PickupStarted) AggregateID() kernel.UUID { return e.pickupID }

// OccurredAt returns the time the collection started.
func (e PickupStarted) OccurredAt() time.Time { return e.occurredAt }

// OperatorID returns the operator performing the collection.
func (e PickupStarted) OperatorID() kernel.UUID { return e.operatorID }

// PickupCompleted is recorded on a successful collection.
type PickupCompleted struct {
	pickupID      kernel.UUID
	operatorID    kernel.UUID
	attemptNumber int
	occurredAt    time.Time
}

// EventName returns the stable name of the transition.
func (e PickupCompleted) EventName() string { return "pickup.completed" }

// AggregateID returns the pickup request's identifier.
func (e PickupCompleted) AggregateID() kernel.UUID { return e.pickupID }

// OccurredAt returns the time of completion.
func (e PickupCompleted) OccurredAt() time.Time { return e.occurredAt }

// OperatorID returns the operator that collected the package.
func (e PickupCompleted) OperatorID() kernel.UUID { return e.operatorID }

// AttemptNumber returns the attempt that succeeded.
func (e PickupCompleted) AttemptNumber() int { return e.attemptNumber }

// PickupFailed is recorded when an attempt fails; terminal indicates the
// attempt bound was exhausted.
type PickupFailed struct {
	pickupID      kernel.UUID
	operatorID    kernel.UUID
	attemptNumber int
	reason        string
	terminal      bool
	occurredAt    time.Time
}

// EventName returns the stable name of the transition.
func (e PickupFailed) EventName() string { return "pickup.failed" }

// AggregateID returns the pickup request's identifier.
func (e PickupFailed) AggregateID() kernel.UUID { return e.pickupID }

// OccurredAt returns the time of the failure.
func (e PickupFailed) OccurredAt() time.Time { return e.occurredAt }

// OperatorID returns the operator that attempted the collection.
func (e PickupFailed) OperatorID() kernel.UUID { return e.operatorID }

// AttemptNumber returns the failed attempt's sequence number.
func (e PickupFailed) AttemptNumber() int { return e.attemptNumber }

// Reason returns why the attempt failed.
func (e PickupFailed) Reason() string { return e.reason }

// Terminal reports whether the failure exhausted the attempt bound.
func (e PickupFailed) Terminal() bool { return e.terminal }

// PickupRescheduled is recorded when a request moves to a new date and slot.
type PickupRescheduled struct {
	pickupID   kernel.UUID
	oldDate    time.Time
	newDate    time.Time
	reason     string
	automatic  bool
	occurredAt time.Time
}

// EventName returns the stable name of the transition.
func (e PickupRescheduled) EventName() string { return "pickup.rescheduled" }

// AggregateID returns the pickup request's identifier.
func (e PickupRescheduled) AggregateID() kernel.UUID { return e.pickupID }

// OccurredAt returns the time of the reschedule.
func (e PickupRescheduled) OccurredAt() time.Time { return e.occurredAt }

// OldDate returns the date the request previously held.
func (e PickupRescheduled) OldDate() time.Time { return e.oldDate }

// NewDate returns the new collection date.
func (e PickupRescheduled) NewDate() time.Time { return e.newDate }

// Reason returns why the request was rescheduled.
func (e PickupRescheduled) Reason() string { return e.reason }

// Automatic reports whether the reschedule was policy-driven.
func (e PickupRescheduled) Automatic() bool { return e.automatic }

// PickupCancelled is recorded on customer or administrative termination.
type PickupCancelled struct {
	pickupID    kernel.UUID
	from        Status
	reason      string
	cancelledBy string
	occurredAt  time.Time
}

// EventName returns the stable name of the transition.
func (e PickupCancelled) EventName() string { return "pickup.cancelled" }

// AggregateID returns the pickup request's identifier.
func (e PickupCancelled) AggregateID() kernel.UUID { return e.pickupID }

// OccurredAt returns the time of cancellation.
func (e PickupCancelled) OccurredAt() time.Time { return e.occurredAt }

// From returns the status held before cancellation.
func (e PickupCancelled) From() Status { return e.from }

// Reason returns the cancellation reason.
func (e PickupCancelled) Reason() string { return e.reason }

// CancelledBy returns who requested the cancellation.
func (e PickupCancelled) CancelledBy() string { return e.cancelledBy }
