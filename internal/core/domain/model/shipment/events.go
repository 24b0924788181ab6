package shipment

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
)

// Domain events recorded by the Guide aggregate, one per committed lifecycle
// transition. Idempotent InTransit re-entries append tracking entries but do
// not record a second PackageInTransit event.

// GuideGenerated is recorded when a guide is created for a confirmed order.
type GuideGenerated struct {
	guideID    kernel.UUID
	orderID    kernel.UUID
	occurredAt time.Time
}

// EventName returns the stable name of the transition.
func (e GuideGenerated) EventName() string { return "guide.generated" }

// AggregateID returns the guide's identifier.
func (e GuideGenerated) AggregateID() kernel.UUID { return e.guideID }

// OccurredAt returns the time the guide was generated.
func (e GuideGenerated) OccurredAt() time.Time { return e.occurredAt }

// OrderID returns the identifier of the order the guide was generated from.
func (e GuideGenerated) OrderID() kernel.UUID { return e.orderID }

// PackagePickedUp is recorded when the package is physically collected.
type PackagePickedUp struct {
	guideID    kernel.UUID
	location   string
	operator   string
	occurredAt time.Time
}

// EventName returns the stable name of the transition.
func (e PackagePickedUp) EventName() string { return "shipment.picked_up" }

// AggregateID returns the guide's identifier.
func (e PackagePickedUp) AggregateID() kernel.UUID { return e.guideID }

// OccurredAt returns the time of pickup.
func (e PackagePickedUp) OccurredAt() time.Time { return e.occurredAt }

// Location returns where the package was collected.
func (e PackagePickedUp) Location() string { return e.location }

// Operator returns the logistics operator that collected the package.
func (e PackagePickedUp) Operator() string { return e.operator }

// PackageInTransit is recorded on the first transit entry only.
type PackageInTransit struct {
	guideID    kernel.UUID
	location   string
	occurredAt time.Time
}

// EventName returns the stable name of the transition.
func (e PackageInTransit) EventName() string { return "shipment.in_transit" }

// AggregateID returns the guide's identifier.
func (e PackageInTransit) AggregateID() kernel.UUID { return e.guideID }

// OccurredAt returns the time of the transition.
func (e PackageInTransit) OccurredAt() time.Time { return e.occurredAt }

// Location returns the waypoint recorded with the transition.
func (e PackageInTransit) Location() string { return e.location }

// PackageOutForDelivery is recorded when the package boards the last-mile vehicle.
type PackageOutForDelivery struct {
	guideID    kernel.UUID
	occurredAt time.Time
}

// EventName returns the stable name of the transition.
func (e PackageOutForDelivery) EventName() string { return "shipment.out_for_delivery" }

// AggregateID returns the guide's identifier.
func (e PackageOutForDelivery) AggregateID() kernel.UUID { return e.guideID }

// OccurredAt returns the time of the transition.
func (e PackageOutForDelivery) OccurredAt() time.Time { return e.occurredAt }

// PackageDelivered is recorded on successful final delivery.
type PackageDelivered struct {
	guideID       kernel.UUID
	recipientName string
	location      string
	evidence      []string
	occurredAt    time.Time
}

// EventName returns the stable name of the transition.
func (e PackageDelivered) EventName() string { return "shipment.delivered" }

// AggregateID returns the guide's identifier.
func (e PackageDelivered) AggregateID() kernel.UUID { return e.guideID }

// OccurredAt returns the time of delivery.
func (e PackageDelivered) OccurredAt() time.Time { return e.occurredAt }

// RecipientName returns who received the package.
func (e PackageDelivered) RecipientName() string { return e.recipientName }

// Location returns where the package was delivered.
func (e PackageDelivered) Location() string { return e.location }

// Evidence returns the delivery evidence references.
func (e PackageDelivered) Evidence() []string { return e.evidence }

// PackageReturned is recorded when the shipment is sent back to origin.
type PackageReturned struct {
	guideID    kernel.UUID
	reason     string
	occurredAt time.Time
}

// EventName returns the stable name of the transition.
func (e PackageReturned) EventName() string { return "shipment.returned" }

// AggregateID returns the guide's identifier.
func (e PackageReturned) AggregateID() kernel.UUID { return e.guideID }

// OccurredAt returns the time of the transition.
func (e PackageReturned) OccurredAt() time.Time { return e.occurredAt }

// Reason returns why the shipment was returned.
func (e PackageReturned) Reason() string { return e.reason }

// GuideCancelled is recorded on customer or administrative termination.
type GuideCancelled struct {
	guideID    kernel.UUID
	from       Status
	reason     string
	occurredAt time.Time
}

// EventName returns the stable name of the transition.
func (e GuideCancelled) EventName() string { return "guide.cancelled" }

// AggregateID returns the guide's identifier.
func (e GuideCancelled) AggregateID() kernel.UUID { return e.guideID }

// OccurredAt returns the time of cancellation.
func (e GuideCancelled) OccurredAt() time.Time { return e.occurredAt }

// From returns the status the guide held before cancellation.
func (e GuideCancelled) From() Status { return e.from }

// Reason returns the caller-supplied cancellation reason.
func (e GuideCancelled) Reason() string { return e.reason }

// DeliveryAttemptRecorded is recorded for every delivery attempt appended to
// the guide's retry cycle.
type DeliveryAttemptRecorded struct {
	guideID          kernel.UUID
	attemptNumber    int
	outcome          AttemptOutcome
	failureReason    string
	nextAttemptAfter time.Time
	occurredAt       time.Time
}

// EventName returns the stable name of the transition.
func (e DeliveryAttemptRecorded) EventName() string { return "shipment.delivery_attempt_recorded" }

// AggregateID returns the guide's identifier.
func (e DeliveryAttemptRecorded) AggregateID() kernel.UUID { return e.guideID }

// OccurredAt returns the time the attempt was recorded.
func (e DeliveryAttemptRecorded) OccurredAt() time.Time { return e.occurredAt }

// AttemptNumber returns the 1-based attempt sequence number.
func (e DeliveryAttemptRecorded) AttemptNumber() int { return e.attemptNumber }

// Outcome returns the attempt's recorded outcome.
func (e DeliveryAttemptRecorded) Outcome() AttemptOutcome { return e.outcome }

// FailureReason returns the failure reason, empty on success.
func (e DeliveryAttemptRecorded) FailureReason() string { return e.failureReason }

// NextAttemptAfter returns when the proposed next attempt window opens, zero
// unless the attempt was rescheduled.
func (e DeliveryAttemptRecorded) NextAttemptAfter() time.Time { return e.nextAttemptAfter }
