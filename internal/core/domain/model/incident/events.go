package incident

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
)

// IncidentReported is recorded when an incident is filed against a guide.
type IncidentReported struct {
	incidentID kernel.UUID
	guideID    kernel.UUID
	kind       Type
	severity   Severity
	occurredAt time.Time
}

// EventName returns the stable name of the transition.
func (e IncidentReported) EventName() string { return "incident.reported" }

// AggregateID returns the incident's identifier.
func (e IncidentReported) AggregateID() kernel.UUID { return e.incidentID }

// OccurredAt returns the time the incident was reported.
func (e IncidentReported) OccurredAt() time.Time { return e.occurredAt }

// GuideID returns the guide the incident was filed against.
func (e IncidentReported) GuideID() kernel.UUID { return e.guideID }

// Kind returns the incident's classification.
func (e IncidentReported) Kind() Type { return e.kind }

// Severity returns the reported severity.
func (e IncidentReported) Severity() Severity { return e.severity }

// IncidentAcknowledged is recorded when an incident moves into review.
type IncidentAcknowledged struct {
	incidentID kernel.UUID
	reviewer   string
	occurredAt time.Time
}

// EventName returns the stable name of the transition.
func (e IncidentAcknowledged) EventName() string { return "incident.acknowledged" }

// AggregateID returns the incident's identifier.
func (e IncidentAcknowledged) AggregateID() kernel.UUID { return e.incidentID }

// OccurredAt returns the time of acknowledgement.
func (e IncidentAcknowledged) OccurredAt() time.Time { return e.occurredAt }

// Reviewer returns who took the incident into review.
func (e IncidentAcknowledged) Reviewer() string { return e.reviewer }

// IncidentEscalated is recorded when an incident's handling is escalated.
type IncidentEscalated struct {
	incidentID   kernel.UUID
	from         Status
	fromSeverity Severity
	toSeverity   Severity
	reason       string
	occurredAt   time.Time
}

// EventName returns the stable name of the transition.
func (e IncidentEscalated) EventName() string { return "incident.escalated" }

// AggregateID returns the incident's identifier.
func (e IncidentEscalated) AggregateID() kernel.UUID { return e.incidentID }

// OccurredAt returns the time of escalation.
func (e IncidentEscalated) OccurredAt() time.Time { return e.occurredAt }

// From returns the status held before escalation.
func (e IncidentEscalated) From() Status { return e.from }

// FromSeverity returns the severity before escalation.
func (e IncidentEscalated) FromSeverity() Severity { return e.fromSeverity }

// ToSeverity returns the severity after escalation.
func (e IncidentEscalated) ToSeverity() Severity { return e.toSeverity }

// Reason returns the escalation reason.
func (e IncidentEscalated) Reason() string { return e.reason }

// IncidentResolved is recorded when a resolution is filed.
type IncidentResolved struct {
	incidentID kernel.UUID
	from       Status
	resolution string
	occurredAt time.Time
}

// EventName returns the stable name of the transition.
func (e IncidentResolved) EventName() string { return "incident.resolved" }

// AggregateID returns the incident's identifier.
func (e IncidentResolved) AggregateID() kernel.UUID { return e.incidentID }

// OccurredAt returns the time of resolution.
func (e IncidentResolved) OccurredAt() time.Time { return e.occurredAt }

// From returns the status held before resolution.
func (e IncidentResolved) From() Status { return e.from }

// Resolution returns the recorded resolution text.
func (e IncidentResolved) Resolution() string { return e.resolution }

// IncidentClosed is recorded when a resolved incident is confirmed closed.
type IncidentClosed struct {
	incidentID kernel.UUID
	occurredAt time.Time
}

// EventName returns the stable name of the transition.
func (e IncidentClosed) EventName() string { return "incident.closed" }

// AggregateID returns the incident's identifier.
func (e IncidentClosed) AggregateID() kernel.UUID { return e.incidentID }

// OccurredAt returns the time the incident was closed.
func (e IncidentClosed) OccurredAt() time.Time { return e.occurredAt }
