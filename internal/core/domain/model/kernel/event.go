package kernel

import (
	"sync"
	"time"
)

// DomainEvent is an immutable record of one committed state transition on an
// aggregate, intended for external consumption (audit, messaging, projections).
// Each mutating domain operation records exactly one event per transition;
// rejected operations record nothing.
type DomainEvent interface {
	// EventName returns the stable name of the transition, e.g. "order.confirmed".
	EventName() string

	// AggregateID returns the identifier of the aggregate the event belongs to.
	AggregateID() UUID

	// OccurredAt returns the time the transition was committed.
	OccurredAt() time.Time
}

// EventRecorder is the per-aggregate outbox. Aggregate roots embed it and
// append one event per successful transition; an external publisher drains the
// recorded events after the owning transaction commits.
//
// DrainEvents returns and clears atomically, giving consume-once semantics so
// that two concurrent publishers can never observe the same event twice.
type EventRecorder struct {
	mu     sync.Mutex
	events []DomainEvent
}

// RecordEvent appends a committed transition to the outbox.
// Nil events are ignored.
func (r *EventRecorder) RecordEvent(event DomainEvent) {
	if event == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// DrainEvents atomically returns all recorded events and clears the outbox.
// The returned slice is owned by the caller.
func (r *EventRecorder) DrainEvents() []DomainEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	drained := r.events
	r.events = nil
	return drained
}

// PendingEvents returns the number of events recorded but not yet drained.
func (r *EventRecorder) PendingEvents() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}
