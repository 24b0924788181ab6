package ports

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/kernel"
)

// EventPublisher ships drained domain events to the outside world after the
// owning transaction commits. Publication is fire-and-forget from the
// domain's point of view: a failed publish is logged by the adapter, never
// surfaced into the business transaction.
type EventPublisher interface {
	// Publish sends the events in order. Implementations must tolerate an
	// empty slice.
	Publish(ctx context.Context, events []kernel.DomainEvent) error
}

// Clock supplies the current time. Application handlers stamp domain
// operations through this port so SLA predicates and attempt timestamps are
// deterministic under test.
type Clock interface {
	Now() time.Time
}
