package ports

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/pickup"
)

// PickupRepository defines the persistence contract for pickup request
// aggregates.
type PickupRepository interface {
	// Add persists a new pickup request aggregate to storage.
	Add(ctx context.Context, aggregate *pickup.PickupRequest) error

	// Update persists changes to an existing pickup request aggregate.
	Update(ctx context.Context, aggregate *pickup.PickupRequest) error

	// Get retrieves a pickup request aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*pickup.PickupRequest, error)

	// GetAllForOperatorDay retrieves the pickups assigned to one operator
	// on one day, the unit a route is planned from.
	GetAllForOperatorDay(ctx context.Context, operatorID kernel.UUID, date time.Time) ([]*pickup.PickupRequest, error)

	// GetAllOverdue retrieves confirmed or in-progress pickups whose
	// scheduled date slipped past the SLA threshold as of now.
	GetAllOverdue(ctx context.Context, now time.Time) ([]*pickup.PickupRequest, error)
}

// CapacityProvider defines the persistence contract for time slots, the
// capacity units pickups reserve against.
type CapacityProvider interface {
	// GetSlot retrieves a time slot by its unique identifier.
	GetSlot(ctx context.Context, id kernel.UUID) (*pickup.TimeSlot, error)

	// NextAvailableSlot finds the first slot with free capacity for the
	// operator strictly after the given time. Used by the auto-reschedule
	// policy to propose the next day's window.
	NextAvailableSlot(ctx context.Context, operatorID kernel.UUID, after time.Time) (*pickup.TimeSlot, error)

	// SaveSlot persists a slot's reservation count.
	SaveSlot(ctx context.Context, slot *pickup.TimeSlot) error
}
