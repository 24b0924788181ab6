package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

// GuideRepository defines the persistence contract for guide aggregates,
// including their tracking timelines and delivery retry cycles.
type GuideRepository interface {
	// Add persists a new guide aggregate to storage.
	Add(ctx context.Context, aggregate *shipment.Guide) error

	// Update persists changes to an existing guide aggregate.
	Update(ctx context.Context, aggregate *shipment.Guide) error

	// Get retrieves a guide aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Guide, error)

	// GetByOrderID retrieves the guide generated for an order, if any.
	// The one-guide-per-order invariant is enforced here.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*shipment.Guide, error)
}
