package ports

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for route aggregates.
type RouteRepository interface {
	// Add persists a new route aggregate to storage.
	Add(ctx context.Context, aggregate *route.Route) error

	// Update persists changes to an existing route aggregate.
	Update(ctx context.Context, aggregate *route.Route) error

	// Get retrieves a route aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// GetForOperatorDay retrieves the route planned for one operator on one
	// day, if any.
	GetForOperatorDay(ctx context.Context, operatorID kernel.UUID, date time.Time) (*route.Route, error)
}
