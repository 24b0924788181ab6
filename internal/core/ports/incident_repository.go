package ports

import (
	"context"

	"shipping/internal/core/domain/model/incident"
	"shipping/internal/core/domain/model/kernel"
)

// IncidentRepository defines the persistence contract for incident
// aggregates.
type IncidentRepository interface {
	// Add persists a new incident aggregate to storage.
	Add(ctx context.Context, aggregate *incident.Incident) error

	// Update persists changes to an existing incident aggregate.
	Update(ctx context.Context, aggregate *incident.Incident) error

	// Get retrieves an incident aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*incident.Incident, error)

	// GetAllOpenForGuide retrieves the unresolved incidents filed against a
	// guide.
	GetAllOpenForGuide(ctx context.Context, guideID kernel.UUID) ([]*incident.Incident, error)
}
