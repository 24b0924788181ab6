// Package incidentrepo provides data transfer objects and mapping functions for
// incident persistence.
package incidentrepo

import (
	"time"

	"shipping/internal/core/domain/model/incident"
	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// IncidentDTO represents the database structure for persisting incident
// aggregates.
type IncidentDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	GuideID     uuid.UUID `gorm:"type:uuid;index"`
	Kind        int
	Severity    int
	Status      int `gorm:"index"`
	Description string
	Evidence    []string `gorm:"serializer:json;type:jsonb"`
	ReportedAt  time.Time
	ResolvedAt  *time.Time
	Resolution  string
}

// TableName specifies the database table name for incident entities.
func (IncidentDTO) TableName() string {
	return "incidents"
}

// fromDomain converts an incident domain aggregate to its database
// representation.
func fromDomain(aggregate *incident.Incident) IncidentDTO {
	return IncidentDTO{
		ID:          aggregate.ID().Bytes(),
		GuideID:     aggregate.GuideID().Bytes(),
		Kind:        int(aggregate.Kind()),
		Severity:    int(aggregate.Severity()),
		Status:      int(aggregate.Status()),
		Description: aggregate.Description(),
		Evidence:    aggregate.Evidence(),
		ReportedAt:  aggregate.ReportedAt(),
		ResolvedAt:  aggregate.ResolvedAt(),
		Resolution:  aggregate.Resolution(),
	}
}

// toDomain converts a database DTO to an incident domain aggregate using
// RestoreIncident.
func toDomain(dto IncidentDTO) (*incident.Incident, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	guideID, err := kernel.UUIDFromBytes(dto.GuideID[:])
	if err != nil {
		return nil, err
	}

	return incident.RestoreIncident(id, guideID, incident.Type(dto.Kind),
		incident.Severity(dto.Severity), incident.Status(dto.Status),
		dto.Description, dto.Evidence, dto.ReportedAt, dto.ResolvedAt, dto.Resolution)
}
