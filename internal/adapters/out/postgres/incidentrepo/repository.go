package incidentrepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/incident"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormIncidentRepository implements IncidentRepository using GORM.
type GormIncidentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormIncidentRepository creates a new GORM incident repository.
func NewGormIncidentRepository(db *gorm.DB, tracker aggregateTracker) *GormIncidentRepository {
	return &GormIncidentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new incident to the database.
func (r *GormIncidentRepository) Add(ctx context.Context, aggregate *incident.Incident) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing incident to the database.
func (r *GormIncidentRepository) Update(ctx context.Context, aggregate *incident.Incident) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	// Select("*") writes zero values and keeps the evidence serializer in play.
	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&IncidentDTO{}).
		Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an incident by ID.
func (r *GormIncidentRepository) Get(ctx context.Context, id kernel.UUID) (*incident.Incident, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto IncidentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("incident", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllOpenForGuide retrieves the unresolved incidents filed against a guide.
func (r *GormIncidentRepository) GetAllOpenForGuide(ctx context.Context,
	guideID kernel.UUID) ([]*incident.Incident, error) {
	if err := guideID.Validate(); err != nil {
		return nil, err
	}

	var dtos []IncidentDTO
	err := r.db.WithContext(ctx).
		Where("guide_id = ? AND status NOT IN (?, ?)",
			guideID.Bytes(), incident.Resolved, incident.Closed).
		Order("reported_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	incidents := make([]*incident.Incident, 0, len(dtos))
	for _, dto := range dtos {
		restored, restoreErr := toDomain(dto)
		if restoreErr != nil {
			return nil, restoreErr
		}
		incidents = append(incidents, restored)
	}

	return incidents, nil
}
