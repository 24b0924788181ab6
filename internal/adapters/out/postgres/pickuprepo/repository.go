package pickuprepo

import (
	"context"
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/pickup"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPickupRepository implements PickupRepository using GORM.
type GormPickupRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPickupRepository creates a new GORM pickup repository.
func NewGormPickupRepository(db *gorm.DB, tracker aggregateTracker) *GormPickupRepository {
	return &GormPickupRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pickup request to the database.
func (r *GormPickupRepository) Add(ctx context.Context, aggregate *pickup.PickupRequest) error {
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

// Update saves an existing pickup request to the database. The attempt history
// is append-only, so its child rows are rewritten from the aggregate state.
func (r *GormPickupRepository) Update(ctx context.Context, aggregate *pickup.PickupRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	columns := map[string]any{
		"pickup_type":    dto.PickupType,
		"priority":       dto.Priority,
		"lat":            dto.Lat,
		"lon":            dto.Lon,
		"status":         dto.Status,
		"scheduled_date": dto.ScheduledDate,
		"time_slot_id":   dto.TimeSlotID,
		"operator_id":    dto.OperatorID,
		"point_id":       dto.PointID,
		"max_attempts":   dto.MaxAttempts,
	}

	result := r.db.WithContext(ctx).Model(&PickupRequestDTO{}).
		Where("id = ?", dto.ID).Updates(columns)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("pickup_id = ?", dto.ID).Delete(&PickupAttemptDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Attempts) > 0 {
		if err := db.Create(&dto.Attempts).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a pickup request by ID, including its attempt history.
func (r *GormPickupRepository) Get(ctx context.Context, id kernel.UUID) (*pickup.PickupRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PickupRequestDTO
	err := r.preloaded(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pickup request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForOperatorDay retrieves the pickups assigned to one operator on one
// day.
func (r *GormPickupRepository) GetAllForOperatorDay(ctx context.Context,
	operatorID kernel.UUID, date time.Time) ([]*pickup.PickupRequest, error) {
	if err := operatorID.Validate(); err != nil {
		return nil, err
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var dtos []PickupRequestDTO
	err := r.preloaded(ctx).
		Where("operator_id = ? AND scheduled_date >= ? AND scheduled_date < ?",
			operatorID.Bytes(), dayStart, dayEnd).
		Order("scheduled_date").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllOverdue retrieves confirmed or in-progress pickups whose scheduled
// date slipped past the SLA threshold as of now.
func (r *GormPickupRepository) GetAllOverdue(ctx context.Context, now time.Time) ([]*pickup.PickupRequest, error) {
	cutoff := now.Add(-pickup.OverdueThreshold)

	var dtos []PickupRequestDTO
	err := r.preloaded(ctx).
		Where("status IN (?, ?) AND scheduled_date < ?",
			pickup.Confirmed, pickup.InProgress, cutoff).
		Order("scheduled_date").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func (r *GormPickupRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Attempts", func(db *gorm.DB) *gorm.DB {
		return db.Order("number")
	})
}

func toDomainSlice(dtos []PickupRequestDTO) ([]*pickup.PickupRequest, error) {
	requests := make([]*pickup.PickupRequest, 0, len(dtos))
	for _, dto := range dtos {
		request, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, nil
}

// GormCapacityProvider implements CapacityProvider over the time_slots table.
type GormCapacityProvider struct {
	db *gorm.DB
}

// NewGormCapacityProvider creates a new GORM capacity provider.
func NewGormCapacityProvider(db *gorm.DB) *GormCapacityProvider {
	return &GormCapacityProvider{db: db}
}

// GetSlot retrieves a time slot by ID.
func (p *GormCapacityProvider) GetSlot(ctx context.Context, id kernel.UUID) (*pickup.TimeSlot, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TimeSlotDTO
	if err := p.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("time slot", id.String())
		}
		return nil, err
	}

	return slotToDomain(dto)
}

// NextAvailableSlot finds the first slot with free capacity for the operator
// strictly after the given time.
func (p *GormCapacityProvider) NextAvailableSlot(ctx context.Context,
	operatorID kernel.UUID, after time.Time) (*pickup.TimeSlot, error) {
	if err := operatorID.Validate(); err != nil {
		return nil, err
	}

	var dto TimeSlotDTO
	err := p.db.WithContext(ctx).
		Where("operator_id = ? AND start_at > ? AND current_pickups < max_pickups",
			operatorID.Bytes(), after).
		Order("start_at").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("available time slot",
				operatorID.String())
		}
		return nil, err
	}

	return slotToDomain(dto)
}

// SaveSlot persists a slot's reservation count, inserting the slot if it does
// not exist yet.
func (p *GormCapacityProvider) SaveSlot(ctx context.Context, slot *pickup.TimeSlot) error {
	if err := slot.Validate(); err != nil {
		return err
	}

	dto := slotFromDomain(slot)
	return p.db.WithContext(ctx).Save(&dto).Error
}
