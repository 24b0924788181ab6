package guiderepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormGuideRepository implements GuideRepository using GORM.
type GormGuideRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormGuideRepository creates a new GORM guide repository.
func NewGormGuideRepository(db *gorm.DB, tracker aggregateTracker) *GormGuideRepository {
	return &GormGuideRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new guide to the database together with its tracking timeline.
func (r *GormGuideRepository) Add(ctx context.Context, aggregate *shipment.Guide) error {
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

// Update saves an existing guide to the database. The tracking timeline and
// retry cycle are append-only, so their child rows are rewritten from the
// aggregate state.
func (r *GormGuideRepository) Update(ctx context.Context, aggregate *shipment.Guide) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&GuideDTO{}).Where("id = ?", dto.ID).
		Omit("TrackingEvents", "DeliveryAttempts").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.replaceChildren(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormGuideRepository) replaceChildren(ctx context.Context, dto GuideDTO) error {
	db := r.db.WithContext(ctx)

	if err := db.Where("guide_id = ?", dto.ID).Delete(&TrackingEventDTO{}).Error; err != nil {
		return err
	}
	if len(dto.TrackingEvents) > 0 {
		if err := db.Create(&dto.TrackingEvents).Error; err != nil {
			return err
		}
	}

	if err := db.Where("guide_id = ?", dto.ID).Delete(&DeliveryAttemptDTO{}).Error; err != nil {
		return err
	}
	if len(dto.DeliveryAttempts) > 0 {
		if err := db.Create(&dto.DeliveryAttempts).Error; err != nil {
			return err
		}
	}

	return nil
}

// Get retrieves a guide by ID, including its tracking timeline and retry cycle.
func (r *GormGuideRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Guide, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto GuideDTO
	err := r.preloaded(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("guide", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the guide generated for an order, if any.
func (r *GormGuideRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*shipment.Guide, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto GuideDTO
	err := r.preloaded(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("guide for order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormGuideRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("TrackingEvents", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq")
		}).
		Preload("DeliveryAttempts", func(db *gorm.DB) *gorm.DB {
			return db.Order("number")
		})
}
