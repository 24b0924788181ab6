package routerepo

import (
	"context"
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/pickup"
	"shipping/internal/core/domain/model/route"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRouteRepository implements RouteRepository using GORM. Route stops
// reference pickup requests, so restored routes load their pickups through
// the pickup repository bound to the same transaction.
type GormRouteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	pickups pickupLoader
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// pickupLoader loads the pickup requests referenced by route stops.
type pickupLoader interface {
	Get(ctx context.Context, id kernel.UUID) (*pickup.PickupRequest, error)
}

// NewGormRouteRepository creates a new GORM route repository.
func NewGormRouteRepository(db *gorm.DB, tracker aggregateTracker, pickups pickupLoader) *GormRouteRepository {
	return &GormRouteRepository{
		db:      db,
		tracker: tracker,
		pickups: pickups,
	}
}

// Add saves a new route to the database together with its stop list.
func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
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

// Update saves an existing route to the database. The stop list is rewritten
// from the aggregate state since optimization may reorder it.
func (r *GormRouteRepository) Update(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	columns := map[string]any{
		"operator_id":  dto.OperatorID,
		"date":         dto.Date,
		"start_lat":    dto.StartLat,
		"start_lon":    dto.StartLon,
		"status":       dto.Status,
		"started_at":   dto.StartedAt,
		"completed_at": dto.CompletedAt,
	}

	result := r.db.WithContext(ctx).Model(&RouteDTO{}).
		Where("id = ?", dto.ID).Updates(columns)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("route_id = ?", dto.ID).Delete(&RouteStopDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Stops) > 0 {
		if err := db.Create(&dto.Stops).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a route by ID, loading the pickups at each stop in order.
func (r *GormRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	err := r.preloaded(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", id.String())
		}
		return nil, err
	}

	return r.restore(ctx, dto)
}

// GetForOperatorDay retrieves the route planned for one operator on one day,
// if any.
func (r *GormRouteRepository) GetForOperatorDay(ctx context.Context,
	operatorID kernel.UUID, date time.Time) (*route.Route, error) {
	if err := operatorID.Validate(); err != nil {
		return nil, err
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var dto RouteDTO
	err := r.preloaded(ctx).
		Where("operator_id = ? AND date >= ? AND date < ?", operatorID.Bytes(), dayStart, dayEnd).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route for operator day",
				operatorID.String())
		}
		return nil, err
	}

	return r.restore(ctx, dto)
}

func (r *GormRouteRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Stops", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func (r *GormRouteRepository) restore(ctx context.Context, dto RouteDTO) (*route.Route, error) {
	pickups := make([]*pickup.PickupRequest, 0, len(dto.Stops))
	for _, stop := range dto.Stops {
		pickupID, err := kernel.UUIDFromBytes(stop.PickupID[:])
		if err != nil {
			return nil, err
		}

		request, err := r.pickups.Get(ctx, pickupID)
		if err != nil {
			return nil, err
		}
		pickups = append(pickups, request)
	}

	return toDomain(dto, pickups)
}
