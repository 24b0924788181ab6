// Package routerepo provides data transfer objects and mapping functions for route
// persistence. A route row carries the plan's lifecycle state; the ordered stop list
// lives in the route_stops table as references into pickup_requests.
package routerepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/pickup"
	"shipping/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO represents the database structure for persisting route aggregates.
type RouteDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OperatorID  uuid.UUID `gorm:"type:uuid;index:idx_routes_operator_day"`
	Date        time.Time `gorm:"index:idx_routes_operator_day"`
	StartLat    float64
	StartLon    float64
	Status      int
	StartedAt   *time.Time
	CompletedAt *time.Time

	Stops []RouteStopDTO `gorm:"foreignKey:RouteID;references:ID"`
}

// TableName specifies the database table name for route entities.
func (RouteDTO) TableName() string {
	return "routes"
}

// RouteStopDTO is one stop of a route, referencing the pickup collected there.
// Position preserves the optimized collection order.
type RouteStopDTO struct {
	RouteID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position int       `gorm:"primaryKey;autoIncrement:false"`
	PickupID uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for route stop entities.
func (RouteStopDTO) TableName() string {
	return "route_stops"
}

// fromDomain converts a route domain aggregate to its database representation,
// including the ordered stop list.
func fromDomain(aggregate *route.Route) RouteDTO {
	routeID := aggregate.ID().Bytes()
	start := aggregate.StartPoint()

	dto := RouteDTO{
		ID:          routeID,
		OperatorID:  aggregate.OperatorID().Bytes(),
		Date:        aggregate.Date(),
		StartLat:    start.Latitude(),
		StartLon:    start.Longitude(),
		Status:      int(aggregate.Status()),
		StartedAt:   aggregate.StartedAt(),
		CompletedAt: aggregate.CompletedAt(),
	}

	for i, request := range aggregate.Pickups() {
		dto.Stops = append(dto.Stops, RouteStopDTO{
			RouteID:  routeID,
			Position: i + 1,
			PickupID: request.ID().Bytes(),
		})
	}

	return dto
}

// toDomain converts a database DTO to a route domain aggregate. The pickups
// collected at each stop are loaded by the repository and passed in stop order.
func toDomain(dto RouteDTO, pickups []*pickup.PickupRequest) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	operatorID, err := kernel.UUIDFromBytes(dto.OperatorID[:])
	if err != nil {
		return nil, err
	}

	startPoint, err := kernel.NewGeoPoint(dto.StartLat, dto.StartLon)
	if err != nil {
		return nil, err
	}

	return route.RestoreRoute(id, operatorID, dto.Date, startPoint, pickups,
		route.Status(dto.Status), dto.StartedAt, dto.CompletedAt)
}
