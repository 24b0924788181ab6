package services

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/pickup"
	"shipping/internal/core/domain/model/route"
)

// RoutePlanner is the domain service assembling a day's pickups into an
// optimized route for one operator. The route aggregate enforces the
// operator and date invariants per pickup; the planner just wires assembly
// and optimization into one step.
type RoutePlanner struct{}

// NewRoutePlanner creates a new RoutePlanner instance.
func NewRoutePlanner() RoutePlanner {
	return RoutePlanner{}
}

// PlanRoute builds a route from the operator's departure point, adds every
// pickup, and optimizes the stop order. Any pickup belonging to another
// operator or another day fails the whole plan.
func (p RoutePlanner) PlanRoute(id kernel.UUID, operatorID kernel.UUID,
	date time.Time, startPoint kernel.GeoPoint,
	pickups []*pickup.PickupRequest, now time.Time) (*route.Route, error) {
	planned, err := route.NewRoute(id, operatorID, date, startPoint, now)
	if err != nil {
		return nil, err
	}

	for _, request := range pickups {
		if err := planned.AddPickup(request); err != nil {
			return nil, err
		}
	}

	if err := planned.Optimize(now); err != nil {
		return nil, err
	}
	return planned, nil
}
