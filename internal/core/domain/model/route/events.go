package route

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
)

// RouteCreated is recorded when a route is assembled for an operator-day.
type RouteCreated struct {
	routeID     kernel.UUID
	operatorID  kernel.UUID
	date        time.Time
	pickupCount int
	occurredAt  time.Time
}

// EventName returns the stable name of the transition.
func (e RouteCreated) EventName() string { return "route.created" }

// AggregateID returns the route's identifier.
func (e RouteCreated) AggregateID() kernel.UUID { return e.routeID }

// OccurredAt returns the time the route was created.
func (e RouteCreated) OccurredAt() time.Time { return e.occurredAt }

// OperatorID returns the operator the route belongs to.
func (e RouteCreated) OperatorID() kernel.UUID { return e.operatorID }

// Date returns the collection day.
func (e RouteCreated) Date() time.Time { return e.date }

// PickupCount returns how many pickups the route was created with.
func (e RouteCreated) PickupCount() int { return e.pickupCount }

// RouteOptimized is recorded when the route's stop order is recomputed.
type RouteOptimized struct {
	routeID    kernel.UUID
	stopOrder  []kernel.UUID
	occurredAt time.Time
}

// EventName returns the stable name of the transition.
func (e RouteOptimized) EventName() string { return "route.optimized" }

// AggregateID returns the route's identifier.
func (e RouteOptimized) AggregateID() kernel.UUID { return e.routeID }

// OccurredAt returns the time of optimization.
func (e RouteOptimized) OccurredAt() time.Time { return e.occurredAt }

// StopOrder returns the pickup ids in their optimized collection order.
func (e RouteOptimized) StopOrder() []kernel.UUID { return e.stopOrder }

// RouteStarted is recorded when the operator starts driving the route.
type RouteStarted struct {
	routeID    kernel.UUID
	occurredAt time.Time
}

// EventName returns the stable name of the transition.
func (e RouteStarted) EventName() string { return "route.started" }

// AggregateID returns the route's identifier.
func (e RouteStarted) AggregateID() kernel.UUID { return e.routeID }

// OccurredAt returns the time the route started.
func (e RouteStarted) OccurredAt() time.Time { return e.occurredAt }

// RouteCompleted is recorded when every pickup on the route is terminal.
type RouteCompleted struct {
	routeID    kernel.UUID
	occurredAt time.Time
}

// EventName returns the stable name of the transition.
func (e RouteCompleted) EventName() string { return "route.completed" }

// AggregateID returns the route's identifier.
func (e RouteCompleted) AggregateID() kernel.UUID { return e.routeID }

// OccurredAt returns the time the route completed.
func (e RouteCompleted) OccurredAt() time.Time { return e.occurredAt }
