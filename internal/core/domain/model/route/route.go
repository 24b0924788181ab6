package route

import (
	"errors"
	"sort"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/pickup"
	"shipping/internal/pkg/errs"
)

// ErrRouteIsNotConstructed is returned when a Route was not created through
// its constructors.
var ErrRouteIsNotConstructed = errors.New(
	"Route must be created via NewRoute or RestoreRoute constructor")

// Route is an ordered set of pickups for one operator on one day. It only
// accepts pickups assigned to its operator and scheduled on its date, and it
// cannot complete while any pickup is still active.
type Route struct {
	kernel.EventRecorder

	id          kernel.UUID
	operatorID  kernel.UUID
	date        time.Time
	startPoint  kernel.GeoPoint
	pickups     []*pickup.PickupRequest
	status      Status
	startedAt   *time.Time
	completedAt *time.Time

	isConstructed bool
}

// NewRoute creates an empty planned route starting from the operator's
// departure point and records RouteCreated.
func NewRoute(id kernel.UUID, operatorID kernel.UUID, date time.Time,
	startPoint kernel.GeoPoint, now time.Time) (*Route, error) {
	route := &Route{
		id:     id,
		status: Planned,

		isConstructed: true,
	}

	if err := errors.Join(
		route.setOperatorID(operatorID),
		route.setDate(date),
		route.setStartPoint(startPoint),
	); err != nil {
		return nil, err
	}

	route.RecordEvent(RouteCreated{
		routeID:    id,
		operatorID: operatorID,
		date:       route.date,
		occurredAt: now,
	})
	return route, nil
}

// RestoreRoute reconstructs a Route from persisted state without recording
// events.
func RestoreRoute(id kernel.UUID, operatorID kernel.UUID, date time.Time,
	startPoint kernel.GeoPoint, pickups []*pickup.PickupRequest, status Status,
	startedAt *time.Time, completedAt *time.Time) (*Route, error) {
	route := &Route{
		id:          id,
		status:      status,
		startedAt:   startedAt,
		completedAt: completedAt,

		isConstructed: true,
	}

	if err := errors.Join(
		route.setOperatorID(operatorID),
		route.setDate(date),
		route.setStartPoint(startPoint),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	for _, request := range pickups {
		if err := route.checkPickup(request); err != nil {
			return nil, err
		}
	}
	route.pickups = make([]*pickup.PickupRequest, len(pickups))
	copy(route.pickups, pickups)

	return route, nil
}

// Validate ensures the Route was properly constructed.
func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

// ID returns the route's identifier.
func (r *Route) ID() kernel.UUID { return r.id }

// OperatorID returns the operator the route belongs to.
func (r *Route) OperatorID() kernel.UUID { return r.operatorID }

// Date returns the collection day.
func (r *Route) Date() time.Time { return r.date }

// StartPoint returns the point the operator departs from.
func (r *Route) StartPoint() kernel.GeoPoint { return r.startPoint }

// Status returns the route's lifecycle status.
func (r *Route) Status() Status { return r.status }

// StartedAt returns when the route started, nil while planned.
func (r *Route) StartedAt() *time.Time { return r.startedAt }

// CompletedAt returns when the route completed, nil until then.
func (r *Route) CompletedAt() *time.Time { return r.completedAt }

// Pickups returns the route's pickups in their current collection order.
func (r *Route) Pickups() []*pickup.PickupRequest {
	pickups := make([]*pickup.PickupRequest, len(r.pickups))
	copy(pickups, r.pickups)
	return pickups
}

// AddPickup appends a pickup to the route. The pickup must be assigned to
// the route's operator and scheduled on the route's date.
func (r *Route) AddPickup(request *pickup.PickupRequest) error {
	if r.status != Planned {
		return errs.NewInvalidStateTransitionError("Route", r.status.String(), "pickup addition")
	}
	if err := r.checkPickup(request); err != nil {
		return err
	}
	for _, existing := range r.pickups {
		if existing.ID().IsEqual(request.ID()) {
			return errs.NewValueIsInvalidErrorWithCause("pickup",
				errors.New("pickup is already on the route"))
		}
	}

	r.pickups = append(r.pickups, request)
	return nil
}

// Optimize reorders the pickups for collection: by priority rank first
// (urgent before high before normal before low), ties broken by geodesic
// distance from the route's start point. The sort is stable, so equally
// ranked equidistant pickups keep their insertion order.
func (r *Route) Optimize(now time.Time) error {
	if r.status != Planned {
		return errs.NewInvalidStateTransitionError("Route", r.status.String(), "optimization")
	}

	sort.SliceStable(r.pickups, func(i, j int) bool {
		left, right := r.pickups[i], r.pickups[j]
		if left.Priority().Rank() != right.Priority().Rank() {
			return left.Priority().Rank() < right.Priority().Rank()
		}
		leftDistance, _ := left.Location().DistanceTo(r.startPoint)
		rightDistance, _ := right.Location().DistanceTo(r.startPoint)
		return leftDistance < rightDistance
	})

	order := make([]kernel.UUID, len(r.pickups))
	for i, request := range r.pickups {
		order[i] = request.ID()
	}
	r.RecordEvent(RouteOptimized{
		routeID:    r.id,
		stopOrder:  order,
		occurredAt: now,
	})
	return nil
}

// Start marks the route as being driven.
func (r *Route) Start(now time.Time) error {
	next, err := r.status.Start()
	if err != nil {
		return err
	}

	startedAt := now
	r.status = next
	r.startedAt = &startedAt
	r.RecordEvent(RouteStarted{
		routeID:    r.id,
		occurredAt: now,
	})
	return nil
}

// Complete terminates the route. Every pickup must have reached a terminal
// state; a route with any pickup still confirmed, in progress, or awaiting a
// new slot cannot complete.
func (r *Route) Complete(now time.Time) error {
	next, err := r.status.Complete()
	if err != nil {
		return err
	}
	for _, request := range r.pickups {
		if !request.Status().IsTerminal() {
			return errs.NewValueIsInvalidErrorWithCause("route",
				errors.New("pickup "+request.ID().String()+" is still "+request.Status().String()))
		}
	}

	completedAt := now
	r.status = next
	r.completedAt = &completedAt
	r.RecordEvent(RouteCompleted{
		routeID:    r.id,
		occurredAt: now,
	})
	return nil
}

func (r *Route) checkPickup(request *pickup.PickupRequest) error {
	if err := request.Validate(); err != nil {
		return err
	}
	if request.OperatorID() == nil || !request.OperatorID().IsEqual(r.operatorID) {
		return errs.NewValueIsInvalidErrorWithCause("pickup",
			errors.New("pickup is not assigned to the route's operator"))
	}
	if !sameDay(request.ScheduledDate(), r.date) {
		return errs.NewValueIsInvalidErrorWithCause("pickup",
			errors.New("pickup is not scheduled on the route's date"))
	}
	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func (r *Route) setOperatorID(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("operatorID", err)
	}
	r.operatorID = operatorID
	return nil
}

func (r *Route) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	year, month, day := date.Date()
	r.date = time.Date(year, month, day, 0, 0, 0, 0, date.Location())
	return nil
}

func (r *Route) setStartPoint(startPoint kernel.GeoPoint) error {
	if err := startPoint.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("startPoint", err)
	}
	r.startPoint = startPoint
	return nil
}
