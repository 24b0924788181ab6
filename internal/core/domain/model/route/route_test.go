package route_test

import (
	"testing"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/pickup"
	"shipping/internal/core/domain/model/route"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testNow   = time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)
	routeDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
)

func mustGeoPoint(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()

	point, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return point
}

// routePickup builds a confirmed pickup for the given operator, scheduled on
// the route's date at the given coordinates.
func routePickup(t *testing.T, operatorID kernel.UUID, priority pickup.Priority,
	lat, lon float64) *pickup.PickupRequest {
	t.Helper()

	request, err := pickup.NewPickupRequest(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		pickup.DirectPickup, priority, mustGeoPoint(t, lat, lon), testNow,
	)
	require.NoError(t, err)
	require.NoError(t, request.Schedule(
		routeDate.Add(9*time.Hour), kernel.NewUUID(), operatorID, testNow))
	request.DrainEvents()
	return request
}

func newTestRoute(t *testing.T, operatorID kernel.UUID) *route.Route {
	t.Helper()

	r, err := route.NewRoute(kernel.NewUUID(), operatorID, routeDate,
		mustGeoPoint(t, 4.6000, -74.0800), testNow)
	require.NoError(t, err)
	return r
}

func TestNewRoute(t *testing.T) {
	operatorID := kernel.NewUUID()
	r := newTestRoute(t, operatorID)

	assert.Equal(t, route.Planned, r.Status())
	assert.Empty(t, r.Pickups())
	assert.Nil(t, r.StartedAt())

	events := r.DrainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "route.created", events[0].EventName())
}

func TestRoute_AddPickup(t *testing.T) {
	operatorID := kernel.NewUUID()

	t.Run("accepts_matching_pickup", func(t *testing.T) {
		r := newTestRoute(t, operatorID)
		request := routePickup(t, operatorID, pickup.PriorityNormal, 4.61, -74.08)

		require.NoError(t, r.AddPickup(request))
		require.Len(t, r.Pickups(), 1)
	})

	t.Run("rejects_other_operator", func(t *testing.T) {
		r := newTestRoute(t, operatorID)
		request := routePickup(t, kernel.NewUUID(), pickup.PriorityNormal, 4.61, -74.08)

		err := r.AddPickup(request)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_other_day", func(t *testing.T) {
		r := newTestRoute(t, operatorID)

		late, err := pickup.NewPickupRequest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			pickup.DirectPickup, pickup.PriorityNormal, mustGeoPoint(t, 4.61, -74.08), testNow,
		)
		require.NoError(t, err)
		require.NoError(t, late.Schedule(routeDate.AddDate(0, 0, 1), kernel.NewUUID(), operatorID, testNow))

		require.ErrorIs(t, r.AddPickup(late), errs.ErrValueIsInvalid)
	})

	t.Run("rejects_duplicates_and_unassigned", func(t *testing.T) {
		r := newTestRoute(t, operatorID)
		request := routePickup(t, operatorID, pickup.PriorityNormal, 4.61, -74.08)

		require.NoError(t, r.AddPickup(request))
		require.ErrorIs(t, r.AddPickup(request), errs.ErrValueIsInvalid)

		unscheduled, err := pickup.NewPickupRequest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			pickup.DirectPickup, pickup.PriorityNormal, mustGeoPoint(t, 4.61, -74.08), testNow,
		)
		require.NoError(t, err)
		require.ErrorIs(t, r.AddPickup(unscheduled), errs.ErrValueIsInvalid)
	})

	t.Run("rejected_once_started", func(t *testing.T) {
		r := newTestRoute(t, operatorID)
		require.NoError(t, r.Start(testNow))

		request := routePickup(t, operatorID, pickup.PriorityNormal, 4.61, -74.08)
		require.ErrorIs(t, r.AddPickup(request), errs.ErrInvalidStateTransition)
	})
}

// Optimization sorts by priority rank, ties broken by distance from the
// route's start point. The low-priority pickup next door still collects
// after the urgent one across town.
func TestRoute_Optimize(t *testing.T) {
	operatorID := kernel.NewUUID()
	r := newTestRoute(t, operatorID)

	lowNear := routePickup(t, operatorID, pickup.PriorityLow, 4.6010, -74.0810)
	urgentFar := routePickup(t, operatorID, pickup.PriorityUrgent, 4.9000, -74.3000)
	normalFar := routePickup(t, operatorID, pickup.PriorityNormal, 4.8000, -74.2000)
	normalNear := routePickup(t, operatorID, pickup.PriorityNormal, 4.6020, -74.0820)

	for _, request := range []*pickup.PickupRequest{lowNear, urgentFar, normalFar, normalNear} {
		require.NoError(t, r.AddPickup(request))
	}
	r.DrainEvents()

	require.NoError(t, r.Optimize(testNow))

	ordered := r.Pickups()
	require.Len(t, ordered, 4)
	assert.True(t, ordered[0].ID().IsEqual(urgentFar.ID()))
	assert.True(t, ordered[1].ID().IsEqual(normalNear.ID()), "nearer normal pickup collects first")
	assert.True(t, ordered[2].ID().IsEqual(normalFar.ID()))
	assert.True(t, ordered[3].ID().IsEqual(lowNear.ID()))

	events := r.DrainEvents()
	require.Len(t, events, 1)
	optimized, ok := events[0].(route.RouteOptimized)
	require.True(t, ok)
	require.Len(t, optimized.StopOrder(), 4)
	assert.True(t, optimized.StopOrder()[0].IsEqual(urgentFar.ID()))
}

func TestRoute_Lifecycle(t *testing.T) {
	operatorID := kernel.NewUUID()

	t.Run("completes_when_all_pickups_terminal", func(t *testing.T) {
		r := newTestRoute(t, operatorID)
		done := routePickup(t, operatorID, pickup.PriorityNormal, 4.61, -74.08)
		failed := routePickup(t, operatorID, pickup.PriorityNormal, 4.62, -74.09)
		require.NoError(t, r.AddPickup(done))
		require.NoError(t, r.AddPickup(failed))
		r.DrainEvents()

		require.NoError(t, r.Start(testNow.Add(time.Hour)))
		assert.NotNil(t, r.StartedAt())

		require.NoError(t, done.Start(operatorID, testNow.Add(2*time.Hour)))
		require.NoError(t, done.Complete(operatorID, "", nil, testNow.Add(2*time.Hour)))
		require.NoError(t, failed.Cancel("customer away all week", "ops", testNow.Add(3*time.Hour)))

		require.NoError(t, r.Complete(testNow.Add(4*time.Hour)))
		assert.Equal(t, route.Completed, r.Status())

		events := r.DrainEvents()
		require.Len(t, events, 2)
		assert.Equal(t, "route.started", events[0].EventName())
		assert.Equal(t, "route.completed", events[1].EventName())
	})

	t.Run("cannot_complete_with_active_pickup", func(t *testing.T) {
		r := newTestRoute(t, operatorID)
		pending := routePickup(t, operatorID, pickup.PriorityNormal, 4.61, -74.08)
		require.NoError(t, r.AddPickup(pending))
		require.NoError(t, r.Start(testNow))

		err := r.Complete(testNow.Add(time.Hour))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, route.InProgress, r.Status())
	})

	t.Run("start_requires_planned", func(t *testing.T) {
		r := newTestRoute(t, operatorID)
		require.NoError(t, r.Start(testNow))
		require.ErrorIs(t, r.Start(testNow), errs.ErrInvalidStateTransition)
		require.ErrorIs(t, r.Optimize(testNow), errs.ErrInvalidStateTransition)
	})

	t.Run("complete_requires_in_progress", func(t *testing.T) {
		r := newTestRoute(t, operatorID)
		require.ErrorIs(t, r.Complete(testNow), errs.ErrInvalidStateTransition)
	})
}
