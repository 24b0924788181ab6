package pickup_test

import (
	"testing"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/pickup"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func at(minutes int) time.Time {
	return testNow.Add(time.Duration(minutes) * time.Minute)
}

func testLocation(t *testing.T) kernel.GeoPoint {
	t.Helper()

	location, err := kernel.NewGeoPoint(4.6097, -74.0817)
	require.NoError(t, err)
	return location
}

func newTestRequest(t *testing.T, pickupType pickup.Type) *pickup.PickupRequest {
	t.Helper()

	request, err := pickup.NewPickupRequest(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		pickupType, pickup.PriorityNormal, testLocation(t), testNow,
	)
	require.NoError(t, err)
	return request
}

// confirmedRequest schedules the request and drains creation events.
func confirmedRequest(t *testing.T) (*pickup.PickupRequest, kernel.UUID) {
	t.Helper()

	request := newTestRequest(t, pickup.DirectPickup)
	operatorID := kernel.NewUUID()
	require.NoError(t, request.Schedule(at(24*60), kernel.NewUUID(), operatorID, testNow))
	request.DrainEvents()
	return request, operatorID
}

func TestNewPickupRequest(t *testing.T) {
	t.Run("starts_scheduled_with_event", func(t *testing.T) {
		request := newTestRequest(t, pickup.DirectPickup)

		assert.Equal(t, pickup.Scheduled, request.Status())
		assert.Nil(t, request.TimeSlotID())
		assert.Nil(t, request.OperatorID())
		assert.Equal(t, pickup.DefaultMaxAttempts, request.MaxAttempts())

		events := request.DrainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "pickup.requested", events[0].EventName())
	})

	t.Run("rejects_invalid_type_and_priority", func(t *testing.T) {
		_, err := pickup.NewPickupRequest(kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), pickup.TypeUnknown, pickup.PriorityNormal, testLocation(t), testNow)
		require.Error(t, err)

		_, err = pickup.NewPickupRequest(kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), pickup.DirectPickup, pickup.PriorityUnknown, testLocation(t), testNow)
		require.Error(t, err)

		_, err = pickup.NewPickupRequest(kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), pickup.DirectPickup, pickup.PriorityNormal, kernel.GeoPoint{}, testNow)
		require.Error(t, err)
	})
}

func TestPickupRequest_Schedule(t *testing.T) {
	t.Run("confirms_slot_and_operator", func(t *testing.T) {
		request := newTestRequest(t, pickup.DirectPickup)
		request.DrainEvents()

		slotID := kernel.NewUUID()
		operatorID := kernel.NewUUID()
		date := at(24 * 60)
		require.NoError(t, request.Schedule(date, slotID, operatorID, testNow))

		assert.Equal(t, pickup.Confirmed, request.Status())
		require.NotNil(t, request.TimeSlotID())
		assert.True(t, request.TimeSlotID().IsEqual(slotID))
		require.NotNil(t, request.OperatorID())
		assert.True(t, request.OperatorID().IsEqual(operatorID))
		assert.Equal(t, date, request.ScheduledDate())

		events := request.DrainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "pickup.scheduled", events[0].EventName())
	})

	t.Run("rejected_when_already_confirmed", func(t *testing.T) {
		request, _ := confirmedRequest(t)
		err := request.Schedule(at(48*60), kernel.NewUUID(), kernel.NewUUID(), testNow)
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})
}

func TestPickupRequest_AssignToPoint(t *testing.T) {
	t.Run("confirms_point_delivery_without_slot", func(t *testing.T) {
		request := newTestRequest(t, pickup.PointDelivery)
		request.DrainEvents()

		pointID := kernel.NewUUID()
		require.NoError(t, request.AssignToPoint(pointID, testNow))

		assert.Equal(t, pickup.Confirmed, request.Status())
		require.NotNil(t, request.PointID())
		assert.True(t, request.PointID().IsEqual(pointID))
		assert.Nil(t, request.TimeSlotID())

		events := request.DrainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "pickup.assigned_to_point", events[0].EventName())
	})

	t.Run("rejected_for_direct_pickup", func(t *testing.T) {
		request := newTestRequest(t, pickup.DirectPickup)
		err := request.AssignToPoint(kernel.NewUUID(), testNow)
		require.ErrorIs(t, err, errs.ErrInvalidPickupType)
	})
}

func TestPickupRequest_CompleteFlow(t *testing.T) {
	request, operatorID := confirmedRequest(t)

	require.NoError(t, request.Start(operatorID, at(24*60)))
	require.NoError(t, request.Complete(operatorID, "handed over at gate", []string{"photo.jpg"}, at(24*60+15)))

	assert.Equal(t, pickup.Completed, request.Status())
	require.Len(t, request.Attempts(), 1)
	assert.True(t, request.Attempts()[0].Succeeded())

	events := request.DrainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, "pickup.started", events[0].EventName())
	assert.Equal(t, "pickup.completed", events[1].EventName())
}

func TestPickupRequest_Start(t *testing.T) {
	t.Run("rejects_mismatched_operator", func(t *testing.T) {
		request, _ := confirmedRequest(t)
		err := request.Start(kernel.NewUUID(), at(24*60))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, pickup.Confirmed, request.Status())
	})

	t.Run("requires_confirmed_state", func(t *testing.T) {
		request := newTestRequest(t, pickup.DirectPickup)
		err := request.Start(kernel.NewUUID(), testNow)
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})
}

// Failure handling: two failures leave the request reschedulable, the third
// fails it terminally, and a fourth attempt reports exhaustion.
func TestPickupRequest_AttemptBound(t *testing.T) {
	request, operatorID := confirmedRequest(t)

	for i := 1; i <= 2; i++ {
		require.NoError(t, request.Start(operatorID, at(i*10)))
		attempt, err := request.Fail(operatorID, "customer_not_available", "", nil, at(i*10+5))
		require.NoError(t, err)
		assert.Equal(t, i, attempt.Number())
		assert.Equal(t, pickup.Rescheduled, request.Status())
		assert.True(t, request.CanBeRescheduled())

		require.NoError(t, request.Schedule(at((i+1)*24*60), kernel.NewUUID(), operatorID, at(i*10+6)))
	}

	require.NoError(t, request.Start(operatorID, at(30)))
	_, err := request.Fail(operatorID, "address_not_found", "", nil, at(35))
	require.NoError(t, err)

	assert.Equal(t, pickup.Failed, request.Status())
	assert.False(t, request.CanBeRescheduled())

	_, err = request.Fail(operatorID, "customer_not_available", "", nil, at(40))
	require.ErrorIs(t, err, errs.ErrRetryExhausted)
	assert.Equal(t, 3, request.AttemptCount())

	err = request.Reschedule(at(4*24*60), kernel.NewUUID(), "one more try", false, at(45))
	require.ErrorIs(t, err, errs.ErrRetryExhausted)

	events := request.DrainEvents()
	var failed []pickup.PickupFailed
	for _, event := range events {
		if f, ok := event.(pickup.PickupFailed); ok {
			failed = append(failed, f)
		}
	}
	require.Len(t, failed, 3)
	assert.False(t, failed[0].Terminal())
	assert.False(t, failed[1].Terminal())
	assert.True(t, failed[2].Terminal())
}

func TestPickupRequest_Fail(t *testing.T) {
	t.Run("requires_reason", func(t *testing.T) {
		request, operatorID := confirmedRequest(t)
		require.NoError(t, request.Start(operatorID, at(10)))

		_, err := request.Fail(operatorID, "", "", nil, at(15))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, 0, request.AttemptCount())
	})

	t.Run("requires_in_progress", func(t *testing.T) {
		request, operatorID := confirmedRequest(t)
		_, err := request.Fail(operatorID, "customer_not_available", "", nil, at(10))
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})
}

func TestPickupRequest_Reschedule(t *testing.T) {
	request, operatorID := confirmedRequest(t)
	require.NoError(t, request.Start(operatorID, at(10)))
	_, err := request.Fail(operatorID, "traffic_delay", "", nil, at(15))
	require.NoError(t, err)
	request.DrainEvents()

	newSlot := kernel.NewUUID()
	newDate := at(2 * 24 * 60)
	require.NoError(t, request.Reschedule(newDate, newSlot, "traffic_delay", true, at(20)))

	assert.Equal(t, pickup.Confirmed, request.Status())
	assert.Equal(t, newDate, request.ScheduledDate())
	assert.True(t, request.TimeSlotID().IsEqual(newSlot))

	events := request.DrainEvents()
	require.Len(t, events, 1)
	rescheduled, ok := events[0].(pickup.PickupRescheduled)
	require.True(t, ok)
	assert.True(t, rescheduled.Automatic())
}

func TestPickupRequest_Cancel(t *testing.T) {
	t.Run("cancels_confirmed_request", func(t *testing.T) {
		request, _ := confirmedRequest(t)

		require.NoError(t, request.Cancel("customer moved", "customer", at(10)))
		assert.Equal(t, pickup.Cancelled, request.Status())
		assert.False(t, request.CanBeRescheduled())
	})

	t.Run("rejected_after_completion", func(t *testing.T) {
		request, operatorID := confirmedRequest(t)
		require.NoError(t, request.Start(operatorID, at(10)))
		require.NoError(t, request.Complete(operatorID, "", nil, at(15)))

		err := request.Cancel("changed my mind", "customer", at(20))
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})

	t.Run("rejected_when_already_cancelled", func(t *testing.T) {
		request, _ := confirmedRequest(t)
		require.NoError(t, request.Cancel("duplicate", "ops", at(10)))
		err := request.Cancel("again", "ops", at(11))
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})
}

func TestPickupRequest_IsOverdue(t *testing.T) {
	request, operatorID := confirmedRequest(t)
	scheduled := request.ScheduledDate()

	assert.False(t, request.IsOverdue(scheduled.Add(time.Hour)))
	assert.True(t, request.IsOverdue(scheduled.Add(2*time.Hour+time.Minute)))

	require.NoError(t, request.Start(operatorID, scheduled))
	assert.True(t, request.IsOverdue(scheduled.Add(3*time.Hour)))

	require.NoError(t, request.Complete(operatorID, "", nil, scheduled.Add(3*time.Hour)))
	assert.False(t, request.IsOverdue(scheduled.Add(4*time.Hour)), "terminal states are never overdue")
}

func TestRestorePickupRequest(t *testing.T) {
	slotID := kernel.NewUUID()
	operatorID := kernel.NewUUID()
	attempt, err := pickup.RestoreAttempt(1, operatorID, false, "customer_not_available", "", nil, testNow)
	require.NoError(t, err)

	request, err := pickup.RestorePickupRequest(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		pickup.DirectPickup, pickup.PriorityHigh, testLocation(t), pickup.Rescheduled,
		at(24*60), &slotID, &operatorID, nil,
		[]pickup.Attempt{attempt}, pickup.DefaultMaxAttempts,
	)
	require.NoError(t, err)

	assert.Equal(t, 1, request.AttemptCount())
	assert.True(t, request.CanBeRescheduled())
	assert.Empty(t, request.DrainEvents())

	_, err = pickup.RestorePickupRequest(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		pickup.DirectPickup, pickup.PriorityHigh, testLocation(t), pickup.Rescheduled,
		at(24*60), nil, nil, nil,
		[]pickup.Attempt{attempt, attempt, attempt, attempt}, 3,
	)
	require.Error(t, err)
}
