package order_test

import (
	"testing"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	location, err := kernel.NewGeoPoint(4.6097, -74.0817)
	require.NoError(t, err)
	recipient, err := order.NewRecipient("Ana Gomez", "+57 300 000 0000", "Cra 7 # 12-34", location)
	require.NoError(t, err)
	dims, err := order.NewDimensions(30, 20, 10, 2.5)
	require.NoError(t, err)
	declared, err := kernel.MoneyFromFloat(150000)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		recipient, dims, declared, order.ServiceTypeStandard, testNow,
	)
	require.NoError(t, err)
	return o
}

func mustMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromFloat(amount)
	require.NoError(t, err)
	return m
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_pending_order_with_created_event", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.QuotedPrice())
		assert.Nil(t, o.GuideID())

		events := o.DrainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "order.created", events[0].EventName())
		assert.Equal(t, o.ID(), events[0].AggregateID())
	})

	t.Run("invalid_ids_are_rejected", func(t *testing.T) {
		location, _ := kernel.NewGeoPoint(1, 1)
		recipient, _ := order.NewRecipient("Ana", "", "Somewhere 1", location)
		dims, _ := order.NewDimensions(1, 1, 1, 1)
		declared := mustMoney(t, 10)

		_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(),
			recipient, dims, declared, order.ServiceTypeStandard, testNow)
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.UUID{},
			recipient, dims, declared, order.ServiceTypeStandard, testNow)
		require.Error(t, err)
	})

	t.Run("unconstructed_value_objects_are_rejected", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
			order.Recipient{}, order.Dimensions{}, kernel.Money{},
			order.ServiceTypeStandard, testNow)
		require.Error(t, err)
	})
}

func TestOrder_Quote(t *testing.T) {
	t.Run("pending_order_becomes_quoted", func(t *testing.T) {
		o := newTestOrder(t)
		o.DrainEvents()

		err := o.Quote(mustMoney(t, 25000), 3, testNow)

		require.NoError(t, err)
		assert.Equal(t, order.Quoted, o.Status())
		require.NotNil(t, o.QuotedPrice())
		assert.True(t, o.QuotedPrice().IsEqual(mustMoney(t, 25000)))
		assert.Equal(t, 3, o.EstimatedDeliveryDays())

		events := o.DrainEvents()
		require.Len(t, events, 1)
		quoted, ok := events[0].(order.OrderQuoted)
		require.True(t, ok)
		assert.Equal(t, order.Pending, quoted.From())
		assert.Equal(t, 3, quoted.DeliveryDays())
	})

	t.Run("non_positive_delivery_days_rejected", func(t *testing.T) {
		o := newTestOrder(t)
		o.DrainEvents()

		err := o.Quote(mustMoney(t, 25000), 0, testNow)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, 0, o.PendingEvents())
	})

	t.Run("quote_twice_is_invalid_transition", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Quote(mustMoney(t, 25000), 3, testNow))
		o.DrainEvents()

		err := o.Quote(mustMoney(t, 30000), 2, testNow)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.True(t, o.QuotedPrice().IsEqual(mustMoney(t, 25000)))
		assert.Equal(t, 0, o.PendingEvents())
	})
}

func TestOrder_Confirm(t *testing.T) {
	t.Run("quoted_order_becomes_confirmed", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Quote(mustMoney(t, 25000), 3, testNow))
		o.DrainEvents()

		err := o.Confirm(testNow)

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, o.Status())

		events := o.DrainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "order.confirmed", events[0].EventName())
	})

	t.Run("confirming_pending_order_fails", func(t *testing.T) {
		o := newTestOrder(t)
		o.DrainEvents()

		err := o.Confirm(testNow)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, 0, o.PendingEvents())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("cancellable_from_every_pre_guide_state", func(t *testing.T) {
		prepare := map[string]func(t *testing.T) *order.Order{
			"pending": func(t *testing.T) *order.Order {
				return newTestOrder(t)
			},
			"quoted": func(t *testing.T) *order.Order {
				o := newTestOrder(t)
				require.NoError(t, o.Quote(mustMoney(t, 25000), 3, testNow))
				return o
			},
			"confirmed": func(t *testing.T) *order.Order {
				o := newTestOrder(t)
				require.NoError(t, o.Quote(mustMoney(t, 25000), 3, testNow))
				require.NoError(t, o.Confirm(testNow))
				return o
			},
		}

		for name, build := range prepare {
			t.Run(name, func(t *testing.T) {
				o := build(t)
				o.DrainEvents()

				require.NoError(t, o.Cancel("customer request", testNow))
				assert.Equal(t, order.Cancelled, o.Status())

				events := o.DrainEvents()
				require.Len(t, events, 1)
				cancelled, ok := events[0].(order.OrderCancelled)
				require.True(t, ok)
				assert.Equal(t, "customer request", cancelled.Reason())
			})
		}
	})

	t.Run("cancel_after_guide_fails", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Quote(mustMoney(t, 25000), 3, testNow))
		require.NoError(t, o.Confirm(testNow))
		require.NoError(t, o.MarkWithGuide(kernel.NewUUID(), testNow))
		o.DrainEvents()

		err := o.Cancel("too late", testNow)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Equal(t, order.WithGuide, o.Status())
		assert.Equal(t, 0, o.PendingEvents())
	})

	t.Run("cancel_twice_fails", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel("first", testNow))

		err := o.Cancel("second", testNow)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})
}

func TestOrder_MarkWithGuide(t *testing.T) {
	t.Run("confirmed_order_becomes_with_guide", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Quote(mustMoney(t, 25000), 3, testNow))
		require.NoError(t, o.Confirm(testNow))
		o.DrainEvents()

		guideID := kernel.NewUUID()
		err := o.MarkWithGuide(guideID, testNow)

		require.NoError(t, err)
		assert.Equal(t, order.WithGuide, o.Status())
		require.NotNil(t, o.GuideID())
		assert.True(t, o.GuideID().IsEqual(guideID))

		events := o.DrainEvents()
		require.Len(t, events, 1)
		handed, ok := events[0].(order.OrderHandedToLogistics)
		require.True(t, ok)
		assert.True(t, handed.GuideID().IsEqual(guideID))
	})

	t.Run("requires_confirmed_status", func(t *testing.T) {
		o := newTestOrder(t)
		o.DrainEvents()

		err := o.MarkWithGuide(kernel.NewUUID(), testNow)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Nil(t, o.GuideID())
	})

	t.Run("invalid_guide_id_rejected", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Quote(mustMoney(t, 25000), 3, testNow))
		require.NoError(t, o.Confirm(testNow))

		err := o.MarkWithGuide(kernel.UUID{}, testNow)

		require.Error(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
	})
}

// TestOrder_FullLifecycle exercises the end-to-end happy path:
// Pending -> quote -> Quoted -> confirm -> Confirmed -> guide -> WithGuide,
// after which cancellation is rejected.
func TestOrder_FullLifecycle(t *testing.T) {
	o := newTestOrder(t)

	require.NoError(t, o.Quote(mustMoney(t, 25000), 3, testNow))
	assert.Equal(t, order.Quoted, o.Status())
	assert.True(t, o.QuotedPrice().IsEqual(mustMoney(t, 25000)))

	require.NoError(t, o.Confirm(testNow))
	assert.Equal(t, order.Confirmed, o.Status())

	require.NoError(t, o.MarkWithGuide(kernel.NewUUID(), testNow))
	assert.Equal(t, order.WithGuide, o.Status())

	err := o.Cancel("change of plans", testNow)
	require.ErrorIs(t, err, errs.ErrInvalidStateTransition)

	events := o.DrainEvents()
	names := make([]string, 0, len(events))
	for _, e := range events {
		names = append(names, e.EventName())
	}
	assert.Equal(t, []string{
		"order.created",
		"order.quoted",
		"order.confirmed",
		"order.handed_to_logistics",
	}, names)
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_quoted_order_without_events", func(t *testing.T) {
		location, _ := kernel.NewGeoPoint(4.6097, -74.0817)
		recipient, _ := order.NewRecipient("Ana Gomez", "", "Cra 7 # 12-34", location)
		dims, _ := order.NewDimensions(30, 20, 10, 2.5)
		declared := mustMoney(t, 150000)
		price := mustMoney(t, 25000)

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			recipient, dims, declared, order.ServiceTypeExpress,
			order.Quoted, &price, 3, nil,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Quoted, o.Status())
		assert.Equal(t, 0, o.PendingEvents())
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		location, _ := kernel.NewGeoPoint(4.6097, -74.0817)
		recipient, _ := order.NewRecipient("Ana Gomez", "", "Cra 7 # 12-34", location)
		dims, _ := order.NewDimensions(30, 20, 10, 2.5)

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			recipient, dims, mustMoney(t, 1), order.ServiceTypeStandard,
			order.Unknown, nil, 0, nil,
		)

		require.Error(t, err)
	})

	t.Run("rejects_delivery_days_without_price", func(t *testing.T) {
		location, _ := kernel.NewGeoPoint(4.6097, -74.0817)
		recipient, _ := order.NewRecipient("Ana Gomez", "", "Cra 7 # 12-34", location)
		dims, _ := order.NewDimensions(30, 20, 10, 2.5)

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			recipient, dims, mustMoney(t, 1), order.ServiceTypeStandard,
			order.Pending, nil, 3, nil,
		)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil_order_is_invalid", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
