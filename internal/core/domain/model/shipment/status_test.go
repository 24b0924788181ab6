package shipment_test

import (
	"testing"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	for _, s := range []shipment.Status{
		shipment.Generated, shipment.PickedUp, shipment.InTransit,
		shipment.OutForDelivery, shipment.Delivered, shipment.Returned,
		shipment.Cancelled,
	} {
		require.NoError(t, s.Validate(), s.String())
	}
	require.Error(t, shipment.Unknown.Validate())
	require.Error(t, shipment.Status(42).Validate())
}

func TestStatus_TransitionCompleteness(t *testing.T) {
	type op struct {
		name  string
		apply func(shipment.Status) (shipment.Status, error)
	}
	ops := []op{
		{"Pickup", shipment.Status.Pickup},
		{"Transit", shipment.Status.Transit},
		{"OutForDelivery", shipment.Status.OutForDelivery},
		{"Deliver", shipment.Status.Deliver},
		{"Return", shipment.Status.Return},
		{"Cancel", shipment.Status.Cancel},
	}

	allowed := map[shipment.Status]map[string]shipment.Status{
		shipment.Generated: {
			"Pickup": shipment.PickedUp,
			"Cancel": shipment.Cancelled,
		},
		shipment.PickedUp: {
			"Transit": shipment.InTransit,
			"Return":  shipment.Returned,
			"Cancel":  shipment.Cancelled,
		},
		shipment.InTransit: {
			"Transit":        shipment.InTransit,
			"OutForDelivery": shipment.OutForDelivery,
			"Return":         shipment.Returned,
			"Cancel":         shipment.Cancelled,
		},
		shipment.OutForDelivery: {
			"Deliver": shipment.Delivered,
			"Return":  shipment.Returned,
			"Cancel":  shipment.Cancelled,
		},
		shipment.Delivered: {},
		shipment.Returned:  {},
		shipment.Cancelled: {},
	}

	for from, ok := range allowed {
		for _, o := range ops {
			next, err := o.apply(from)
			if want, permitted := ok[o.name]; permitted {
				require.NoError(t, err, "%s from %s", o.name, from)
				assert.Equal(t, want, next)
			} else {
				require.ErrorIs(t, err, errs.ErrInvalidStateTransition,
					"%s from %s must be rejected", o.name, from)
			}
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, shipment.Delivered.IsTerminal())
	assert.True(t, shipment.Returned.IsTerminal())
	assert.True(t, shipment.Cancelled.IsTerminal())
	assert.False(t, shipment.Generated.IsTerminal())
	assert.False(t, shipment.InTransit.IsTerminal())
}
