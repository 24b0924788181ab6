package order_test

import (
	"testing"

	"shipping/internal/core/domain/model/order"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Unknown, "Unknown"},
		{order.Pending, "Pending"},
		{order.Quoted, "Quoted"},
		{order.Confirmed, "Confirmed"},
		{order.WithGuide, "WithGuide"},
		{order.Cancelled, "Cancelled"},
		{order.Status(99), "Unknown"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.status.String())
	}
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range []order.Status{order.Pending, order.Quoted, order.Confirmed, order.WithGuide, order.Cancelled} {
		require.NoError(t, s.Validate())
	}

	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(99).Validate())
}

// TestStatus_TransitionCompleteness verifies that for every (state, operation)
// pair not listed as valid, the transition returns InvalidStateTransition and
// no new state.
func TestStatus_TransitionCompleteness(t *testing.T) {
	all := []order.Status{order.Pending, order.Quoted, order.Confirmed, order.WithGuide, order.Cancelled}

	transitions := map[string]struct {
		apply func(order.Status) (order.Status, error)
		valid map[order.Status]order.Status
	}{
		"Quote": {
			apply: order.Status.Quote,
			valid: map[order.Status]order.Status{order.Pending: order.Quoted},
		},
		"Confirm": {
			apply: order.Status.Confirm,
			valid: map[order.Status]order.Status{order.Quoted: order.Confirmed},
		},
		"MarkWithGuide": {
			apply: order.Status.MarkWithGuide,
			valid: map[order.Status]order.Status{order.Confirmed: order.WithGuide},
		},
		"Cancel": {
			apply: order.Status.Cancel,
			valid: map[order.Status]order.Status{
				order.Pending:   order.Cancelled,
				order.Quoted:    order.Cancelled,
				order.Confirmed: order.Cancelled,
			},
		},
	}

	for name, tr := range transitions {
		t.Run(name, func(t *testing.T) {
			for _, from := range all {
				next, err := tr.apply(from)
				if expected, ok := tr.valid[from]; ok {
					require.NoError(t, err, "from %s", from)
					assert.Equal(t, expected, next)
				} else {
					require.ErrorIs(t, err, errs.ErrInvalidStateTransition, "from %s", from)
					assert.Equal(t, order.Status(0), next)
				}
			}
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.WithGuide.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Quoted.IsTerminal())
	assert.False(t, order.Confirmed.IsTerminal())
}
