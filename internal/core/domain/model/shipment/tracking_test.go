package shipment_test

import (
	"testing"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracking_AppendOnly(t *testing.T) {
	tracking, err := shipment.NewTracking(kernel.NewUUID())
	require.NoError(t, err)

	first, err := shipment.NewTrackingEvent("picked_up", "Bodega Norte", "", at(0))
	require.NoError(t, err)
	require.NoError(t, tracking.Append(first))

	second, err := shipment.NewTrackingEvent("in_transit", "CEDI Bogota", "", at(30))
	require.NoError(t, err)
	require.NoError(t, tracking.Append(second))

	// Returned slice is a copy; mutating it leaves the log intact.
	events := tracking.Events()
	require.Len(t, events, 2)
	events[0] = shipment.TrackingEvent{}
	assert.Equal(t, "picked_up", tracking.Events()[0].Kind())

	assert.Equal(t, "CEDI Bogota", tracking.CurrentLocation())
}

func TestTracking_RejectsTimeRegression(t *testing.T) {
	tracking, err := shipment.NewTracking(kernel.NewUUID())
	require.NoError(t, err)

	entry, err := shipment.NewTrackingEvent("picked_up", "Bodega Norte", "", at(30))
	require.NoError(t, err)
	require.NoError(t, tracking.Append(entry))

	stale, err := shipment.NewTrackingEvent("in_transit", "CEDI Bogota", "", at(10))
	require.NoError(t, err)
	require.Error(t, tracking.Append(stale))
	assert.Len(t, tracking.Events(), 1)
}

func TestTracking_CurrentLocationSkipsBlankEntries(t *testing.T) {
	tracking, err := shipment.NewTracking(kernel.NewUUID())
	require.NoError(t, err)
	assert.Empty(t, tracking.CurrentLocation())

	located, err := shipment.NewTrackingEvent("in_transit", "CEDI Medellin", "", at(0))
	require.NoError(t, err)
	require.NoError(t, tracking.Append(located))

	blank, err := shipment.NewTrackingEvent("out_for_delivery", "", "", at(10))
	require.NoError(t, err)
	require.NoError(t, tracking.Append(blank))

	assert.Equal(t, "CEDI Medellin", tracking.CurrentLocation())
}

func TestNewTrackingEvent_RequiresKind(t *testing.T) {
	_, err := shipment.NewTrackingEvent("", "somewhere", "", at(0))
	require.Error(t, err)
}
