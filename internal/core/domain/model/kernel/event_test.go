package kernel_test

import (
	"sync"
	"testing"
	"time"

	"shipping/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEvent struct {
	name        string
	aggregateID kernel.UUID
	occurredAt  time.Time
}

func (e stubEvent) EventName() string        { return e.name }
func (e stubEvent) AggregateID() kernel.UUID { return e.aggregateID }
func (e stubEvent) OccurredAt() time.Time    { return e.occurredAt }

func TestEventRecorder_RecordAndDrain(t *testing.T) {
	t.Run("records_in_order_and_drains_once", func(t *testing.T) {
		var recorder kernel.EventRecorder
		id := kernel.NewUUID()

		recorder.RecordEvent(stubEvent{name: "order.quoted", aggregateID: id})
		recorder.RecordEvent(stubEvent{name: "order.confirmed", aggregateID: id})
		assert.Equal(t, 2, recorder.PendingEvents())

		drained := recorder.DrainEvents()

		require.Len(t, drained, 2)
		assert.Equal(t, "order.quoted", drained[0].EventName())
		assert.Equal(t, "order.confirmed", drained[1].EventName())
		assert.Equal(t, 0, recorder.PendingEvents())
		assert.Empty(t, recorder.DrainEvents())
	})

	t.Run("nil_events_are_ignored", func(t *testing.T) {
		var recorder kernel.EventRecorder

		recorder.RecordEvent(nil)

		assert.Equal(t, 0, recorder.PendingEvents())
	})
}

func TestEventRecorder_ConcurrentDrainIsConsumeOnce(t *testing.T) {
	var recorder kernel.EventRecorder
	id := kernel.NewUUID()

	const total = 1000
	for range total {
		recorder.RecordEvent(stubEvent{name: "pickup.scheduled", aggregateID: id})
	}

	// Many concurrent drains must partition the events without duplication.
	var (
		mu      sync.Mutex
		drained int
		wg      sync.WaitGroup
	)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			events := recorder.DrainEvents()
			mu.Lock()
			drained += len(events)
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, total, drained)
	assert.Equal(t, 0, recorder.PendingEvents())
}
