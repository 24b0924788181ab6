package shipment

import (
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrTrackingIsNotConstructed is returned when a Tracking log was not created
// through the NewTracking constructor.
var ErrTrackingIsNotConstructed = errors.New("Tracking must be created via NewTracking constructor")

// TrackingEvent is one immutable entry in a shipment's tracking log.
type TrackingEvent struct {
	kind       string
	location   string
	note       string
	recordedAt time.Time
}

// NewTrackingEvent creates a tracking entry. Kind is the stable name of the
// transition or waypoint being recorded and must not be empty.
func NewTrackingEvent(kind, location, note string, recordedAt time.Time) (TrackingEvent, error) {
	if kind == "" {
		return TrackingEvent{}, errs.NewValueIsRequiredError("tracking event kind is required")
	}
	return TrackingEvent{kind: kind, location: location, note: note, recordedAt: recordedAt}, nil
}

// Kind returns the stable name of the recorded transition or waypoint.
func (e TrackingEvent) Kind() string { return e.kind }

// Location returns the human-readable location the event was recorded at.
func (e TrackingEvent) Location() string { return e.location }

// Note returns the free-form note attached to the event.
func (e TrackingEvent) Note() string { return e.note }

// RecordedAt returns the event timestamp.
func (e TrackingEvent) RecordedAt() time.Time { return e.recordedAt }

// Tracking is the append-only event log bound 1:1 to a Guide. Entries are
// only ever appended, never rewritten, and timestamps must be monotonically
// non-decreasing.
type Tracking struct {
	guideID kernel.UUID
	events  []TrackingEvent
	guard   guard.ConstructorGuard
}

// NewTracking creates an empty tracking log for the given guide.
func NewTracking(guideID kernel.UUID) (*Tracking, error) {
	if err := guideID.Validate(); err != nil {
		return nil, err
	}

	return &Tracking{
		guideID: guideID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// RestoreTracking reconstructs a tracking log from persistence.
// Events must already be in non-decreasing timestamp order.
func RestoreTracking(guideID kernel.UUID, events []TrackingEvent) (*Tracking, error) {
	tracking, err := NewTracking(guideID)
	if err != nil {
		return nil, err
	}

	for _, event := range events {
		if err := tracking.Append(event); err != nil {
			return nil, err
		}
	}

	return tracking, nil
}

// Validate ensures the Tracking log was properly constructed.
func (t *Tracking) Validate() error {
	if t == nil {
		return ErrTrackingIsNotConstructed
	}
	return t.guard.Validate(ErrTrackingIsNotConstructed)
}

// GuideID returns the identifier of the guide this log belongs to.
func (t *Tracking) GuideID() kernel.UUID {
	return t.guideID
}

// Events returns a copy of the recorded entries in append order.
func (t *Tracking) Events() []TrackingEvent {
	events := make([]TrackingEvent, len(t.events))
	copy(events, t.events)
	return events
}

// CurrentLocation returns the location of the most recent entry, or the empty
// string for an empty log.
func (t *Tracking) CurrentLocation() string {
	for i := len(t.events) - 1; i >= 0; i-- {
		if t.events[i].location != "" {
			return t.events[i].location
		}
	}
	return ""
}

// Append adds an entry to the log. The entry's timestamp must not precede the
// last recorded entry's timestamp.
func (t *Tracking) Append(event TrackingEvent) error {
	if event.kind == "" {
		return errs.NewValueIsRequiredError("tracking event kind is required")
	}

	if n := len(t.events); n > 0 && event.recordedAt.Before(t.events[n-1].recordedAt) {
		return errs.NewValueIsInvalidErrorWithCause("tracking event timestamp is invalid",
			fmt.Errorf("%s precedes last recorded entry at %s",
				event.recordedAt.Format(time.RFC3339), t.events[n-1].recordedAt.Format(time.RFC3339)))
	}

	t.events = append(t.events, event)
	return nil
}
