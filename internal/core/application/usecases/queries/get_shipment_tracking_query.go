package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrGetShipmentTrackingQueryIsNotConstructed = errors.New(
	"GetShipmentTrackingQuery must be created via NewGetShipmentTrackingQuery constructor",
)

// GetShipmentTrackingQuery retrieves the public tracking view of a guide:
// its current status and the full movement history.
//
// Example:
//
//	query, err := NewGetShipmentTrackingQuery(guideID)
//	if err != nil {
//	    return err
//	}
//
//	tracking, err := NewGetShipmentTrackingQueryHandler(db).Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s: %d events\n", tracking.Status, len(tracking.Events))
type GetShipmentTrackingQuery struct {
	guideID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentTrackingQuery creates a query for one guide's tracking view.
func NewGetShipmentTrackingQuery(guideID kernel.UUID) (GetShipmentTrackingQuery, error) {
	if err := guideID.Validate(); err != nil {
		return GetShipmentTrackingQuery{}, errs.NewValueIsInvalidErrorWithCause("guideID", err)
	}

	return GetShipmentTrackingQuery{
		guideID: guideID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentTrackingQueryIsNotConstructed)
}

// GuideID returns the identifier of the guide being tracked.
func (q GetShipmentTrackingQuery) GuideID() kernel.UUID {
	return q.guideID
}

// TrackingEventResponse is one row of a shipment's movement history.
type TrackingEventResponse struct {
	Kind       string
	Location   string
	Note       string
	RecordedAt time.Time
}

// GetShipmentTrackingQueryResponse is the public tracking view of a guide.
type GetShipmentTrackingQueryResponse struct {
	GuideID  kernel.UUID
	Status   string
	Operator string
	Events   []TrackingEventResponse
}
