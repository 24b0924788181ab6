package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrGetRouteSummaryQueryIsNotConstructed = errors.New(
	"GetRouteSummaryQuery must be created via NewGetRouteSummaryQuery constructor",
)

// GetRouteSummaryQuery retrieves a route's progress: how many stops it has
// and how many reached a terminal state.
type GetRouteSummaryQuery struct {
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRouteSummaryQuery creates a query for one route's progress view.
func NewGetRouteSummaryQuery(routeID kernel.UUID) (GetRouteSummaryQuery, error) {
	if err := routeID.Validate(); err != nil {
		return GetRouteSummaryQuery{}, errs.NewValueIsInvalidErrorWithCause("routeID", err)
	}

	return GetRouteSummaryQuery{
		routeID: routeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRouteSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteSummaryQueryIsNotConstructed)
}

// RouteID returns the identifier of the summarized route.
func (q GetRouteSummaryQuery) RouteID() kernel.UUID {
	return q.routeID
}

// GetRouteSummaryQueryResponse is the progress view of one route.
type GetRouteSummaryQueryResponse struct {
	RouteID        kernel.UUID
	OperatorID     kernel.UUID
	Date           time.Time
	Status         string
	StopCount      int
	CompletedStops int
	FailedStops    int
	PendingStops   int
}
