package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrGetPickupSummaryQueryIsNotConstructed = errors.New(
	"GetPickupSummaryQuery must be created via NewGetPickupSummaryQuery constructor",
)

// GetPickupSummaryQuery aggregates one operator's pickups for one day into
// per-status counts.
type GetPickupSummaryQuery struct {
	operatorID kernel.UUID
	date       time.Time

	guard guard.ConstructorGuard
}

// NewGetPickupSummaryQuery creates a query for an operator's daily summary.
func NewGetPickupSummaryQuery(operatorID kernel.UUID, date time.Time) (GetPickupSummaryQuery, error) {
	if err := operatorID.Validate(); err != nil {
		return GetPickupSummaryQuery{}, errs.NewValueIsInvalidErrorWithCause("operatorID", err)
	}
	if date.IsZero() {
		return GetPickupSummaryQuery{}, errs.NewValueIsRequiredError("date")
	}

	return GetPickupSummaryQuery{
		operatorID: operatorID,
		date:       date,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPickupSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetPickupSummaryQueryIsNotConstructed)
}

// OperatorID returns the operator whose day is summarized.
func (q GetPickupSummaryQuery) OperatorID() kernel.UUID {
	return q.operatorID
}

// Date returns the summarized day.
func (q GetPickupSummaryQuery) Date() time.Time {
	return q.date
}

// GetPickupSummaryQueryResponse is the per-status breakdown of an
// operator's day.
type GetPickupSummaryQueryResponse struct {
	OperatorID kernel.UUID
	Date       time.Time
	Total      int
	Confirmed  int
	InProgress int
	Completed  int
	Failed     int
	Cancelled  int
	Other      int
}
