package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrGetOverduePickupsQueryIsNotConstructed = errors.New(
	"GetOverduePickupsQuery must be created via NewGetOverduePickupsQuery constructor",
)

// GetOverduePickupsQuery lists confirmed and in-progress pickups that
// slipped past their scheduled date by more than the SLA threshold, as of
// the given instant.
type GetOverduePickupsQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetOverduePickupsQuery creates a query for overdue pickups as of the
// given instant.
func NewGetOverduePickupsQuery(asOf time.Time) (GetOverduePickupsQuery, error) {
	if asOf.IsZero() {
		return GetOverduePickupsQuery{}, errs.NewValueIsRequiredError("asOf")
	}

	return GetOverduePickupsQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOverduePickupsQuery) Validate() error {
	return q.guard.Validate(ErrGetOverduePickupsQueryIsNotConstructed)
}

// AsOf returns the instant the overdue predicate is evaluated against.
func (q GetOverduePickupsQuery) AsOf() time.Time {
	return q.asOf
}

// GetOverduePickupsQueryResponse is one overdue pickup.
type GetOverduePickupsQueryResponse struct {
	ID            kernel.UUID
	GuideID       kernel.UUID
	Status        string
	ScheduledDate time.Time
	OverdueBy     time.Duration
}
