package kernel

import (
	"fmt"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money value. Money must be created via NewMoney or MoneyFromFloat.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or MoneyFromFloat constructors")

// Money represents a non-negative monetary amount, used for quoted prices and
// declared package values. It wraps an arbitrary-precision decimal so that
// amounts survive persistence round trips without floating point drift.
//
// Money is an immutable value object; the zero value is invalid and will fail
// validation.
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount.
// The amount must not be negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromFloat creates a Money value from a float64 amount.
// The amount must not be negative.
func MoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// Validate checks if the Money value was properly constructed.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the underlying decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two Money values for amount equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the decimal string representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}
