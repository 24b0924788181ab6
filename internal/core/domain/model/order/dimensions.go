package order

import (
	"errors"
	"fmt"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrDimensionsAreNotConstructed is returned when Dimensions were not created
// through the NewDimensions constructor.
var ErrDimensionsAreNotConstructed = errors.New("Dimensions must be created via NewDimensions constructor")

// Dimensions is a value object describing the physical size and weight of the
// package being shipped. All measures must be strictly positive.
type Dimensions struct { //nolint:recvcheck //using for validation
	lengthCm float64
	widthCm  float64
	heightCm float64
	weightKg float64
	guard    guard.ConstructorGuard
}

// NewDimensions creates validated package dimensions.
// Length, width, and height are in centimeters, weight in kilograms; every
// measure must be greater than zero.
func NewDimensions(lengthCm, widthCm, heightCm, weightKg float64) (Dimensions, error) {
	dims := Dimensions{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		dims.setMeasure(&dims.lengthCm, "lengthCm", lengthCm),
		dims.setMeasure(&dims.widthCm, "widthCm", widthCm),
		dims.setMeasure(&dims.heightCm, "heightCm", heightCm),
		dims.setMeasure(&dims.weightKg, "weightKg", weightKg),
	); err != nil {
		return Dimensions{}, err
	}

	return dims, nil
}

// Validate ensures the Dimensions were properly constructed.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

// LengthCm returns the package length in centimeters.
func (d Dimensions) LengthCm() float64 { return d.lengthCm }

// WidthCm returns the package width in centimeters.
func (d Dimensions) WidthCm() float64 { return d.widthCm }

// HeightCm returns the package height in centimeters.
func (d Dimensions) HeightCm() float64 { return d.heightCm }

// WeightKg returns the package weight in kilograms.
func (d Dimensions) WeightKg() float64 { return d.weightKg }

// VolumeCm3 returns the package volume in cubic centimeters.
func (d Dimensions) VolumeCm3() float64 {
	return d.lengthCm * d.widthCm * d.heightCm
}

func (d *Dimensions) setMeasure(field *float64, name string, value float64) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			fmt.Sprintf("%s is invalid", name),
			fmt.Errorf("%v is not greater than 0", value),
		)
	}
	*field = value
	return nil
}
