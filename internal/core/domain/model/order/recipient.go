package order

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrRecipientIsNotConstructed is returned when a Recipient was not created
// through the NewRecipient constructor.
var ErrRecipientIsNotConstructed = errors.New("Recipient must be created via NewRecipient constructor")

// Recipient is a value object describing the person and place a shipment is
// addressed to. The destination coordinates feed route proximity ordering.
type Recipient struct { //nolint:recvcheck //using for validation
	name     string
	phone    string
	address  string
	location kernel.GeoPoint
	guard    guard.ConstructorGuard
}

// NewRecipient creates a validated Recipient.
// Name and address are required; phone is optional. The location must be a
// properly constructed GeoPoint.
func NewRecipient(name string, phone string, address string, location kernel.GeoPoint) (Recipient, error) {
	recipient := Recipient{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		recipient.setName(name),
		recipient.setAddress(address),
		recipient.setLocation(location),
	); err != nil {
		return Recipient{}, err
	}

	return recipient, nil
}

// Validate ensures the Recipient was properly constructed.
func (r Recipient) Validate() error {
	return r.guard.Validate(ErrRecipientIsNotConstructed)
}

// Name returns the recipient's full name.
func (r Recipient) Name() string {
	return r.name
}

// Phone returns the recipient's contact phone, possibly empty.
func (r Recipient) Phone() string {
	return r.phone
}

// Address returns the free-form delivery address line.
func (r Recipient) Address() string {
	return r.address
}

// Location returns the geocoded delivery destination.
func (r Recipient) Location() kernel.GeoPoint {
	return r.location
}

func (r *Recipient) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("recipient name is required")
	}
	r.name = name
	return nil
}

func (r *Recipient) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("recipient address is required")
	}
	r.address = address
	return nil
}

func (r *Recipient) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	r.location = location
	return nil
}
