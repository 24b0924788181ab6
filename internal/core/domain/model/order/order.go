package order

import (
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a shipping request as it moves from creation through
// quoting and confirmation to guide generation. It is the aggregate root of
// the order lifecycle.
//
// Order follows these invariants:
//   - Must have valid unique and customer identifiers
//   - Recipient, dimensions, declared value, and service type are validated on construction
//   - Status transitions follow the rules encoded in Status
//   - Once a guide is attached, the order can no longer be cancelled
//   - Can only be created through NewOrder or restored through RestoreOrder
//
// Every successful transition records exactly one domain event on the
// embedded EventRecorder; rejected calls leave both state and the event
// outbox untouched.
type Order struct {
	kernel.EventRecorder

	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the customer that placed the order
	customerID kernel.UUID

	// recipient is the validated delivery destination
	recipient Recipient

	// dimensions describe the physical package
	dimensions Dimensions

	// declaredValue is the customer-declared value of the package contents
	declaredValue kernel.Money

	// serviceType is the requested delivery service level
	serviceType ServiceType

	// status is the current state in the order lifecycle
	status Status

	// quotedPrice is set by Quote, nil until then
	quotedPrice *kernel.Money

	// estimatedDeliveryDays is set by Quote, zero until then
	estimatedDeliveryDays int

	// guideID is set by MarkWithGuide, nil until then
	guideID *kernel.UUID

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status and records an OrderCreated
// event. All parameters are validated; validation failures are joined into a
// single error and no order is produced.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	recipient Recipient,
	dimensions Dimensions,
	declaredValue kernel.Money,
	serviceType ServiceType,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRecipient(recipient),
		o.setDimensions(dimensions),
		o.setDeclaredValue(declaredValue),
		o.setServiceType(serviceType),
	); err != nil {
		return nil, err
	}

	o.RecordEvent(OrderCreated{orderID: o.id, customerID: o.customerID, occurredAt: now})
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence in its previously saved
// state. No events are recorded. Quote data and guide assignment are optional
// and must be consistent with the restored status.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	recipient Recipient,
	dimensions Dimensions,
	declaredValue kernel.Money,
	serviceType ServiceType,
	status Status,
	quotedPrice *kernel.Money,
	estimatedDeliveryDays int,
	guideID *kernel.UUID,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRecipient(recipient),
		o.setDimensions(dimensions),
		o.setDeclaredValue(declaredValue),
		o.setServiceType(serviceType),
		o.setStatus(status),
		o.setQuote(quotedPrice, estimatedDeliveryDays),
		o.setGuideID(guideID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Recipient returns the delivery destination.
func (o *Order) Recipient() Recipient {
	return o.recipient
}

// Dimensions returns the package dimensions.
func (o *Order) Dimensions() Dimensions {
	return o.dimensions
}

// DeclaredValue returns the customer-declared package value.
func (o *Order) DeclaredValue() kernel.Money {
	return o.declaredValue
}

// ServiceType returns the requested service level.
func (o *Order) ServiceType() ServiceType {
	return o.serviceType
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// QuotedPrice returns the quoted price, or nil if the order was never quoted.
func (o *Order) QuotedPrice() *kernel.Money {
	return o.quotedPrice
}

// EstimatedDeliveryDays returns the delivery estimate attached with the
// quote, or zero if the order was never quoted.
func (o *Order) EstimatedDeliveryDays() int {
	return o.estimatedDeliveryDays
}

// GuideID returns the attached guide's identifier, or nil if no guide was
// generated yet.
func (o *Order) GuideID() *kernel.UUID {
	return o.guideID
}

// Quote attaches a price quote and delivery estimate to a pending order and
// transitions it to Quoted.
//
// Business rules:
//   - The order must be in Pending status
//   - The price must be a valid, non-negative Money value
//   - deliveryDays must be greater than zero
func (o *Order) Quote(price kernel.Money, deliveryDays int, now time.Time) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if deliveryDays <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveryDays is invalid",
			fmt.Errorf("%d is not greater than 0", deliveryDays))
	}

	newStatus, err := o.status.Quote()
	if err != nil {
		return err
	}

	from := o.status
	o.status = newStatus
	o.quotedPrice = &price
	o.estimatedDeliveryDays = deliveryDays
	o.RecordEvent(OrderQuoted{
		orderID:      o.id,
		from:         from,
		price:        price,
		deliveryDays: deliveryDays,
		occurredAt:   now,
	})
	return nil
}

// Confirm accepts the quote and transitions the order to Confirmed.
// The order must be in Quoted status.
func (o *Order) Confirm(now time.Time) error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	from := o.status
	o.status = newStatus
	o.RecordEvent(OrderConfirmed{orderID: o.id, from: from, occurredAt: now})
	return nil
}

// Cancel terminates the order before guide generation.
//
// Business rules:
//   - Fails once a guide exists (WithGuide status): the shipment has already
//     been handed to logistics and only the shipment lifecycle can end it
//   - Fails on an already cancelled order
func (o *Order) Cancel(reason string, now time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	from := o.status
	o.status = newStatus
	o.RecordEvent(OrderCancelled{orderID: o.id, from: from, reason: reason, occurredAt: now})
	return nil
}

// MarkWithGuide attaches the generated guide to a confirmed order and
// transitions it to WithGuide, the terminal success state of the order
// lifecycle. A guide can be attached exactly once.
func (o *Order) MarkWithGuide(guideID kernel.UUID, now time.Time) error {
	if err := guideID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.MarkWithGuide()
	if err != nil {
		return err
	}

	from := o.status
	o.status = newStatus
	o.guideID = &guideID
	o.RecordEvent(OrderHandedToLogistics{
		orderID:    o.id,
		guideID:    guideID,
		from:       from,
		occurredAt: now,
	})
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRecipient(recipient Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	o.recipient = recipient
	return nil
}

func (o *Order) setDimensions(dimensions Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}
	o.dimensions = dimensions
	return nil
}

func (o *Order) setDeclaredValue(declaredValue kernel.Money) error {
	if err := declaredValue.Validate(); err != nil {
		return err
	}
	o.declaredValue = declaredValue
	return nil
}

func (o *Order) setServiceType(serviceType ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}
	o.serviceType = serviceType
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setQuote restores quote data. A quoted price requires a positive delivery
// estimate and vice versa.
func (o *Order) setQuote(price *kernel.Money, deliveryDays int) error {
	if price == nil {
		if deliveryDays != 0 {
			return errs.NewValueIsInvalidError("estimatedDeliveryDays without quoted price")
		}
		return nil
	}

	if err := price.Validate(); err != nil {
		return err
	}
	if deliveryDays <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveryDays is invalid",
			fmt.Errorf("%d is not greater than 0", deliveryDays))
	}

	o.quotedPrice = price
	o.estimatedDeliveryDays = deliveryDays
	return nil
}

func (o *Order) setGuideID(guideID *kernel.UUID) error {
	if guideID != nil {
		if err := guideID.Validate(); err != nil {
			return err
		}
	}
	o.guideID = guideID
	return nil
}
