package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/pickup"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrGenerateGuideCommandIsNotConstructed = errors.New(
	"GenerateGuideCommand must be created via NewGenerateGuideCommand constructor",
)

// GenerateGuideCommand turns a confirmed order into a shipping guide and
// opens the matching pickup request. The customer tier decides how the
// parcel enters the network: small shippers drop off at a point, the rest
// get a collection visit.
type GenerateGuideCommand struct { //nolint:recvcheck //using for validation
	guideID        kernel.UUID
	orderID        kernel.UUID
	pickupID       kernel.UUID
	operator       string
	customerTier   pickup.CustomerTier
	priority       pickup.Priority
	pickupLocation kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewGenerateGuideCommand creates a command to generate a guide for a
// confirmed order.
func NewGenerateGuideCommand(guideID kernel.UUID, orderID kernel.UUID,
	pickupID kernel.UUID, operator string, customerTier pickup.CustomerTier,
	priority pickup.Priority, pickupLocation kernel.GeoPoint,
) (GenerateGuideCommand, error) {
	guideCommand := GenerateGuideCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		guideCommand.setGuideID(guideID),
		guideCommand.setOrderID(orderID),
		guideCommand.setPickupID(pickupID),
		guideCommand.setOperator(operator),
		guideCommand.setCustomerTier(customerTier),
		guideCommand.setPriority(priority),
		guideCommand.setPickupLocation(pickupLocation),
	); err != nil {
		return GenerateGuideCommand{}, err
	}

	return guideCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateGuideCommand) Validate() error {
	return c.guard.Validate(ErrGenerateGuideCommandIsNotConstructed)
}

// GuideID returns the identifier assigned to the new guide.
func (c GenerateGuideCommand) GuideID() kernel.UUID {
	return c.guideID
}

// OrderID returns the identifier of the confirmed order.
func (c GenerateGuideCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PickupID returns the identifier assigned to the new pickup request.
func (c GenerateGuideCommand) PickupID() kernel.UUID {
	return c.pickupID
}

// Operator returns the logistics operator handling the shipment.
func (c GenerateGuideCommand) Operator() string {
	return c.operator
}

// CustomerTier returns the commercial segment of the shipper.
func (c GenerateGuideCommand) CustomerTier() pickup.CustomerTier {
	return c.customerTier
}

// Priority returns the collection priority for the pickup request.
func (c GenerateGuideCommand) Priority() pickup.Priority {
	return c.priority
}

// PickupLocation returns the coordinates where the parcel is collected.
func (c GenerateGuideCommand) PickupLocation() kernel.GeoPoint {
	return c.pickupLocation
}

func (c *GenerateGuideCommand) setGuideID(guideID kernel.UUID) error {
	if err := guideID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("guideID", err)
	}

	c.guideID = guideID
	return nil
}

func (c *GenerateGuideCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}

	c.orderID = orderID
	return nil
}

func (c *GenerateGuideCommand) setPickupID(pickupID kernel.UUID) error {
	if err := pickupID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pickupID", err)
	}

	c.pickupID = pickupID
	return nil
}

func (c *GenerateGuideCommand) setOperator(operator string) error {
	if operator == "" {
		return errs.NewValueIsRequiredError("operator")
	}

	c.operator = operator
	return nil
}

func (c *GenerateGuideCommand) setCustomerTier(customerTier pickup.CustomerTier) error {
	if err := customerTier.Validate(); err != nil {
		return err
	}

	c.customerTier = customerTier
	return nil
}

func (c *GenerateGuideCommand) setPriority(priority pickup.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}

func (c *GenerateGuideCommand) setPickupLocation(pickupLocation kernel.GeoPoint) error {
	if err := pickupLocation.Validate(); err != nil {
		return err
	}

	c.pickupLocation = pickupLocation
	return nil
}
