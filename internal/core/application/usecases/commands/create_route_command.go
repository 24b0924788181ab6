package commands

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrCreateRouteCommandIsNotConstructed = errors.New(
	"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
)

// CreateRouteCommand plans a collection route for one operator and one day.
// The listed pickups must already be booked with that operator for that day.
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID    kernel.UUID
	operatorID kernel.UUID
	date       time.Time
	startPoint kernel.GeoPoint
	pickupIDs  []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateRouteCommand creates a command to plan a daily collection route.
func NewCreateRouteCommand(routeID kernel.UUID, operatorID kernel.UUID,
	date time.Time, startPoint kernel.GeoPoint,
	pickupIDs []kernel.UUID) (CreateRouteCommand, error) {
	routeCommand := CreateRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		routeCommand.setRouteID(routeID),
		routeCommand.setOperatorID(operatorID),
		routeCommand.setDate(date),
		routeCommand.setStartPoint(startPoint),
		routeCommand.setPickupIDs(pickupIDs),
	); err != nil {
		return CreateRouteCommand{}, err
	}

	return routeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

// RouteID returns the identifier assigned to the new route.
func (c CreateRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// OperatorID returns the operator driving the route.
func (c CreateRouteCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

// Date returns the day the route covers.
func (c CreateRouteCommand) Date() time.Time {
	return c.date
}

// StartPoint returns the operator's departure coordinates.
func (c CreateRouteCommand) StartPoint() kernel.GeoPoint {
	return c.startPoint
}

// PickupIDs returns the pickups to collect on the route.
func (c CreateRouteCommand) PickupIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.pickupIDs))
	copy(ids, c.pickupIDs)
	return ids
}

func (c *CreateRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("routeID", err)
	}

	c.routeID = routeID
	return nil
}

func (c *CreateRouteCommand) setOperatorID(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("operatorID", err)
	}

	c.operatorID = operatorID
	return nil
}

func (c *CreateRouteCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}

	c.date = date
	return nil
}

func (c *CreateRouteCommand) setStartPoint(startPoint kernel.GeoPoint) error {
	if err := startPoint.Validate(); err != nil {
		return err
	}

	c.startPoint = startPoint
	return nil
}

func (c *CreateRouteCommand) setPickupIDs(pickupIDs []kernel.UUID) error {
	if len(pickupIDs) == 0 {
		return errs.NewValueIsRequiredError("pickupIDs")
	}

	for _, id := range pickupIDs {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("pickupIDs", err)
		}
	}

	c.pickupIDs = pickupIDs
	return nil
}
