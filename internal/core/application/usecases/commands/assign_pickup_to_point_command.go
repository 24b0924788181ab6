package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrAssignPickupToPointCommandIsNotConstructed = errors.New(
	"AssignPickupToPointCommand must be created via NewAssignPickupToPointCommand constructor",
)

// AssignPickupToPointCommand directs a point-delivery pickup to a logistics
// point where the customer drops the parcel off.
type AssignPickupToPointCommand struct { //nolint:recvcheck //using for validation
	pickupID kernel.UUID
	pointID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignPickupToPointCommand creates a command to assign a pickup to a
// logistics point.
func NewAssignPickupToPointCommand(pickupID kernel.UUID,
	pointID kernel.UUID) (AssignPickupToPointCommand, error) {
	assignCommand := AssignPickupToPointCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setPickupID(pickupID),
		assignCommand.setPointID(pointID),
	); err != nil {
		return AssignPickupToPointCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignPickupToPointCommand) Validate() error {
	return c.guard.Validate(ErrAssignPickupToPointCommandIsNotConstructed)
}

// PickupID returns the identifier of the pickup request.
func (c AssignPickupToPointCommand) PickupID() kernel.UUID {
	return c.pickupID
}

// PointID returns the identifier of the logistics point.
func (c AssignPickupToPointCommand) PointID() kernel.UUID {
	return c.pointID
}

func (c *AssignPickupToPointCommand) setPickupID(pickupID kernel.UUID) error {
	if err := pickupID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pickupID", err)
	}

	c.pickupID = pickupID
	return nil
}

func (c *AssignPickupToPointCommand) setPointID(pointID kernel.UUID) error {
	if err := pointID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pointID", err)
	}

	c.pointID = pointID
	return nil
}
