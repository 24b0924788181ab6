package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrRecordTransitCommandIsNotConstructed = errors.New(
	"RecordTransitCommand must be created via NewRecordTransitCommand constructor",
)

// RecordTransitCommand appends a waypoint to a moving shipment. The first
// waypoint moves the guide from PickedUp to InTransit; later waypoints only
// extend the tracking history.
type RecordTransitCommand struct { //nolint:recvcheck //using for validation
	guideID  kernel.UUID
	location string

	guard guard.ConstructorGuard
}

// NewRecordTransitCommand creates a command to record a transit waypoint.
func NewRecordTransitCommand(guideID kernel.UUID, location string) (RecordTransitCommand, error) {
	transitCommand := RecordTransitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transitCommand.setGuideID(guideID),
		transitCommand.setLocation(location),
	); err != nil {
		return RecordTransitCommand{}, err
	}

	return transitCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordTransitCommand) Validate() error {
	return c.guard.Validate(ErrRecordTransitCommandIsNotConstructed)
}

// GuideID returns the identifier of the guide.
func (c RecordTransitCommand) GuideID() kernel.UUID {
	return c.guideID
}

// Location returns the waypoint location.
func (c RecordTransitCommand) Location() string {
	return c.location
}

func (c *RecordTransitCommand) setGuideID(guideID kernel.UUID) error {
	if err := guideID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("guideID", err)
	}

	c.guideID = guideID
	return nil
}

func (c *RecordTransitCommand) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}

	c.location = location
	return nil
}
