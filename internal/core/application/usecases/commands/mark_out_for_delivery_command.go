package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrMarkOutForDeliveryCommandIsNotConstructed = errors.New(
	"MarkOutForDeliveryCommand must be created via NewMarkOutForDeliveryCommand constructor",
)

// MarkOutForDeliveryCommand puts an in-transit shipment on the last-mile
// vehicle.
type MarkOutForDeliveryCommand struct { //nolint:recvcheck //using for validation
	guideID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOutForDeliveryCommand creates a command to mark a guide as out for
// delivery.
func NewMarkOutForDeliveryCommand(guideID kernel.UUID) (MarkOutForDeliveryCommand, error) {
	outCommand := MarkOutForDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := outCommand.setGuideID(guideID); err != nil {
		return MarkOutForDeliveryCommand{}, err
	}

	return outCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOutForDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrMarkOutForDeliveryCommandIsNotConstructed)
}

// GuideID returns the identifier of the guide.
func (c MarkOutForDeliveryCommand) GuideID() kernel.UUID {
	return c.guideID
}

func (c *MarkOutForDeliveryCommand) setGuideID(guideID kernel.UUID) error {
	if err := guideID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("guideID", err)
	}

	c.guideID = guideID
	return nil
}
