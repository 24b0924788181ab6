package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrCancelGuideCommandIsNotConstructed = errors.New(
	"CancelGuideCommand must be created via NewCancelGuideCommand constructor",
)

// CancelGuideCommand cancels a guide before the parcel starts moving.
// Guides past PickedUp cannot be cancelled; the shipment must finish its
// journey as delivered or returned.
type CancelGuideCommand struct { //nolint:recvcheck //using for validation
	guideID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewCancelGuideCommand creates a command to cancel a guide.
func NewCancelGuideCommand(guideID kernel.UUID, reason string) (CancelGuideCommand, error) {
	cancelCommand := CancelGuideCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cancelCommand.setGuideID(guideID),
		cancelCommand.setReason(reason),
	); err != nil {
		return CancelGuideCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelGuideCommand) Validate() error {
	return c.guard.Validate(ErrCancelGuideCommandIsNotConstructed)
}

// GuideID returns the identifier of the guide being cancelled.
func (c CancelGuideCommand) GuideID() kernel.UUID {
	return c.guideID
}

// Reason returns the cancellation reason.
func (c CancelGuideCommand) Reason() string {
	return c.reason
}

func (c *CancelGuideCommand) setGuideID(guideID kernel.UUID) error {
	if err := guideID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("guideID", err)
	}

	c.guideID = guideID
	return nil
}

func (c *CancelGuideCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
