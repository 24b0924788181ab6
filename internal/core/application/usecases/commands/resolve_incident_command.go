package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrResolveIncidentCommandIsNotConstructed = errors.New(
	"ResolveIncidentCommand must be created via NewResolveIncidentCommand constructor",
)

// ResolveIncidentCommand records the resolution of an open incident.
type ResolveIncidentCommand struct { //nolint:recvcheck //using for validation
	incidentID kernel.UUID
	resolvedBy string
	resolution string

	guard guard.ConstructorGuard
}

// NewResolveIncidentCommand creates a command to resolve an incident.
func NewResolveIncidentCommand(incidentID kernel.UUID, resolvedBy string,
	resolution string) (ResolveIncidentCommand, error) {
	resolveCommand := ResolveIncidentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		resolveCommand.setIncidentID(incidentID),
		resolveCommand.setResolvedBy(resolvedBy),
		resolveCommand.setResolution(resolution),
	); err != nil {
		return ResolveIncidentCommand{}, err
	}

	return resolveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveIncidentCommand) Validate() error {
	return c.guard.Validate(ErrResolveIncidentCommandIsNotConstructed)
}

// IncidentID returns the identifier of the incident being resolved.
func (c ResolveIncidentCommand) IncidentID() kernel.UUID {
	return c.incidentID
}

// ResolvedBy returns who resolved the incident.
func (c ResolveIncidentCommand) ResolvedBy() string {
	return c.resolvedBy
}

// Resolution returns how the incident was settled.
func (c ResolveIncidentCommand) Resolution() string {
	return c.resolution
}

func (c *ResolveIncidentCommand) setIncidentID(incidentID kernel.UUID) error {
	if err := incidentID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("incidentID", err)
	}

	c.incidentID = incidentID
	return nil
}

func (c *ResolveIncidentCommand) setResolvedBy(resolvedBy string) error {
	if resolvedBy == "" {
		return errs.NewValueIsRequiredError("resolvedBy")
	}

	c.resolvedBy = resolvedBy
	return nil
}

func (c *ResolveIncidentCommand) setResolution(resolution string) error {
	if resolution == "" {
		return errs.NewValueIsRequiredError("resolution")
	}

	c.resolution = resolution
	return nil
}
