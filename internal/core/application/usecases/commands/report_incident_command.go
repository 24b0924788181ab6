package commands

import (
	"errors"

	"shipping/internal/core/domain/model/incident"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrReportIncidentCommandIsNotConstructed = errors.New(
	"ReportIncidentCommand must be created via NewReportIncidentCommand constructor",
)

// ReportIncidentCommand opens an incident against a guide.
type ReportIncidentCommand struct { //nolint:recvcheck //using for validation
	incidentID  kernel.UUID
	guideID     kernel.UUID
	kind        incident.Type
	severity    incident.Severity
	description string

	guard guard.ConstructorGuard
}

// NewReportIncidentCommand creates a command to report an incident on a
// guide.
func NewReportIncidentCommand(incidentID kernel.UUID, guideID kernel.UUID,
	kind incident.Type, severity incident.Severity,
	description string) (ReportIncidentCommand, error) {
	reportCommand := ReportIncidentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reportCommand.setIncidentID(incidentID),
		reportCommand.setGuideID(guideID),
		reportCommand.setKind(kind),
		reportCommand.setSeverity(severity),
		reportCommand.setDescription(description),
	); err != nil {
		return ReportIncidentCommand{}, err
	}

	return reportCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportIncidentCommand) Validate() error {
	return c.guard.Validate(ErrReportIncidentCommandIsNotConstructed)
}

// IncidentID returns the identifier assigned to the new incident.
func (c ReportIncidentCommand) IncidentID() kernel.UUID {
	return c.incidentID
}

// GuideID returns the identifier of the affected guide.
func (c ReportIncidentCommand) GuideID() kernel.UUID {
	return c.guideID
}

// Kind returns the incident classification.
func (c ReportIncidentCommand) Kind() incident.Type {
	return c.kind
}

// Severity returns the reported severity.
func (c ReportIncidentCommand) Severity() incident.Severity {
	return c.severity
}

// Description returns what happened.
func (c ReportIncidentCommand) Description() string {
	return c.description
}

func (c *ReportIncidentCommand) setIncidentID(incidentID kernel.UUID) error {
	if err := incidentID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("incidentID", err)
	}

	c.incidentID = incidentID
	return nil
}

func (c *ReportIncidentCommand) setGuideID(guideID kernel.UUID) error {
	if err := guideID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("guideID", err)
	}

	c.guideID = guideID
	return nil
}

func (c *ReportIncidentCommand) setKind(kind incident.Type) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *ReportIncidentCommand) setSeverity(severity incident.Severity) error {
	if err := severity.Validate(); err != nil {
		return err
	}

	c.severity = severity
	return nil
}

func (c *ReportIncidentCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}

	c.description = description
	return nil
}
