package incident

import (
	"errors"
	"strings"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// ErrIncidentIsNotConstructed is returned when an Incident was not created
// through its constructors.
var ErrIncidentIsNotConstructed = errors.New(
	"Incident must be created via NewIncident or RestoreIncident constructor")

// Incident is a reported problem against a shipment. Its lifecycle is
// independent of the shipment's: an incident on a delivered guide is still
// reviewable and resolvable.
type Incident struct {
	kernel.EventRecorder

	id          kernel.UUID
	guideID     kernel.UUID
	kind        Type
	severity    Severity
	status      Status
	description string
	evidence    []string
	reportedAt  time.Time
	resolvedAt  *time.Time
	resolution  string

	isConstructed bool
}

// NewIncident files an incident against a guide and records IncidentReported.
func NewIncident(id kernel.UUID, guideID kernel.UUID, kind Type,
	severity Severity, description string, now time.Time) (*Incident, error) {
	incident := &Incident{
		id:         id,
		status:     Reported,
		reportedAt: now,

		isConstructed: true,
	}

	if err := errors.Join(
		incident.setGuideID(guideID),
		incident.setKind(kind),
		incident.setSeverity(severity),
		incident.setDescription(description),
	); err != nil {
		return nil, err
	}

	incident.RecordEvent(IncidentReported{
		incidentID: id,
		guideID:    guideID,
		kind:       kind,
		severity:   severity,
		occurredAt: now,
	})
	return incident, nil
}

// RestoreIncident reconstructs an Incident from persisted state without
// recording events.
func RestoreIncident(id kernel.UUID, guideID kernel.UUID, kind Type,
	severity Severity, status Status, description string, evidence []string,
	reportedAt time.Time, resolvedAt *time.Time, resolution string) (*Incident, error) {
	incident := &Incident{
		id:         id,
		status:     status,
		reportedAt: reportedAt,
		resolvedAt: resolvedAt,
		resolution: resolution,

		isConstructed: true,
	}

	if err := errors.Join(
		incident.setGuideID(guideID),
		incident.setKind(kind),
		incident.setSeverity(severity),
		incident.setDescription(description),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	incident.evidence = make([]string, len(evidence))
	copy(incident.evidence, evidence)

	return incident, nil
}

// Validate ensures the Incident was properly constructed.
func (i *Incident) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrIncidentIsNotConstructed
	}
	return nil
}

// ID returns the incident's identifier.
func (i *Incident) ID() kernel.UUID { return i.id }

// GuideID returns the guide the incident was filed against.
func (i *Incident) GuideID() kernel.UUID { return i.guideID }

// Kind returns the incident's classification.
func (i *Incident) Kind() Type { return i.kind }

// Severity returns the incident's current severity.
func (i *Incident) Severity() Severity { return i.severity }

// Status returns the incident's handling status.
func (i *Incident) Status() Status { return i.status }

// Description returns the free-form problem description.
func (i *Incident) Description() string { return i.description }

// ReportedAt returns when the incident was filed.
func (i *Incident) ReportedAt() time.Time { return i.reportedAt }

// ResolvedAt returns when a resolution was recorded, nil while unresolved.
func (i *Incident) ResolvedAt() *time.Time { return i.resolvedAt }

// Resolution returns the recorded resolution text, empty while unresolved.
func (i *Incident) Resolution() string { return i.resolution }

// Evidence returns a copy of the attached evidence references.
func (i *Incident) Evidence() []string {
	evidence := make([]string, len(i.evidence))
	copy(evidence, i.evidence)
	return evidence
}

// AddEvidence attaches an evidence reference (photo, document, signature).
// Evidence can be added until the incident is closed.
func (i *Incident) AddEvidence(reference string) error {
	if strings.TrimSpace(reference) == "" {
		return errs.NewValueIsRequiredError("evidence reference")
	}
	if i.status.IsTerminal() {
		return errs.NewInvalidStateTransitionError("Incident",
			i.status.String(), "evidence attachment")
	}
	i.evidence = append(i.evidence, reference)
	return nil
}

// Acknowledge moves the incident into review.
func (i *Incident) Acknowledge(reviewer string, now time.Time) error {
	next, err := i.status.Acknowledge()
	if err != nil {
		return err
	}
	if strings.TrimSpace(reviewer) == "" {
		return errs.NewValueIsRequiredError("reviewer")
	}

	i.status = next
	i.RecordEvent(IncidentAcknowledged{
		incidentID: i.id,
		reviewer:   reviewer,
		occurredAt: now,
	})
	return nil
}

// Escalate raises the incident's handling. Severity rises to at least High;
// a Critical incident keeps its severity. The resolution path stays open.
func (i *Incident) Escalate(reason string, now time.Time) error {
	next, err := i.status.Escalate()
	if err != nil {
		return err
	}
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	from := i.status
	fromSeverity := i.severity
	if i.severity < SeverityHigh {
		i.severity = SeverityHigh
	}

	i.status = next
	i.RecordEvent(IncidentEscalated{
		incidentID:   i.id,
		from:         from,
		fromSeverity: fromSeverity,
		toSeverity:   i.severity,
		reason:       reason,
		occurredAt:   now,
	})
	return nil
}

// Resolve records a resolution. Valid from InReview and Escalated.
func (i *Incident) Resolve(resolution string, now time.Time) error {
	next, err := i.status.Resolve()
	if err != nil {
		return err
	}
	if strings.TrimSpace(resolution) == "" {
		return errs.NewValueIsRequiredError("resolution")
	}
	if now.Before(i.reportedAt) {
		return errs.NewValueIsInvalidErrorWithCause("resolvedAt",
			errors.New("resolution time precedes report time"))
	}

	from := i.status
	resolvedAt := now
	i.status = next
	i.resolvedAt = &resolvedAt
	i.resolution = resolution
	i.RecordEvent(IncidentResolved{
		incidentID: i.id,
		from:       from,
		resolution: resolution,
		occurredAt: now,
	})
	return nil
}

// Close confirms a recorded resolution and terminates the incident.
func (i *Incident) Close(now time.Time) error {
	next, err := i.status.Close()
	if err != nil {
		return err
	}

	i.status = next
	i.RecordEvent(IncidentClosed{
		incidentID: i.id,
		occurredAt: now,
	})
	return nil
}

// ResolutionTime returns how long the incident stayed open, and false while
// it is unresolved. Exposed for SLA observability.
func (i *Incident) ResolutionTime() (time.Duration, bool) {
	if i.resolvedAt == nil {
		return 0, false
	}
	return i.resolvedAt.Sub(i.reportedAt), true
}

func (i *Incident) setGuideID(guideID kernel.UUID) error {
	if err := guideID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("guideID", err)
	}
	i.guideID = guideID
	return nil
}

func (i *Incident) setKind(kind Type) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	i.kind = kind
	return nil
}

func (i *Incident) setSeverity(severity Severity) error {
	if err := severity.Validate(); err != nil {
		return err
	}
	i.severity = severity
	return nil
}

func (i *Incident) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewValueIsRequiredError("description")
	}
	i.description = description
	return nil
}
