package shipment

import (
	"errors"
	"strings"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// ErrGuideIsNotConstructed is returned when a Guide was not created through
// its constructors.
var ErrGuideIsNotConstructed = errors.New(
	"Guide must be created via NewGuide or RestoreGuide constructor")

// Guide is the aggregate root of the shipment lifecycle. It owns the physical
// movement of one order's package from guide generation to a terminal state,
// together with its tracking timeline and delivery retry cycle.
//
// Invariants:
//   - every lifecycle transition appends a tracking entry and records exactly
//     one domain event, except Transit re-entries which append a tracking
//     entry without a second PackageInTransit event;
//   - Return requires at least one recorded delivery attempt;
//   - delivery attempts are accepted only while the package is out for delivery.
type Guide struct {
	kernel.EventRecorder

	id         kernel.UUID
	orderID    kernel.UUID
	customerID kernel.UUID
	operator   string
	status     Status
	codes      GuideCodes
	tracking   *Tracking
	retry      *DeliveryRetry

	isConstructed bool
}

// NewGuide generates a shipping guide for a confirmed order and records
// GuideGenerated. The tracking timeline starts with a "generated" entry.
func NewGuide(id kernel.UUID, orderID kernel.UUID, customerID kernel.UUID,
	operator string, now time.Time) (*Guide, error) {
	guide := &Guide{
		id:     id,
		status: Generated,

		isConstructed: true,
	}

	if err := errors.Join(
		guide.setOrderID(orderID),
		guide.setCustomerID(customerID),
		guide.setOperator(operator),
	); err != nil {
		return nil, err
	}

	codes, err := NewGuideCodes(id)
	if err != nil {
		return nil, err
	}
	guide.codes = codes

	tracking, err := NewTracking(id)
	if err != nil {
		return nil, err
	}
	guide.tracking = tracking

	if err := guide.appendTracking("generated", "", "guide generated", now); err != nil {
		return nil, err
	}

	guide.RecordEvent(GuideGenerated{
		guideID:    id,
		orderID:    orderID,
		occurredAt: now,
	})
	return guide, nil
}

// RestoreGuide reconstructs a Guide from persisted state without recording
// events or tracking entries.
func RestoreGuide(id kernel.UUID, orderID kernel.UUID, customerID kernel.UUID,
	operator string, status Status, codes GuideCodes,
	tracking *Tracking, retry *DeliveryRetry) (*Guide, error) {
	guide := &Guide{
		id:     id,
		codes:  codes,
		retry:  retry,
		status: status,

		isConstructed: true,
	}

	if err := errors.Join(
		guide.setOrderID(orderID),
		guide.setCustomerID(customerID),
		guide.setOperator(operator),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if tracking == nil {
		return nil, errs.NewValueIsRequiredError("tracking")
	}
	guide.tracking = tracking

	return guide, nil
}

// Validate reports whether the guide was created through a constructor.
func (g *Guide) Validate() error {
	if g == nil || !g.isConstructed {
		return ErrGuideIsNotConstructed
	}
	return nil
}

// ID returns the guide's identifier.
func (g *Guide) ID() kernel.UUID { return g.id }

// OrderID returns the identifier of the order this guide fulfils.
func (g *Guide) OrderID() kernel.UUID { return g.orderID }

// CustomerID returns the identifier of the customer that placed the order.
func (g *Guide) CustomerID() kernel.UUID { return g.customerID }

// Operator returns the logistics operator carrying the shipment.
func (g *Guide) Operator() string { return g.operator }

// Status returns the guide's current lifecycle status.
func (g *Guide) Status() Status { return g.status }

// Codes returns the guide's barcode, QR code and pickup code.
func (g *Guide) Codes() GuideCodes { return g.codes }

// Tracking returns the guide's tracking timeline.
func (g *Guide) Tracking() *Tracking { return g.tracking }

// Retry returns the guide's delivery retry cycle, nil until the first
// delivery attempt is recorded.
func (g *Guide) Retry() *DeliveryRetry { return g.retry }

// Pickup records the physical collection of the package by the operator.
func (g *Guide) Pickup(location string, now time.Time) error {
	next, err := g.status.Pickup()
	if err != nil {
		return err
	}
	if strings.TrimSpace(location) == "" {
		return errs.NewValueIsRequiredError("location")
	}

	if err := g.appendTracking("picked_up", location, "package collected by "+g.operator, now); err != nil {
		return err
	}

	g.status = next
	g.RecordEvent(PackagePickedUp{
		guideID:    g.id,
		location:   location,
		operator:   g.operator,
		occurredAt: now,
	})
	return nil
}

// Transit records a waypoint on the package's journey. The first call moves
// the guide to InTransit and records PackageInTransit; later calls append
// tracking entries only, so carriers can report any number of waypoints.
func (g *Guide) Transit(location string, now time.Time) error {
	next, err := g.status.Transit()
	if err != nil {
		return err
	}
	if strings.TrimSpace(location) == "" {
		return errs.NewValueIsRequiredError("location")
	}

	if err := g.appendTracking("in_transit", location, "", now); err != nil {
		return err
	}

	entering := g.status != InTransit
	g.status = next
	if entering {
		g.RecordEvent(PackageInTransit{
			guideID:    g.id,
			location:   location,
			occurredAt: now,
		})
	}
	return nil
}

// OutForDelivery records that the package boarded the last-mile vehicle.
func (g *Guide) OutForDelivery(now time.Time) error {
	next, err := g.status.OutForDelivery()
	if err != nil {
		return err
	}

	if err := g.appendTracking("out_for_delivery", "", "", now); err != nil {
		return err
	}

	g.status = next
	g.RecordEvent(PackageOutForDelivery{
		guideID:    g.id,
		occurredAt: now,
	})
	return nil
}

// Deliver records a successful final delivery with the receiving party and
// optional evidence references. It closes the retry cycle when one exists.
func (g *Guide) Deliver(recipientName string, location string,
	evidence []string, now time.Time) error {
	next, err := g.status.Deliver()
	if err != nil {
		return err
	}
	if strings.TrimSpace(recipientName) == "" {
		return errs.NewValueIsRequiredError("recipientName")
	}

	if g.retry != nil && !g.retry.IsOpen() {
		return errs.NewRetryExhaustedError("DeliveryRetry", g.retry.MaxAttempts())
	}

	if err := g.appendTracking("delivered", location, "received by "+recipientName, now); err != nil {
		return err
	}

	if g.retry != nil {
		if _, err := g.retry.RecordAttempt(OutcomeSuccess, "", "", now); err != nil {
			return err
		}
	}

	g.status = next
	g.RecordEvent(PackageDelivered{
		guideID:       g.id,
		recipientName: recipientName,
		location:      location,
		evidence:      evidence,
		occurredAt:    now,
	})
	return nil
}

// RecordDeliveryAttempt appends a failed or rescheduled delivery attempt.
// The retry cycle is created lazily on the first attempt. Exhausting the
// attempt bound closes the cycle; callers then return the shipment to origin.
func (g *Guide) RecordDeliveryAttempt(outcome AttemptOutcome, failureReason string,
	notes string, now time.Time) (DeliveryAttempt, error) {
	if g.status != OutForDelivery {
		return DeliveryAttempt{}, errs.NewInvalidStateTransitionError(
			"Guide", g.status.String(), "delivery attempt")
	}

	if g.retry == nil {
		retry, err := NewDeliveryRetry(g.id, DefaultMaxDeliveryAttempts)
		if err != nil {
			return DeliveryAttempt{}, err
		}
		g.retry = retry
	}

	attempt, err := g.retry.RecordAttempt(outcome, failureReason, notes, now)
	if err != nil {
		return DeliveryAttempt{}, err
	}

	if err := g.appendTracking("delivery_attempt", "", failureReason, now); err != nil {
		return DeliveryAttempt{}, err
	}

	var nextAttemptAfter time.Time
	if attempt.Outcome() == OutcomeRescheduled {
		nextAttemptAfter = now.Add(DeliveryRetryInterval)
	}
	g.RecordEvent(DeliveryAttemptRecorded{
		guideID:          g.id,
		attemptNumber:    attempt.Number(),
		outcome:          attempt.Outcome(),
		failureReason:    attempt.FailureReason(),
		nextAttemptAfter: nextAttemptAfter,
		occurredAt:       now,
	})
	return attempt, nil
}

// ReturnToOrigin sends the shipment back to the seller. At least one delivery
// attempt must have been recorded first.
func (g *Guide) ReturnToOrigin(reason string, now time.Time) error {
	next, err := g.status.Return()
	if err != nil {
		return err
	}
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if g.retry == nil || len(g.retry.Attempts()) == 0 {
		return errs.NewValueIsInvalidErrorWithCause("guide",
			errors.New("return requires at least one recorded delivery attempt"))
	}

	if err := g.appendTracking("returned", "", reason, now); err != nil {
		return err
	}

	if g.retry.IsOpen() {
		if err := g.retry.Abandon(); err != nil {
			return err
		}
	}
	g.status = next
	g.RecordEvent(PackageReturned{
		guideID:    g.id,
		reason:     reason,
		occurredAt: now,
	})
	return nil
}

// Cancel terminates the guide from any non-terminal state.
func (g *Guide) Cancel(reason string, now time.Time) error {
	next, err := g.status.Cancel()
	if err != nil {
		return err
	}
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	if err := g.appendTracking("cancelled", "", reason, now); err != nil {
		return err
	}

	from := g.status
	g.status = next
	g.RecordEvent(GuideCancelled{
		guideID:    g.id,
		from:       from,
		reason:     reason,
		occurredAt: now,
	})
	return nil
}

func (g *Guide) appendTracking(kind string, location string, note string, now time.Time) error {
	entry, err := NewTrackingEvent(kind, location, note, now)
	if err != nil {
		return err
	}
	return g.tracking.Append(entry)
}

func (g *Guide) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}
	g.orderID = orderID
	return nil
}

func (g *Guide) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerID", err)
	}
	g.customerID = customerID
	return nil
}

func (g *Guide) setOperator(operator string) error {
	if strings.TrimSpace(operator) == "" {
		return errs.NewValueIsRequiredError("operator")
	}
	g.operator = operator
	return nil
}
