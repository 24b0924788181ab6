// Package guiderepo provides data transfer objects and mapping functions for guide persistence.
// A guide row carries the shipment lifecycle state plus its identification codes; the tracking
// timeline and delivery retry cycle live in child tables keyed by guide id.
package guiderepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// GuideDTO represents the database structure for persisting guide aggregates.
type GuideDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	Operator   string
	Status     int `gorm:"index"`
	Barcode    string
	QRCode     string
	PickupCode string

	// Retry columns are null until the package goes out for delivery.
	RetryMaxAttempts *int
	RetryFinalStatus *int

	TrackingEvents   []TrackingEventDTO   `gorm:"foreignKey:GuideID;references:ID"`
	DeliveryAttempts []DeliveryAttemptDTO `gorm:"foreignKey:GuideID;references:ID"`
}

// TableName specifies the database table name for guide entities.
func (GuideDTO) TableName() string {
	return "guides"
}

// TrackingEventDTO is one entry of a guide's tracking timeline. Seq preserves
// the append order within a guide.
type TrackingEventDTO struct {
	GuideID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int       `gorm:"primaryKey;autoIncrement:false"`
	Kind       string
	Location   string
	Note       string
	RecordedAt time.Time
}

// TableName specifies the database table name for tracking event entities.
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

// DeliveryAttemptDTO is one recorded delivery attempt of a guide's retry cycle.
type DeliveryAttemptDTO struct {
	GuideID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number        int       `gorm:"primaryKey;autoIncrement:false"`
	Outcome       int
	FailureReason string
	Notes         string
	RecordedAt    time.Time
}

// TableName specifies the database table name for delivery attempt entities.
func (DeliveryAttemptDTO) TableName() string {
	return "delivery_attempts"
}

// fromDomain converts a guide domain aggregate to its database representation,
// including the tracking timeline and retry cycle child rows.
func fromDomain(aggregate *shipment.Guide) GuideDTO {
	guideID := aggregate.ID().Bytes()
	codes := aggregate.Codes()

	dto := GuideDTO{
		ID:         guideID,
		OrderID:    aggregate.OrderID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Operator:   aggregate.Operator(),
		Status:     int(aggregate.Status()),
		Barcode:    codes.Barcode(),
		QRCode:     codes.QRCode(),
		PickupCode: codes.PickupCode(),
	}

	for i, event := range aggregate.Tracking().Events() {
		dto.TrackingEvents = append(dto.TrackingEvents, TrackingEventDTO{
			GuideID:    guideID,
			Seq:        i + 1,
			Kind:       event.Kind(),
			Location:   event.Location(),
			Note:       event.Note(),
			RecordedAt: event.RecordedAt(),
		})
	}

	if retry := aggregate.Retry(); retry != nil {
		maxAttempts := retry.MaxAttempts()
		finalStatus := int(retry.FinalStatus())
		dto.RetryMaxAttempts = &maxAttempts
		dto.RetryFinalStatus = &finalStatus

		for _, attempt := range retry.Attempts() {
			dto.DeliveryAttempts = append(dto.DeliveryAttempts, DeliveryAttemptDTO{
				GuideID:       guideID,
				Number:        attempt.Number(),
				Outcome:       int(attempt.Outcome()),
				FailureReason: attempt.FailureReason(),
				Notes:         attempt.Notes(),
				RecordedAt:    attempt.RecordedAt(),
			})
		}
	}

	return dto
}

// toDomain converts a database DTO to a guide domain aggregate, rebuilding the
// tracking timeline and, when present, the delivery retry cycle.
func toDomain(dto GuideDTO) (*shipment.Guide, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	codes, err := shipment.RestoreGuideCodes(dto.Barcode, dto.QRCode, dto.PickupCode)
	if err != nil {
		return nil, err
	}

	events := make([]shipment.TrackingEvent, 0, len(dto.TrackingEvents))
	for _, row := range dto.TrackingEvents {
		event, eventErr := shipment.NewTrackingEvent(row.Kind, row.Location, row.Note, row.RecordedAt)
		if eventErr != nil {
			return nil, eventErr
		}
		events = append(events, event)
	}

	tracking, err := shipment.RestoreTracking(id, events)
	if err != nil {
		return nil, err
	}

	var retry *shipment.DeliveryRetry
	if dto.RetryMaxAttempts != nil && dto.RetryFinalStatus != nil {
		attempts := make([]shipment.DeliveryAttempt, 0, len(dto.DeliveryAttempts))
		for _, row := range dto.DeliveryAttempts {
			attempt, attemptErr := shipment.RestoreDeliveryAttempt(row.Number,
				shipment.AttemptOutcome(row.Outcome), row.FailureReason, row.Notes, row.RecordedAt)
			if attemptErr != nil {
				return nil, attemptErr
			}
			attempts = append(attempts, attempt)
		}

		retry, err = shipment.RestoreDeliveryRetry(id, *dto.RetryMaxAttempts, attempts,
			shipment.RetryStatus(*dto.RetryFinalStatus))
		if err != nil {
			return nil, err
		}
	}

	return shipment.RestoreGuide(id, orderID, customerID, dto.Operator,
		shipment.Status(dto.Status), codes, tracking, retry)
}
