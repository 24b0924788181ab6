// Package pickuprepo provides data transfer objects and mapping functions for pickup
// persistence. It covers two concerns: pickup request aggregates with their attempt
// history, and the time slots they reserve capacity against.
package pickuprepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/pickup"

	"github.com/google/uuid"
)

// PickupRequestDTO represents the database structure for persisting pickup
// request aggregates.
type PickupRequestDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	GuideID       uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CustomerID    uuid.UUID `gorm:"type:uuid;index"`
	PickupType    int
	Priority      int
	Lat           float64
	Lon           float64
	Status        int       `gorm:"index"`
	ScheduledDate time.Time `gorm:"index"`
	TimeSlotID    *uuid.UUID `gorm:"type:uuid"`
	OperatorID    *uuid.UUID `gorm:"type:uuid;index"`
	PointID       *uuid.UUID `gorm:"type:uuid"`
	MaxAttempts   int

	Attempts []PickupAttemptDTO `gorm:"foreignKey:PickupID;references:ID"`
}

// TableName specifies the database table name for pickup request entities.
func (PickupRequestDTO) TableName() string {
	return "pickup_requests"
}

// PickupAttemptDTO is one recorded collection attempt of a pickup request.
type PickupAttemptDTO struct {
	PickupID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number     int       `gorm:"primaryKey;autoIncrement:false"`
	OperatorID uuid.UUID `gorm:"type:uuid"`
	Succeeded  bool
	Reason     string
	Notes      string
	Evidence   []string `gorm:"serializer:json;type:jsonb"`
	RecordedAt time.Time
}

// TableName specifies the database table name for pickup attempt entities.
func (PickupAttemptDTO) TableName() string {
	return "pickup_attempts"
}

// TimeSlotDTO represents the database structure for persisting time slots.
// CurrentPickups is the reservation count capacity checks run against.
type TimeSlotDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OperatorID     uuid.UUID `gorm:"type:uuid;index"`
	Start          time.Time `gorm:"column:start_at;index"`
	End            time.Time `gorm:"column:end_at"`
	MaxPickups     int
	CurrentPickups int
}

// TableName specifies the database table name for time slot entities.
func (TimeSlotDTO) TableName() string {
	return "time_slots"
}

// fromDomain converts a pickup request domain aggregate to its database
// representation, including the attempt history child rows.
func fromDomain(aggregate *pickup.PickupRequest) PickupRequestDTO {
	pickupID := aggregate.ID().Bytes()

	dto := PickupRequestDTO{
		ID:            pickupID,
		GuideID:       aggregate.GuideID().Bytes(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		PickupType:    int(aggregate.PickupType()),
		Priority:      int(aggregate.Priority()),
		Lat:           aggregate.Location().Latitude(),
		Lon:           aggregate.Location().Longitude(),
		Status:        int(aggregate.Status()),
		ScheduledDate: aggregate.ScheduledDate(),
		TimeSlotID:    optionalUUID(aggregate.TimeSlotID()),
		OperatorID:    optionalUUID(aggregate.OperatorID()),
		PointID:       optionalUUID(aggregate.PointID()),
		MaxAttempts:   aggregate.MaxAttempts(),
	}

	for _, attempt := range aggregate.Attempts() {
		dto.Attempts = append(dto.Attempts, PickupAttemptDTO{
			PickupID:   pickupID,
			Number:     attempt.Number(),
			OperatorID: attempt.OperatorID().Bytes(),
			Succeeded:  attempt.Succeeded(),
			Reason:     attempt.Reason(),
			Notes:      attempt.Notes(),
			Evidence:   attempt.Evidence(),
			RecordedAt: attempt.RecordedAt(),
		})
	}

	return dto
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

// toDomain converts a database DTO to a pickup request domain aggregate,
// rebuilding the attempt history.
func toDomain(dto PickupRequestDTO) (*pickup.PickupRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	guideID, err := kernel.UUIDFromBytes(dto.GuideID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Lat, dto.Lon)
	if err != nil {
		return nil, err
	}

	timeSlotID, err := optionalKernelUUID(dto.TimeSlotID)
	if err != nil {
		return nil, err
	}
	operatorID, err := optionalKernelUUID(dto.OperatorID)
	if err != nil {
		return nil, err
	}
	pointID, err := optionalKernelUUID(dto.PointID)
	if err != nil {
		return nil, err
	}

	attempts := make([]pickup.Attempt, 0, len(dto.Attempts))
	for _, row := range dto.Attempts {
		attemptOperator, operatorErr := kernel.UUIDFromBytes(row.OperatorID[:])
		if operatorErr != nil {
			return nil, operatorErr
		}

		attempt, attemptErr := pickup.RestoreAttempt(row.Number, attemptOperator,
			row.Succeeded, row.Reason, row.Notes, row.Evidence, row.RecordedAt)
		if attemptErr != nil {
			return nil, attemptErr
		}
		attempts = append(attempts, attempt)
	}

	return pickup.RestorePickupRequest(id, guideID, customerID,
		pickup.Type(dto.PickupType), pickup.Priority(dto.Priority), location,
		pickup.Status(dto.Status), dto.ScheduledDate,
		timeSlotID, operatorID, pointID, attempts, dto.MaxAttempts)
}

func optionalKernelUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}

	restored, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &restored, nil
}

func slotFromDomain(slot *pickup.TimeSlot) TimeSlotDTO {
	return TimeSlotDTO{
		ID:             slot.ID().Bytes(),
		OperatorID:     slot.OperatorID().Bytes(),
		Start:          slot.Start(),
		End:            slot.End(),
		MaxPickups:     slot.MaxPickups(),
		CurrentPickups: slot.CurrentPickups(),
	}
}

func slotToDomain(dto TimeSlotDTO) (*pickup.TimeSlot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	operatorID, err := kernel.UUIDFromBytes(dto.OperatorID[:])
	if err != nil {
		return nil, err
	}

	return pickup.RestoreTimeSlot(id, operatorID, dto.Start, dto.End,
		dto.MaxPickups, dto.CurrentPickups)
}
