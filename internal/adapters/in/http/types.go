package http

import (
	"shipping/internal/core/domain/model/incident"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/pickup"
	"shipping/internal/core/domain/model/shipment"
)

// Request payloads. Enumerated fields carry their domain names as strings;
// an unrecognized value maps to the Unknown member, which the command
// constructor rejects with a validation error.

type RecipientRequest struct {
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type DimensionsRequest struct {
	LengthCm float64 `json:"length_cm"`
	WidthCm  float64 `json:"width_cm"`
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
}

type CreateOrderRequest struct {
	CustomerID    string            `json:"customer_id"`
	Recipient     RecipientRequest  `json:"recipient"`
	Dimensions    DimensionsRequest `json:"dimensions"`
	DeclaredValue float64           `json:"declared_value"`
	ServiceType   string            `json:"service_type"`
}

type QuoteOrderRequest struct {
	Price        float64 `json:"price"`
	DeliveryDays int     `json:"delivery_days"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

type GenerateGuideRequest struct {
	OrderID         string  `json:"order_id"`
	Operator        string  `json:"operator"`
	CustomerTier    string  `json:"customer_tier"`
	Priority        string  `json:"priority"`
	PickupLatitude  float64 `json:"pickup_latitude"`
	PickupLongitude float64 `json:"pickup_longitude"`
}

type RecordTransitRequest struct {
	Location string `json:"location"`
}

type RecordDeliveryAttemptRequest struct {
	Outcome       string   `json:"outcome"`
	FailureReason string   `json:"failure_reason"`
	Notes         string   `json:"notes"`
	RecipientName string   `json:"recipient_name"`
	Location      string   `json:"location"`
	Evidence      []string `json:"evidence"`
}

type SchedulePickupRequest struct {
	SlotID string `json:"slot_id"`
}

type AssignPickupToPointRequest struct {
	PointID string `json:"point_id"`
}

type ReschedulePickupRequest struct {
	NewSlotID string `json:"new_slot_id"`
	Reason    string `json:"reason"`
}

type RecordPickupOutcomeRequest struct {
	OperatorID string   `json:"operator_id"`
	Succeeded  bool     `json:"succeeded"`
	Reason     string   `json:"reason"`
	Notes      string   `json:"notes"`
	Evidence   []string `json:"evidence"`
	Location   string   `json:"location"`
}

type CancelPickupRequest struct {
	Reason      string `json:"reason"`
	CancelledBy string `json:"cancelled_by"`
}

type CreateRouteRequest struct {
	OperatorID     string   `json:"operator_id"`
	Date           string   `json:"date"`
	StartLatitude  float64  `json:"start_latitude"`
	StartLongitude float64  `json:"start_longitude"`
	PickupIDs      []string `json:"pickup_ids"`
}

type ReportIncidentRequest struct {
	GuideID     string `json:"guide_id"`
	Kind        string `json:"kind"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

type EscalateIncidentRequest struct {
	Reason string `json:"reason"`
}

type ResolveIncidentRequest struct {
	ResolvedBy string `json:"resolved_by"`
	Resolution string `json:"resolution"`
}

// Creation responses return the identifiers the server minted.

type CreatedResponse struct {
	ID string `json:"id"`
}

type GuideCreatedResponse struct {
	GuideID  string `json:"guide_id"`
	PickupID string `json:"pickup_id"`
}

func parseServiceType(s string) order.ServiceType {
	switch s {
	case "Standard":
		return order.ServiceTypeStandard
	case "Express":
		return order.ServiceTypeExpress
	case "SameDay":
		return order.ServiceTypeSameDay
	default:
		return order.ServiceTypeUnknown
	}
}

func parseCustomerTier(s string) pickup.CustomerTier {
	switch s {
	case "Small":
		return pickup.TierSmall
	case "Medium":
		return pickup.TierMedium
	case "Large":
		return pickup.TierLarge
	default:
		return pickup.TierUnknown
	}
}

func parsePriority(s string) pickup.Priority {
	switch s {
	case "Urgent":
		return pickup.PriorityUrgent
	case "High":
		return pickup.PriorityHigh
	case "Normal":
		return pickup.PriorityNormal
	case "Low":
		return pickup.PriorityLow
	default:
		return pickup.PriorityUnknown
	}
}

func parseAttemptOutcome(s string) shipment.AttemptOutcome {
	switch s {
	case "Success":
		return shipment.OutcomeSuccess
	case "Failed":
		return shipment.OutcomeFailed
	case "Rescheduled":
		return shipment.OutcomeRescheduled
	default:
		return shipment.OutcomeUnknown
	}
}

func parseIncidentType(s string) incident.Type {
	switch s {
	case "DamagedPackage":
		return incident.TypeDamagedPackage
	case "LostPackage":
		return incident.TypeLostPackage
	case "LateDelivery":
		return incident.TypeLateDelivery
	case "WrongAddress":
		return incident.TypeWrongAddress
	case "Other":
		return incident.TypeOther
	default:
		return incident.TypeUnknown
	}
}

func parseIncidentSeverity(s string) incident.Severity {
	switch s {
	case "Low":
		return incident.SeverityLow
	case "Medium":
		return incident.SeverityMedium
	case "High":
		return incident.SeverityHigh
	case "Critical":
		return incident.SeverityCritical
	default:
		return incident.SeverityUnknown
	}
}
