package incident

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Severity grades the operational impact of an incident. Escalation raises an
// incident to at least SeverityHigh.
type Severity int

const (
	// SeverityUnknown represents an invalid or undefined severity.
	SeverityUnknown Severity = iota

	// SeverityLow is for cosmetic issues with no delivery impact.
	SeverityLow

	// SeverityMedium is for issues that delay but do not block delivery.
	SeverityMedium

	// SeverityHigh is for issues that block delivery until resolved.
	SeverityHigh

	// SeverityCritical is for lost or destroyed shipments.
	SeverityCritical
)

func getSeverityStrings() map[Severity]string {
	return map[Severity]string{
		SeverityUnknown:  "Unknown",
		SeverityLow:      "Low",
		SeverityMedium:   "Medium",
		SeverityHigh:     "High",
		SeverityCritical: "Critical",
	}
}

// Validate checks if the Severity value is valid.
func (s Severity) Validate() error {
	if s < SeverityLow || s > SeverityCritical {
		return errs.NewValueIsInvalidErrorWithCause("severity is invalid",
			fmt.Errorf("%d is not a valid severity", s))
	}
	return nil
}

// String returns the human-readable name of the severity.
func (s Severity) String() string {
	if str, ok := getSeverityStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Type classifies what went wrong with the shipment.
type Type int

const (
	// TypeUnknown represents an invalid or undefined incident type.
	TypeUnknown Type = iota

	// TypeDamagedPackage covers physical damage to the package.
	TypeDamagedPackage

	// TypeLostPackage covers packages that cannot be located.
	TypeLostPackage

	// TypeLateDelivery covers missed delivery promises.
	TypeLateDelivery

	// TypeWrongAddress covers undeliverable or incorrect addresses.
	TypeWrongAddress

	// TypeOther covers anything the fixed categories do not.
	TypeOther
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:        "Unknown",
		TypeDamagedPackage: "DamagedPackage",
		TypeLostPackage:    "LostPackage",
		TypeLateDelivery:   "LateDelivery",
		TypeWrongAddress:   "WrongAddress",
		TypeOther:          "Other",
	}
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if t < TypeDamagedPackage || t > TypeOther {
		return errs.NewValueIsInvalidErrorWithCause("incident type is invalid",
			fmt.Errorf("%d is not a valid incident type", t))
	}
	return nil
}

// String returns the human-readable name of the incident type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
