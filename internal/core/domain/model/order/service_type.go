package order

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// ServiceType classifies the delivery service level requested for an order.
type ServiceType int

const (
	// ServiceTypeUnknown represents an invalid or undefined service type.
	ServiceTypeUnknown ServiceType = iota

	// ServiceTypeStandard is the default ground service.
	ServiceTypeStandard

	// ServiceTypeExpress is the expedited service with shorter delivery windows.
	ServiceTypeExpress

	// ServiceTypeSameDay is the same-day metropolitan service.
	ServiceTypeSameDay
)

func getServiceTypeStrings() map[ServiceType]string {
	return map[ServiceType]string{
		ServiceTypeUnknown:  "Unknown",
		ServiceTypeStandard: "Standard",
		ServiceTypeExpress:  "Express",
		ServiceTypeSameDay:  "SameDay",
	}
}

// Validate checks if the ServiceType value is valid.
func (t ServiceType) Validate() error {
	if t != ServiceTypeStandard && t != ServiceTypeExpress && t != ServiceTypeSameDay {
		return errs.NewValueIsInvalidErrorWithCause("serviceType is invalid",
			fmt.Errorf("%d is not a valid service type", t))
	}
	return nil
}

// String returns the human-readable name of the service type.
func (t ServiceType) String() string {
	if str, ok := getServiceTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
