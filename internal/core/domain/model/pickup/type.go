package pickup

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Type says how a package enters the logistics network.
type Type int

const (
	// TypeUnknown represents an invalid or undefined pickup type.
	TypeUnknown Type = iota

	// DirectPickup sends an operator to the customer's address.
	DirectPickup

	// PointDelivery has the customer drop the package at a logistics point.
	PointDelivery

	// ScheduledPickup is a direct pickup bound to a pre-agreed window.
	ScheduledPickup
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:     "Unknown",
		DirectPickup:    "DirectPickup",
		PointDelivery:   "PointDelivery",
		ScheduledPickup: "ScheduledPickup",
	}
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if t < DirectPickup || t > ScheduledPickup {
		return errs.NewValueIsInvalidErrorWithCause("pickup type is invalid",
			fmt.Errorf("%d is not a valid pickup type", t))
	}
	return nil
}

// String returns the human-readable name of the pickup type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// CustomerTier is the commercial segment a customer belongs to. The tier
// drives pickup type derivation: small customers drop packages at logistics
// points, medium and large customers get direct pickups.
type CustomerTier int

const (
	// TierUnknown represents an invalid or undefined tier.
	TierUnknown CustomerTier = iota

	// TierSmall is for occasional shippers.
	TierSmall

	// TierMedium is for regular shippers.
	TierMedium

	// TierLarge is for high-volume shippers.
	TierLarge
)

func getTierStrings() map[CustomerTier]string {
	return map[CustomerTier]string{
		TierUnknown: "Unknown",
		TierSmall:   "Small",
		TierMedium:  "Medium",
		TierLarge:   "Large",
	}
}

// Validate checks if the CustomerTier value is valid.
func (t CustomerTier) Validate() error {
	if t < TierSmall || t > TierLarge {
		return errs.NewValueIsInvalidErrorWithCause("customer tier is invalid",
			fmt.Errorf("%d is not a valid customer tier", t))
	}
	return nil
}

// String returns the human-readable name of the tier.
func (t CustomerTier) String() string {
	if str, ok := getTierStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
