package shipment

import (
	"errors"
	"fmt"
	"strings"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrGuideCodesAreNotConstructed is returned when GuideCodes were not created
// through a constructor.
var ErrGuideCodesAreNotConstructed = errors.New("GuideCodes must be created via NewGuideCodes constructor")

// GuideCodes bundles the machine-readable identifiers printed on a guide:
// the linear barcode, the QR payload, and the short code the operator reads
// back at pickup. Codes are derived deterministically from the guide id so a
// reprinted guide always carries the same codes.
type GuideCodes struct {
	barcode    string
	qrCode     string
	pickupCode string
	guard      guard.ConstructorGuard
}

// NewGuideCodes derives the printable codes for the given guide id.
func NewGuideCodes(guideID kernel.UUID) (GuideCodes, error) {
	if err := guideID.Validate(); err != nil {
		return GuideCodes{}, err
	}

	compact := strings.ToUpper(strings.ReplaceAll(guideID.String(), "-", ""))
	return GuideCodes{
		barcode:    fmt.Sprintf("SHP-%s", compact[:12]),
		qrCode:     guideID.String(),
		pickupCode: compact[len(compact)-6:],
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreGuideCodes reconstructs codes from persistence.
func RestoreGuideCodes(barcode, qrCode, pickupCode string) (GuideCodes, error) {
	if barcode == "" || qrCode == "" || pickupCode == "" {
		return GuideCodes{}, errs.NewValueIsRequiredError("guide codes are required")
	}
	return GuideCodes{
		barcode:    barcode,
		qrCode:     qrCode,
		pickupCode: pickupCode,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the codes were properly constructed.
func (c GuideCodes) Validate() error {
	return c.guard.Validate(ErrGuideCodesAreNotConstructed)
}

// Barcode returns the linear barcode payload.
func (c GuideCodes) Barcode() string { return c.barcode }

// QRCode returns the QR payload.
func (c GuideCodes) QRCode() string { return c.qrCode }

// PickupCode returns the short confirmation code used at pickup.
func (c GuideCodes) PickupCode() string { return c.pickupCode }
