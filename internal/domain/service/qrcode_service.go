package service

import (
	"boxbot/internal/domain/entity"
)

// QRCodeService defines the interface for pickup QR code generation.
type QRCodeService interface {
	// GeneratePickupQR renders the parcel's pickup QR payload as a PNG
	// image suitable for scanning at the machine.
	GeneratePickupQR(parcel *entity.Parcel) ([]byte, error)
}
