// Package qrcode renders pickup QR codes for display in the chat.
package qrcode

import (
	"boxbot/internal/domain/entity"
	"boxbot/internal/domain/service"
	"boxbot/internal/errors"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePickupQR renders the parcel's upstream QR payload as a PNG.
// The payload is passed through verbatim: the machine's scanner expects
// the exact string issued by the parcel-machine API.
func (s *qrcodeService) GeneratePickupQR(parcel *entity.Parcel) ([]byte, error) {
	if parcel.QRPayload == "" {
		return nil, errors.New("parcel has no QR payload")
	}

	code, err := qrcode.New(parcel.QRPayload, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
