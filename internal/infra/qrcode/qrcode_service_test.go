package qrcode

import (
	"bytes"
	"testing"

	"boxbot/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// PNG files start with an eight-byte signature.
var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestGeneratePickupQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	parcel := &entity.Parcel{
		ShipmentNumber: "520113014330222001234567",
		QRPayload:      "P|520113014330222001234567|441022",
	}

	image, err := svc.GeneratePickupQR(parcel)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(image, pngSignature))
}

func TestGeneratePickupQR_NoPayload(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	image, err := svc.GeneratePickupQR(&entity.Parcel{ShipmentNumber: "x"})
	assert.Error(t, err)
	assert.Nil(t, image)
}

func TestNewQRCodeService_UnknownLevelFallsBackToMedium(t *testing.T) {
	svc := NewQRCodeService(128, "X")

	image, err := svc.GeneratePickupQR(&entity.Parcel{QRPayload: "P|1|1"})
	require.NoError(t, err)
	assert.NotEmpty(t, image)
}
