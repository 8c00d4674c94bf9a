package usecase

import (
	"context"

	"boxbot/internal/domain/entity"
)

// Arrival is one parcel that newly reached a pickup-eligible status for
// an account with notifications enabled.
type Arrival struct {
	Account *entity.Account
	Parcel  *entity.Parcel
}

// NotifierUsecase detects freshly arrived parcels. Companion-device push
// delivery happens inside the usecase (best effort); chat delivery of the
// returned arrivals is the transport's job.
type NotifierUsecase interface {
	DetectArrivals(ctx context.Context) ([]Arrival, error)
}
