package usecase

import (
	"context"

	"boxbot/internal/domain/entity"
)

// ParcelUsecase covers parcel browsing: listing, details, open code and
// pickup QR retrieval. Every successful fetch feeds the consent-gated
// archive hook.
type ParcelUsecase interface {
	// ListPending returns the account's undelivered parcels, grouped.
	ListPending(ctx context.Context, account *entity.Account) ([]*ParcelGroup, error)

	// ListDelivered returns the account's already collected parcels.
	ListDelivered(ctx context.Context, account *entity.Account) ([]*entity.Parcel, error)

	// Get returns one parcel expanded into its display group.
	Get(ctx context.Context, account *entity.Account, shipmentNumber string) (*ParcelGroup, error)

	// OpenCode returns the parcel's manual open code.
	OpenCode(ctx context.Context, account *entity.Account, shipmentNumber string) (string, error)

	// PickupQR renders the parcel's pickup QR code as a PNG image.
	PickupQR(ctx context.Context, account *entity.Account, shipmentNumber string) ([]byte, error)
}
