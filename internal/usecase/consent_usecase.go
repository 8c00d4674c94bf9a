package usecase

import (
	"context"

	"boxbot/internal/domain/entity"
)

// ConsentUsecase owns the tri-state data-collection consent flag and the
// consent-gated raw-payload archive hook.
type ConsentUsecase interface {
	// Require returns domain errors.ErrConsentNotSet when the user has
	// not made a consent decision either way. Every parcel command path
	// calls it before touching the upstream API.
	Require(ctx context.Context, telegramID int64) error

	// Set records the user's decision.
	Set(ctx context.Context, telegramID int64, granted bool) error

	// Archive persists the parcel's raw API payload if and only if the
	// user's consent is granted. It never fails the surrounding
	// operation: storage errors are logged and swallowed.
	Archive(ctx context.Context, telegramID int64, phoneNumber string, parcel *entity.Parcel)
}
