package usecase

import (
	"context"

	"boxbot/internal/domain/entity"
)

// AccountUsecase manages bot accounts and their workflow preferences.
type AccountUsecase interface {
	// Get retrieves the account for a Telegram user.
	Get(ctx context.Context, telegramID int64) (*entity.Account, error)

	// Register links a phone-number identity to a Telegram user,
	// creating the account when missing. Geocheck defaults to enabled.
	Register(ctx context.Context, telegramID int64, phoneNumber string) (*entity.Account, error)

	// SetGeocheck toggles proximity verification before unlocks.
	SetGeocheck(ctx context.Context, telegramID int64, enabled bool) error

	// SetDefaultMachine records the user's default parcel machine name.
	SetDefaultMachine(ctx context.Context, telegramID int64, machine string) error

	// SetNotifications toggles parcel-arrival notifications.
	SetNotifications(ctx context.Context, telegramID int64, enabled bool) error

	// RegisterDevice stores a companion-device push token.
	RegisterDevice(ctx context.Context, telegramID int64, token string) error
}
