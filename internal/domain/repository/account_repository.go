// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"boxbot/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByTelegramID retrieves a single account by its Telegram user id.
	FindByTelegramID(ctx context.Context, telegramID int64) (*entity.Account, error)

	// Create persists a new account entity to the storage.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account entity in the storage.
	Update(ctx context.Context, account *entity.Account) error

	// UpdatePreferences replaces the stored preferences of an account.
	UpdatePreferences(ctx context.Context, telegramID int64, prefs entity.Preferences) error

	// UpdateLocationState records a freshly confirmed location sample.
	// Last write wins; there is exactly one writer per account at a time
	// under the one-conversation-per-chat model.
	UpdateLocationState(ctx context.Context, telegramID int64, lat, long float64, sampledAt time.Time) error

	// SetConsent records the user's data-collection decision.
	SetConsent(ctx context.Context, telegramID int64, consent entity.Consent) error

	// SetDeviceToken stores (or clears, with an empty token) the push
	// token of the user's companion device.
	SetDeviceToken(ctx context.Context, telegramID int64, token string) error

	// ListNotifiable retrieves all accounts with arrival notifications
	// enabled.
	ListNotifiable(ctx context.Context) ([]*entity.Account, error)
}
