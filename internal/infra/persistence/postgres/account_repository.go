// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"boxbot/internal/domain/entity"
	domainerrors "boxbot/internal/domain/errors"
	"boxbot/internal/domain/repository"
	"boxbot/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements repository.AccountRepository using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByTelegramID retrieves a single account by the Telegram user ID.
func (repo *accountRepository) FindByTelegramID(ctx context.Context, telegramID int64) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("telegram_id = ?", telegramID).
		First(&accountM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by telegram id")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrInternalError.WrapMessage("account already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInternalError.WrapMessage("missing required account information")
		}

		return errors.Wrap(err, "failed to create account")
	}

	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update replaces the stored account row with the given entity.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Save(accountM).Error; err != nil {
		return errors.Wrap(err, "failed to update account")
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// UpdatePreferences stores the new preference set for an account.
func (repo *accountRepository) UpdatePreferences(ctx context.Context, telegramID int64, prefs entity.Preferences) error {
	return repo.updateColumns(ctx, telegramID, map[string]any{
		"geocheck_enabled": prefs.GeocheckEnabled,
		"default_machine":  prefs.DefaultMachine,
		"notifications":    prefs.Notifications,
	})
}

// UpdateLocationState records the latest location sample for an account.
func (repo *accountRepository) UpdateLocationState(ctx context.Context, telegramID int64, latitude, longitude float64, sampledAt time.Time) error {
	return repo.updateColumns(ctx, telegramID, map[string]any{
		"latitude":    latitude,
		"longitude":   longitude,
		"location_at": sampledAt,
	})
}

// SetConsent stores the user's parcel-logging consent decision.
func (repo *accountRepository) SetConsent(ctx context.Context, telegramID int64, consent entity.Consent) error {
	return repo.updateColumns(ctx, telegramID, map[string]any{
		"consent": string(consent),
	})
}

// SetDeviceToken stores a companion-device push token.
func (repo *accountRepository) SetDeviceToken(ctx context.Context, telegramID int64, token string) error {
	return repo.updateColumns(ctx, telegramID, map[string]any{
		"device_token": token,
	})
}

// ListNotifiable returns all accounts with arrival notifications enabled.
func (repo *accountRepository) ListNotifiable(ctx context.Context) ([]*entity.Account, error) {
	var accountMs []*model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("notifications = ?", true).
		Find(&accountMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifiable accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountMs))
	for _, accountM := range accountMs {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

func (repo *accountRepository) updateColumns(ctx context.Context, telegramID int64, columns map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("telegram_id = ?", telegramID).
		Updates(columns)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	account := &entity.Account{
		TelegramID:  data.TelegramID,
		PhoneNumber: data.PhoneNumber,
		Preferences: entity.Preferences{
			GeocheckEnabled: data.GeocheckEnabled,
			DefaultMachine:  data.DefaultMachine,
			Notifications:   data.Notifications,
		},
		Consent:     entity.Consent(data.Consent),
		DeviceToken: data.DeviceToken,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.Latitude != nil && data.Longitude != nil {
		account.Location = entity.LocationState{
			Latitude:  *data.Latitude,
			Longitude: *data.Longitude,
			SampledAt: data.LocationAt,
		}
	}

	return account
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	accountM := &model.AccountModel{
		TelegramID:      data.TelegramID,
		PhoneNumber:     data.PhoneNumber,
		GeocheckEnabled: data.Preferences.GeocheckEnabled,
		DefaultMachine:  data.Preferences.DefaultMachine,
		Notifications:   data.Preferences.Notifications,
		Consent:         string(data.Consent),
		DeviceToken:     data.DeviceToken,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	if data.Location.Sampled() {
		latitude := data.Location.Latitude
		longitude := data.Location.Longitude
		accountM.Latitude = &latitude
		accountM.Longitude = &longitude
		accountM.LocationAt = data.Location.SampledAt
	}

	return accountM
}
