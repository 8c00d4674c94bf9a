package impl

import (
	"context"
	"log/slog"
	"time"

	"boxbot/internal/domain/entity"
	domainerrors "boxbot/internal/domain/errors"
	"boxbot/internal/domain/repository"
	"boxbot/internal/errors"
	"boxbot/internal/usecase"
)

type accountService struct {
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// NewAccountService creates the account management service.
func NewAccountService(accountRepo repository.AccountRepository, logger *slog.Logger) usecase.AccountUsecase {
	return &accountService{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// Get retrieves the account for a Telegram user.
func (s *accountService) Get(ctx context.Context, telegramID int64) (*entity.Account, error) {
	account, err := s.accountRepo.FindByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrNotInitialized
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

// Register links a phone-number identity to a Telegram user. An existing
// account keeps its preferences; only the phone number is replaced.
func (s *accountService) Register(ctx context.Context, telegramID int64, phoneNumber string) (*entity.Account, error) {
	account, err := s.accountRepo.FindByTelegramID(ctx, telegramID)
	if err == nil {
		account.PhoneNumber = phoneNumber

		if err := s.accountRepo.Update(ctx, account); err != nil {
			return nil, errors.Wrap(err, "failed to update account")
		}

		return account, nil
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to find account")
	}

	account = &entity.Account{
		TelegramID:  telegramID,
		PhoneNumber: phoneNumber,
		Preferences: entity.Preferences{
			GeocheckEnabled: true,
			Notifications:   true,
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to create account")
	}

	s.logger.Info("account registered", slog.Int64("telegramID", telegramID))

	return account, nil
}

// SetGeocheck toggles proximity verification before unlocks.
func (s *accountService) SetGeocheck(ctx context.Context, telegramID int64, enabled bool) error {
	return s.updatePreferences(ctx, telegramID, func(prefs *entity.Preferences) {
		prefs.GeocheckEnabled = enabled
	})
}

// SetDefaultMachine records the user's default parcel machine name.
func (s *accountService) SetDefaultMachine(ctx context.Context, telegramID int64, machine string) error {
	return s.updatePreferences(ctx, telegramID, func(prefs *entity.Preferences) {
		prefs.DefaultMachine = machine
	})
}

// SetNotifications toggles parcel-arrival notifications.
func (s *accountService) SetNotifications(ctx context.Context, telegramID int64, enabled bool) error {
	return s.updatePreferences(ctx, telegramID, func(prefs *entity.Preferences) {
		prefs.Notifications = enabled
	})
}

// RegisterDevice stores a companion-device push token.
func (s *accountService) RegisterDevice(ctx context.Context, telegramID int64, token string) error {
	if err := s.accountRepo.SetDeviceToken(ctx, telegramID, token); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrNotInitialized
		}

		return errors.Wrap(err, "failed to set device token")
	}

	return nil
}

func (s *accountService) updatePreferences(ctx context.Context, telegramID int64, apply func(*entity.Preferences)) error {
	account, err := s.accountRepo.FindByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrNotInitialized
		}

		return errors.Wrap(err, "failed to find account")
	}

	prefs := account.Preferences
	apply(&prefs)

	if err := s.accountRepo.UpdatePreferences(ctx, telegramID, prefs); err != nil {
		return errors.Wrap(err, "failed to update preferences")
	}

	return nil
}
