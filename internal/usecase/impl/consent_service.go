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

type consentService struct {
	accountRepo repository.AccountRepository
	archiveRepo repository.ParcelArchiveRepository
	logger      *slog.Logger
}

// NewConsentService creates the consent manager and the consent-gated
// archive hook.
func NewConsentService(accountRepo repository.AccountRepository, archiveRepo repository.ParcelArchiveRepository, logger *slog.Logger) usecase.ConsentUsecase {
	return &consentService{
		accountRepo: accountRepo,
		archiveRepo: archiveRepo,
		logger:      logger,
	}
}

// Require blocks any parcel operation until the user has made a consent
// decision either way.
func (s *consentService) Require(ctx context.Context, telegramID int64) error {
	account, err := s.accountRepo.FindByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrNotInitialized
		}

		return errors.Wrap(err, "failed to find account")
	}

	if !account.Consent.Set() {
		return domainerrors.ErrConsentNotSet
	}

	return nil
}

// Set records the user's data-collection decision.
func (s *consentService) Set(ctx context.Context, telegramID int64, granted bool) error {
	consent := entity.ConsentDenied
	if granted {
		consent = entity.ConsentGranted
	}

	if err := s.accountRepo.SetConsent(ctx, telegramID, consent); err != nil {
		return errors.Wrap(err, "failed to set consent")
	}

	return nil
}

// Archive persists the raw parcel payload iff consent is granted. It is
// a best-effort hook: failures are logged, never propagated, so a broken
// archive can not take the parcel workflows down with it.
func (s *consentService) Archive(ctx context.Context, telegramID int64, phoneNumber string, parcel *entity.Parcel) {
	account, err := s.accountRepo.FindByTelegramID(ctx, telegramID)
	if err != nil {
		s.logger.Warn("archive hook: account lookup failed",
			slog.Int64("telegramID", telegramID),
			slog.Any("error", err),
		)

		return
	}

	if account.Consent != entity.ConsentGranted {
		return
	}

	record := &repository.ParcelArchiveRecord{
		TelegramID:     telegramID,
		PhoneNumber:    phoneNumber,
		ShipmentNumber: parcel.ShipmentNumber,
		ParcelType:     parcel.Type,
		Payload:        parcel.RawPayload,
		FetchedAt:      time.Now(),
	}

	if err := s.archiveRepo.Append(ctx, record); err != nil {
		s.logger.Warn("archive hook: append failed",
			slog.String("shipmentNumber", parcel.ShipmentNumber),
			slog.Any("error", err),
		)
	}
}
