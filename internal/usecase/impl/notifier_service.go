package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"boxbot/internal/domain/entity"
	"boxbot/internal/domain/repository"
	"boxbot/internal/domain/service"
	"boxbot/internal/errors"
	"boxbot/internal/usecase"
)

type notifierService struct {
	accountRepo repository.AccountRepository
	client      service.ParcelClient
	push        service.NotificationService // Nil when Firebase is not configured.
	logger      *slog.Logger

	// seen tracks the last observed status per account/shipment so an
	// arrival is reported once. In-memory only: after a restart every
	// currently waiting parcel is reported again, which is acceptable.
	mu   sync.Mutex
	seen map[int64]map[string]entity.ParcelStatus
}

// NewNotifierService creates the parcel-arrival detector.
func NewNotifierService(
	accountRepo repository.AccountRepository,
	client service.ParcelClient,
	push service.NotificationService,
	logger *slog.Logger,
) usecase.NotifierUsecase {
	return &notifierService{
		accountRepo: accountRepo,
		client:      client,
		push:        push,
		logger:      logger,
		seen:        make(map[int64]map[string]entity.ParcelStatus),
	}
}

// DetectArrivals scans the notifiable accounts for parcels that newly
// reached READY_TO_PICKUP (or a sibling waiting status). Push delivery to
// a registered companion device happens here, best effort; chat delivery
// of the returned arrivals is left to the transport.
func (s *notifierService) DetectArrivals(ctx context.Context) ([]usecase.Arrival, error) {
	accounts, err := s.accountRepo.ListNotifiable(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifiable accounts")
	}

	var arrivals []usecase.Arrival
	for _, account := range accounts {
		parcels, err := s.client.FetchParcels(ctx, account.PhoneNumber, entity.ParcelTypeParcel)
		if err != nil {
			// One broken account must not starve the rest of the scan.
			s.logger.Warn("arrival scan: fetch failed",
				slog.Int64("telegramID", account.TelegramID),
				slog.Any("error", err),
			)

			continue
		}

		for _, parcel := range parcels {
			if !s.newlyWaiting(account.TelegramID, parcel) {
				continue
			}

			arrivals = append(arrivals, usecase.Arrival{Account: account, Parcel: parcel})
			s.pushArrival(ctx, account, parcel)
		}
	}

	return arrivals, nil
}

// newlyWaiting records the parcel's status and reports whether it just
// transitioned into a waiting-at-machine state.
func (s *notifierService) newlyWaiting(telegramID int64, parcel *entity.Parcel) bool {
	waiting := parcel.Status == entity.StatusReadyToPickup ||
		parcel.Status == entity.StatusStackInBoxMachine ||
		parcel.Status == entity.StatusStackInCustomerServicePoint

	s.mu.Lock()
	defer s.mu.Unlock()

	statuses, ok := s.seen[telegramID]
	if !ok {
		statuses = make(map[string]entity.ParcelStatus)
		s.seen[telegramID] = statuses
	}

	previous, tracked := statuses[parcel.ShipmentNumber]
	statuses[parcel.ShipmentNumber] = parcel.Status

	return waiting && (!tracked || previous != parcel.Status)
}

func (s *notifierService) pushArrival(ctx context.Context, account *entity.Account, parcel *entity.Parcel) {
	if s.push == nil || account.DeviceToken == "" {
		return
	}

	title := "Parcel ready to pick up"
	body := fmt.Sprintf("Parcel %s is waiting for you", parcel.ShipmentNumber)
	data := map[string]string{"shipment_number": parcel.ShipmentNumber}

	if err := s.push.SendSingleNotification(ctx, account.DeviceToken, title, body, data); err != nil {
		s.logger.Warn("arrival push failed",
			slog.Int64("telegramID", account.TelegramID),
			slog.Any("error", err),
		)
	}
}
