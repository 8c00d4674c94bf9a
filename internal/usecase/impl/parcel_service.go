package impl

import (
	"context"
	"log/slog"

	"boxbot/internal/domain/entity"
	domainerrors "boxbot/internal/domain/errors"
	"boxbot/internal/domain/service"
	"boxbot/internal/errors"
	"boxbot/internal/usecase"
)

// pendingStatuses is everything that is not a terminal state: parcels in
// transit plus parcels waiting at a machine.
var pendingStatuses = map[entity.ParcelStatus]struct{}{
	entity.StatusConfirmed:                   {},
	entity.StatusAdoptedAtSortingCenter:      {},
	entity.StatusAdoptedAtSourceBranch:       {},
	entity.StatusCollectedFromSender:         {},
	entity.StatusDispatchedBySender:          {},
	entity.StatusDispatchedBySenderToPOK:     {},
	entity.StatusSentFromSourceBranch:        {},
	entity.StatusTakenByCourier:              {},
	entity.StatusTakenByCourierFromPOK:       {},
	entity.StatusOutForDelivery:              {},
	entity.StatusOutForDeliveryToAddress:     {},
	entity.StatusReadyToPickup:               {},
	entity.StatusStackInBoxMachine:           {},
	entity.StatusStackInCustomerServicePoint: {},
	entity.StatusPickupReminderSent:          {},
	entity.StatusPickupReminderSentAddress:   {},
}

type parcelService struct {
	client   service.ParcelClient
	grouping usecase.GroupingUsecase
	consent  usecase.ConsentUsecase
	qrcode   service.QRCodeService
	logger   *slog.Logger
}

// NewParcelService creates the parcel browsing service.
func NewParcelService(
	client service.ParcelClient,
	grouping usecase.GroupingUsecase,
	consent usecase.ConsentUsecase,
	qrcode service.QRCodeService,
	logger *slog.Logger,
) usecase.ParcelUsecase {
	return &parcelService{
		client:   client,
		grouping: grouping,
		consent:  consent,
		qrcode:   qrcode,
		logger:   logger,
	}
}

// ListPending returns the undelivered parcels, grouped for display.
func (s *parcelService) ListPending(ctx context.Context, account *entity.Account) ([]*usecase.ParcelGroup, error) {
	parcels, err := s.client.FetchParcels(ctx, account.PhoneNumber, entity.ParcelTypeParcel)
	if err != nil {
		return nil, translateClientError(err, "failed to fetch parcels")
	}

	pending := make([]*entity.Parcel, 0, len(parcels))
	for _, parcel := range parcels {
		if _, ok := pendingStatuses[parcel.Status]; !ok {
			continue
		}
		pending = append(pending, parcel)
		s.consent.Archive(ctx, account.TelegramID, account.PhoneNumber, parcel)
	}

	if len(pending) == 0 {
		return nil, domainerrors.ErrParcelNotFound
	}

	return s.grouping.Group(ctx, account.PhoneNumber, pending)
}

// ListDelivered returns the already collected parcels.
func (s *parcelService) ListDelivered(ctx context.Context, account *entity.Account) ([]*entity.Parcel, error) {
	parcels, err := s.client.FetchParcels(ctx, account.PhoneNumber, entity.ParcelTypeParcel)
	if err != nil {
		return nil, translateClientError(err, "failed to fetch parcels")
	}

	delivered := make([]*entity.Parcel, 0, len(parcels))
	for _, parcel := range parcels {
		if parcel.Status != entity.StatusDelivered {
			continue
		}
		delivered = append(delivered, parcel)
		s.consent.Archive(ctx, account.TelegramID, account.PhoneNumber, parcel)
	}

	if len(delivered) == 0 {
		return nil, domainerrors.ErrParcelNotFound
	}

	return delivered, nil
}

// Get returns one parcel expanded into its display group.
func (s *parcelService) Get(ctx context.Context, account *entity.Account, shipmentNumber string) (*usecase.ParcelGroup, error) {
	parcel, err := s.fetch(ctx, account, shipmentNumber)
	if err != nil {
		return nil, err
	}

	return s.grouping.Resolve(ctx, account.PhoneNumber, parcel)
}

// OpenCode returns the manual open code for the machine keypad.
func (s *parcelService) OpenCode(ctx context.Context, account *entity.Account, shipmentNumber string) (string, error) {
	parcel, err := s.fetch(ctx, account, shipmentNumber)
	if err != nil {
		return "", err
	}

	return parcel.OpenCode, nil
}

// PickupQR renders the pickup QR code as a PNG image.
func (s *parcelService) PickupQR(ctx context.Context, account *entity.Account, shipmentNumber string) ([]byte, error) {
	parcel, err := s.fetch(ctx, account, shipmentNumber)
	if err != nil {
		return nil, err
	}

	image, err := s.qrcode.GeneratePickupQR(parcel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup QR")
	}

	return image, nil
}

func (s *parcelService) fetch(ctx context.Context, account *entity.Account, shipmentNumber string) (*entity.Parcel, error) {
	parcel, err := s.client.FetchParcel(ctx, account.PhoneNumber, shipmentNumber, entity.ParcelTypeParcel)
	if err != nil {
		return nil, translateClientError(err, "failed to fetch parcel")
	}

	s.consent.Archive(ctx, account.TelegramID, account.PhoneNumber, parcel)

	return parcel, nil
}
