package impl

import (
	"context"
	"testing"

	"boxbot/internal/domain/entity"
	mockRepo "boxbot/internal/mocks/repository"
	mockSvc "boxbot/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotifierService_DetectArrivals(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	client := mockSvc.NewMockParcelClient(t)
	svc := NewNotifierService(accountRepo, client, nil, newDiscardLogger())

	account := testAccount(entity.ConsentGranted)

	accountRepo.EXPECT().
		ListNotifiable(mock.Anything).
		Return([]*entity.Account{account}, nil)
	client.EXPECT().
		FetchParcels(mock.Anything, testPhone, entity.ParcelTypeParcel).
		Return([]*entity.Parcel{
			statusParcel("1", entity.StatusReadyToPickup),
			statusParcel("2", entity.StatusOutForDelivery),
		}, nil)

	arrivals, err := svc.DetectArrivals(context.Background())
	require.NoError(t, err)
	require.Len(t, arrivals, 1)
	assert.Equal(t, "1", arrivals[0].Parcel.ShipmentNumber)
	assert.Same(t, account, arrivals[0].Account)
}

func TestNotifierService_DetectArrivals_ReportsOnce(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	client := mockSvc.NewMockParcelClient(t)
	svc := NewNotifierService(accountRepo, client, nil, newDiscardLogger())

	account := testAccount(entity.ConsentGranted)

	accountRepo.EXPECT().
		ListNotifiable(mock.Anything).
		Return([]*entity.Account{account}, nil).
		Times(2)
	client.EXPECT().
		FetchParcels(mock.Anything, testPhone, entity.ParcelTypeParcel).
		Return([]*entity.Parcel{statusParcel("1", entity.StatusReadyToPickup)}, nil).
		Times(2)

	first, err := svc.DetectArrivals(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	// The unchanged status on the next scan is not an arrival.
	second, err := svc.DetectArrivals(context.Background())
	require.NoError(t, err)
	assert.Empty(t, second)
}

func TestNotifierService_DetectArrivals_StatusTransition(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	client := mockSvc.NewMockParcelClient(t)
	svc := NewNotifierService(accountRepo, client, nil, newDiscardLogger())

	account := testAccount(entity.ConsentGranted)

	accountRepo.EXPECT().
		ListNotifiable(mock.Anything).
		Return([]*entity.Account{account}, nil).
		Times(2)
	client.EXPECT().
		FetchParcels(mock.Anything, testPhone, entity.ParcelTypeParcel).
		Return([]*entity.Parcel{statusParcel("1", entity.StatusOutForDelivery)}, nil).
		Once()
	client.EXPECT().
		FetchParcels(mock.Anything, testPhone, entity.ParcelTypeParcel).
		Return([]*entity.Parcel{statusParcel("1", entity.StatusReadyToPickup)}, nil).
		Once()

	first, err := svc.DetectArrivals(context.Background())
	require.NoError(t, err)
	assert.Empty(t, first)

	second, err := svc.DetectArrivals(context.Background())
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "1", second[0].Parcel.ShipmentNumber)
}

func TestNotifierService_DetectArrivals_FetchErrorSkipsAccount(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	client := mockSvc.NewMockParcelClient(t)
	svc := NewNotifierService(accountRepo, client, nil, newDiscardLogger())

	broken := testAccount(entity.ConsentGranted)
	healthy := testAccount(entity.ConsentGranted)
	healthy.TelegramID = 43
	healthy.PhoneNumber = "987654321"

	accountRepo.EXPECT().
		ListNotifiable(mock.Anything).
		Return([]*entity.Account{broken, healthy}, nil)
	client.EXPECT().
		FetchParcels(mock.Anything, testPhone, entity.ParcelTypeParcel).
		Return(nil, assert.AnError)
	client.EXPECT().
		FetchParcels(mock.Anything, "987654321", entity.ParcelTypeParcel).
		Return([]*entity.Parcel{statusParcel("9", entity.StatusStackInBoxMachine)}, nil)

	arrivals, err := svc.DetectArrivals(context.Background())
	require.NoError(t, err)
	require.Len(t, arrivals, 1)
	assert.Equal(t, "9", arrivals[0].Parcel.ShipmentNumber)
}

func TestNotifierService_DetectArrivals_PushesToDevice(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	client := mockSvc.NewMockParcelClient(t)
	push := mockSvc.NewMockNotificationService(t)
	svc := NewNotifierService(accountRepo, client, push, newDiscardLogger())

	account := testAccount(entity.ConsentGranted)
	account.DeviceToken = "fcm-token"

	accountRepo.EXPECT().
		ListNotifiable(mock.Anything).
		Return([]*entity.Account{account}, nil)
	client.EXPECT().
		FetchParcels(mock.Anything, testPhone, entity.ParcelTypeParcel).
		Return([]*entity.Parcel{statusParcel("1", entity.StatusReadyToPickup)}, nil)
	push.EXPECT().
		SendSingleNotification(mock.Anything, "fcm-token", "Parcel ready to pick up", "Parcel 1 is waiting for you", map[string]string{"shipment_number": "1"}).
		Return(nil)

	arrivals, err := svc.DetectArrivals(context.Background())
	require.NoError(t, err)
	assert.Len(t, arrivals, 1)
}
