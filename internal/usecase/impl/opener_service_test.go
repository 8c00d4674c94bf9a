package impl

import (
	"context"
	"testing"
	"time"

	"boxbot/internal/domain/entity"
	domainerrors "boxbot/internal/domain/errors"
	"boxbot/internal/domain/service"
	mockRepo "boxbot/internal/mocks/repository"
	mockSvc "boxbot/internal/mocks/service"
	"boxbot/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testTelegramID int64 = 42

// openerFixture wires the conversation driver against a real policy
// engine, grouping and consent hook, mocking only the edges.
type openerFixture struct {
	client      *mockSvc.MockParcelClient
	accountRepo *mockRepo.MockAccountRepository
	archiveRepo *mockRepo.MockParcelArchiveRepository
	publisher   *mockSvc.MockEventPublisher
	svc         usecase.CompartmentUsecase
}

func newOpenerFixture(t *testing.T) *openerFixture {
	t.Helper()

	logger := newDiscardLogger()
	cfg := newTestConfig()

	client := mockSvc.NewMockParcelClient(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	archiveRepo := mockRepo.NewMockParcelArchiveRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewCompartmentService(
		client,
		accountRepo,
		NewGroupingService(client, logger),
		NewProximityService(cfg),
		NewConsentService(accountRepo, archiveRepo, logger),
		publisher,
		cfg,
		logger,
	)

	return &openerFixture{
		client:      client,
		accountRepo: accountRepo,
		archiveRepo: archiveRepo,
		publisher:   publisher,
		svc:         svc,
	}
}

func testAccount(consent entity.Consent) *entity.Account {
	return &entity.Account{
		TelegramID:  testTelegramID,
		PhoneNumber: testPhone,
		Preferences: entity.Preferences{GeocheckEnabled: true},
		Consent:     consent,
	}
}

func openedParcel() *entity.Parcel {
	parcel := readyParcel()
	parcel.CompartmentLocation = &entity.CompartmentLocation{Side: "L", Row: "2", Column: "3"}
	parcel.RawPayload = []byte(`{"shipmentNumber":"1001"}`)

	return parcel
}

func TestCompartmentService_Open_HappyPath(t *testing.T) {
	f := newOpenerFixture(t)
	account := testAccount(entity.ConsentGranted)
	parcel := readyParcel()

	f.client.EXPECT().
		FetchParcel(mock.Anything, testPhone, "1001", entity.ParcelTypeParcel).
		Return(parcel, nil)
	f.accountRepo.EXPECT().
		UpdateLocationState(mock.Anything, testTelegramID, machineLat, machineLon, mock.AnythingOfType("time.Time")).
		Return(nil)
	f.client.EXPECT().
		Unlock(mock.Anything, testPhone, parcel).
		Return(openedParcel(), nil)
	f.publisher.EXPECT().
		PublishCompartmentOpened(mock.Anything, mock.AnythingOfType("*service.CompartmentOpenedEvent")).
		Return(nil)
	f.accountRepo.EXPECT().
		FindByTelegramID(mock.Anything, testTelegramID).
		Return(account, nil)
	f.archiveRepo.EXPECT().
		Append(mock.Anything, mock.AnythingOfType("*repository.ParcelArchiveRecord")).
		Return(nil)

	conv := &scriptedConversation{
		messages: []*service.Incoming{{Location: &service.Location{Latitude: machineLat, Longitude: machineLon}}},
		choices:  []string{choiceConfirm},
	}

	result, err := f.svc.Open(context.Background(), conv, account, "1001", entity.ParcelTypeParcel)
	require.NoError(t, err)
	assert.Equal(t, usecase.OpenResultOpened, result)

	texts := conv.texts()
	require.Len(t, texts, 3)
	assert.Equal(t, msgLocationPrompt, texts[0])
	assert.True(t, conv.sent[0].RequestLocation)
	assert.Equal(t, msgInRange, texts[1])
	assert.Contains(t, texts[2], "Compartment opened!")
	assert.Contains(t, texts[2], "Side: L")
	assert.Contains(t, texts[2], "Row: 2")
	assert.Contains(t, texts[2], "Column: 3")
}

func TestCompartmentService_Open_Declined(t *testing.T) {
	f := newOpenerFixture(t)
	account := testAccount(entity.ConsentGranted)

	f.client.EXPECT().
		FetchParcel(mock.Anything, testPhone, "1001", entity.ParcelTypeParcel).
		Return(readyParcel(), nil)
	f.accountRepo.EXPECT().
		UpdateLocationState(mock.Anything, testTelegramID, machineLat, machineLon, mock.AnythingOfType("time.Time")).
		Return(nil)

	conv := &scriptedConversation{
		messages: []*service.Incoming{{Location: &service.Location{Latitude: machineLat, Longitude: machineLon}}},
		choices:  []string{choiceDecline},
	}

	result, err := f.svc.Open(context.Background(), conv, account, "1001", entity.ParcelTypeParcel)
	require.NoError(t, err)
	assert.Equal(t, usecase.OpenResultDeclined, result)
	assert.Contains(t, conv.texts(), msgDeclined)
}

func TestCompartmentService_Open_LocationTimeout(t *testing.T) {
	f := newOpenerFixture(t)
	account := testAccount(entity.ConsentGranted)

	f.client.EXPECT().
		FetchParcel(mock.Anything, testPhone, "1001", entity.ParcelTypeParcel).
		Return(readyParcel(), nil)

	conv := &scriptedConversation{}

	result, err := f.svc.Open(context.Background(), conv, account, "1001", entity.ParcelTypeParcel)
	require.NoError(t, err)
	assert.Equal(t, usecase.OpenResultTimedOut, result)
	assert.Contains(t, conv.texts(), msgWaitTimedOut)
}

func TestCompartmentService_Open_MessageWithoutLocation(t *testing.T) {
	f := newOpenerFixture(t)
	account := testAccount(entity.ConsentGranted)

	f.client.EXPECT().
		FetchParcel(mock.Anything, testPhone, "1001", entity.ParcelTypeParcel).
		Return(readyParcel(), nil)

	conv := &scriptedConversation{
		messages: []*service.Incoming{{Text: "here you go"}},
	}

	result, err := f.svc.Open(context.Background(), conv, account, "1001", entity.ParcelTypeParcel)
	require.NoError(t, err)
	assert.Equal(t, usecase.OpenResultInvalidInput, result)
	assert.Contains(t, conv.texts(), msgNoGeolocation)
}

func TestCompartmentService_Open_AlreadyDelivered(t *testing.T) {
	f := newOpenerFixture(t)
	account := testAccount(entity.ConsentGranted)

	delivered := readyParcel()
	delivered.Status = entity.StatusDelivered

	f.client.EXPECT().
		FetchParcel(mock.Anything, testPhone, "1001", entity.ParcelTypeParcel).
		Return(delivered, nil)

	conv := &scriptedConversation{}

	result, err := f.svc.Open(context.Background(), conv, account, "1001", entity.ParcelTypeParcel)
	require.NoError(t, err)
	assert.Equal(t, usecase.OpenResultAlreadyDelivered, result)
	assert.Equal(t, []string{msgDelivered}, conv.texts())
}

func TestCompartmentService_Open_NotReady(t *testing.T) {
	f := newOpenerFixture(t)
	account := testAccount(entity.ConsentGranted)

	inTransit := readyParcel()
	inTransit.Status = entity.StatusOutForDelivery

	f.client.EXPECT().
		FetchParcel(mock.Anything, testPhone, "1001", entity.ParcelTypeParcel).
		Return(inTransit, nil)

	conv := &scriptedConversation{}

	result, err := f.svc.Open(context.Background(), conv, account, "1001", entity.ParcelTypeParcel)
	require.NoError(t, err)
	assert.Equal(t, usecase.OpenResultNotReady, result)
	assert.Contains(t, conv.texts()[0], "not ready for pick up")
	assert.Contains(t, conv.texts()[0], string(entity.StatusOutForDelivery))
}

func TestCompartmentService_Open_SkipCheck(t *testing.T) {
	f := newOpenerFixture(t)

	account := testAccount(entity.ConsentDenied)
	account.Preferences = entity.Preferences{GeocheckEnabled: false, DefaultMachine: "KRA01M"}

	parcel := readyParcel()

	f.client.EXPECT().
		FetchParcel(mock.Anything, testPhone, "1001", entity.ParcelTypeParcel).
		Return(parcel, nil)
	f.client.EXPECT().
		Unlock(mock.Anything, testPhone, parcel).
		Return(openedParcel(), nil)
	f.publisher.EXPECT().
		PublishCompartmentOpened(mock.Anything, mock.AnythingOfType("*service.CompartmentOpenedEvent")).
		Return(nil)
	// Consent denied: the archive hook looks the account up and bails
	// without appending anything.
	f.accountRepo.EXPECT().
		FindByTelegramID(mock.Anything, testTelegramID).
		Return(account, nil)

	conv := &scriptedConversation{choices: []string{choiceConfirm}}

	result, err := f.svc.Open(context.Background(), conv, account, "1001", entity.ParcelTypeParcel)
	require.NoError(t, err)
	assert.Equal(t, usecase.OpenResultOpened, result)
	assert.Contains(t, conv.texts()[0], "location checking off")
}

func TestCompartmentService_Open_RecentSampleReused(t *testing.T) {
	f := newOpenerFixture(t)

	sampledAt := time.Now().Add(-time.Minute)
	account := testAccount(entity.ConsentGranted)
	account.Location = entity.LocationState{Latitude: machineLat, Longitude: machineLon, SampledAt: &sampledAt}

	f.client.EXPECT().
		FetchParcel(mock.Anything, testPhone, "1001", entity.ParcelTypeParcel).
		Return(readyParcel(), nil)

	conv := &scriptedConversation{choices: []string{choiceDecline}}

	result, err := f.svc.Open(context.Background(), conv, account, "1001", entity.ParcelTypeParcel)
	require.NoError(t, err)
	assert.Equal(t, usecase.OpenResultDeclined, result)
	assert.Contains(t, conv.texts()[0], "Less than 2 minutes")
	assert.Contains(t, conv.texts()[0], "KRA01M")
}

func TestCompartmentService_Open_OutOfRangeOverride(t *testing.T) {
	f := newOpenerFixture(t)
	account := testAccount(entity.ConsentGranted)

	parcel := readyParcel()
	parcel.PickupPoint.City = "Kraków"
	parcel.PickupPoint.Street = "Pawia"
	parcel.PickupPoint.BuildingNumber = "5"
	parcel.PickupPoint.PostCode = "31-154"
	parcel.PickupPoint.Description = "By the station entrance"

	f.client.EXPECT().
		FetchParcel(mock.Anything, testPhone, "1001", entity.ParcelTypeParcel).
		Return(parcel, nil)
	f.accountRepo.EXPECT().
		UpdateLocationState(mock.Anything, testTelegramID, machineLat+1, machineLon, mock.AnythingOfType("time.Time")).
		Return(nil)
	f.client.EXPECT().
		Unlock(mock.Anything, testPhone, parcel).
		Return(openedParcel(), nil)
	f.publisher.EXPECT().
		PublishCompartmentOpened(mock.Anything, mock.AnythingOfType("*service.CompartmentOpenedEvent")).
		Return(nil)
	f.accountRepo.EXPECT().
		FindByTelegramID(mock.Anything, testTelegramID).
		Return(account, nil)
	f.archiveRepo.EXPECT().
		Append(mock.Anything, mock.AnythingOfType("*repository.ParcelArchiveRecord")).
		Return(nil)

	conv := &scriptedConversation{
		messages: []*service.Incoming{{Location: &service.Location{Latitude: machineLat + 1, Longitude: machineLon}}},
		choices:  []string{choiceConfirm},
	}

	result, err := f.svc.Open(context.Background(), conv, account, "1001", entity.ParcelTypeParcel)
	require.NoError(t, err)
	assert.Equal(t, usecase.OpenResultOpened, result)

	warning := conv.texts()[1]
	assert.Contains(t, warning, "outside the range")
	assert.Contains(t, warning, "Name: KRA01M")
	assert.Contains(t, warning, "By the station entrance")
}

func TestCompartmentService_Open_SatelliteResolvesToMain(t *testing.T) {
	f := newOpenerFixture(t)
	account := testAccount(entity.ConsentGranted)

	main := groupMember("10", "grp-1", true)
	main.PickupPoint = readyParcel().PickupPoint
	satellite := groupMember("11", "grp-1", false)

	f.client.EXPECT().
		FetchParcel(mock.Anything, testPhone, "11", entity.ParcelTypeParcel).
		Return(satellite, nil)
	f.client.EXPECT().
		FetchGroup(mock.Anything, testPhone, "grp-1").
		Return([]*entity.Parcel{main, satellite}, nil)
	f.accountRepo.EXPECT().
		UpdateLocationState(mock.Anything, testTelegramID, machineLat, machineLon, mock.AnythingOfType("time.Time")).
		Return(nil)
	// The unlock must target the group's main member, never the
	// satellite the user picked.
	f.client.EXPECT().
		Unlock(mock.Anything, testPhone, main).
		Return(openedParcel(), nil)
	f.publisher.EXPECT().
		PublishCompartmentOpened(mock.Anything, mock.AnythingOfType("*service.CompartmentOpenedEvent")).
		Return(nil)
	f.accountRepo.EXPECT().
		FindByTelegramID(mock.Anything, testTelegramID).
		Return(account, nil)
	f.archiveRepo.EXPECT().
		Append(mock.Anything, mock.AnythingOfType("*repository.ParcelArchiveRecord")).
		Return(nil)

	conv := &scriptedConversation{
		messages: []*service.Incoming{{Location: &service.Location{Latitude: machineLat, Longitude: machineLon}}},
		choices:  []string{choiceConfirm},
	}

	result, err := f.svc.Open(context.Background(), conv, account, "11", entity.ParcelTypeParcel)
	require.NoError(t, err)
	assert.Equal(t, usecase.OpenResultOpened, result)
}

func TestCompartmentService_Open_WaitDeadlines(t *testing.T) {
	f := newOpenerFixture(t)
	account := testAccount(entity.ConsentGranted)

	f.client.EXPECT().
		FetchParcel(mock.Anything, testPhone, "1001", entity.ParcelTypeParcel).
		Return(readyParcel(), nil)
	f.accountRepo.EXPECT().
		UpdateLocationState(mock.Anything, testTelegramID, machineLat, machineLon, mock.AnythingOfType("time.Time")).
		Return(nil)

	conv := &scriptedConversation{
		messages: []*service.Incoming{{Location: &service.Location{Latitude: machineLat, Longitude: machineLon}}},
		choices:  []string{choiceDecline},
	}

	_, err := f.svc.Open(context.Background(), conv, account, "1001", entity.ParcelTypeParcel)
	require.NoError(t, err)

	// The location share waits on the input deadline; the confirm button
	// waits on the shorter choice deadline.
	cfg := newTestConfig()
	assert.Equal(t, []time.Duration{cfg.Telegram.InputTimeout}, conv.messageWaits)
	assert.Equal(t, []time.Duration{cfg.Telegram.ChoiceTimeout}, conv.choiceWaits)
}

func TestCompartmentService_Open_FetchNotFound(t *testing.T) {
	f := newOpenerFixture(t)
	account := testAccount(entity.ConsentGranted)

	f.client.EXPECT().
		FetchParcel(mock.Anything, testPhone, "1001", entity.ParcelTypeParcel).
		Return(nil, service.ErrParcelNotFound)

	conv := &scriptedConversation{}

	// The client sentinel must come back as the application error so the
	// user gets the not-found reply instead of the generic one.
	result, err := f.svc.Open(context.Background(), conv, account, "1001", entity.ParcelTypeParcel)
	assert.ErrorIs(t, err, domainerrors.ErrParcelNotFound)
	assert.Empty(t, result)
	assert.Empty(t, conv.texts())
}

func TestCompartmentService_Open_UnlockFails(t *testing.T) {
	f := newOpenerFixture(t)
	account := testAccount(entity.ConsentGranted)

	parcel := readyParcel()

	f.client.EXPECT().
		FetchParcel(mock.Anything, testPhone, "1001", entity.ParcelTypeParcel).
		Return(parcel, nil)
	f.accountRepo.EXPECT().
		UpdateLocationState(mock.Anything, testTelegramID, machineLat, machineLon, mock.AnythingOfType("time.Time")).
		Return(nil)
	f.client.EXPECT().
		Unlock(mock.Anything, testPhone, parcel).
		Return(nil, assert.AnError)

	conv := &scriptedConversation{
		messages: []*service.Incoming{{Location: &service.Location{Latitude: machineLat, Longitude: machineLon}}},
		choices:  []string{choiceConfirm},
	}

	result, err := f.svc.Open(context.Background(), conv, account, "1001", entity.ParcelTypeParcel)
	require.NoError(t, err)
	assert.Equal(t, usecase.OpenResultUnlockFailed, result)
	assert.Contains(t, conv.texts(), msgUnlockFailed)
}

func TestCompartmentService_Open_UnknownChoice(t *testing.T) {
	f := newOpenerFixture(t)
	account := testAccount(entity.ConsentGranted)

	f.client.EXPECT().
		FetchParcel(mock.Anything, testPhone, "1001", entity.ParcelTypeParcel).
		Return(readyParcel(), nil)
	f.accountRepo.EXPECT().
		UpdateLocationState(mock.Anything, testTelegramID, machineLat, machineLon, mock.AnythingOfType("time.Time")).
		Return(nil)

	conv := &scriptedConversation{
		messages: []*service.Incoming{{Location: &service.Location{Latitude: machineLat, Longitude: machineLon}}},
		choices:  []string{"open:1001"},
	}

	result, err := f.svc.Open(context.Background(), conv, account, "1001", entity.ParcelTypeParcel)
	require.NoError(t, err)
	assert.Equal(t, usecase.OpenResultInvalidInput, result)
	assert.Contains(t, conv.texts(), msgUnknownChoice)
}
