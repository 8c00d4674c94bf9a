package impl

import (
	"context"
	"testing"

	"boxbot/internal/domain/entity"
	domainerrors "boxbot/internal/domain/errors"
	"boxbot/internal/domain/service"
	mockSvc "boxbot/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordingConsent records the shipment numbers passed to the archive
// hook; Require and Set are never exercised through the parcel service.
type recordingConsent struct {
	archived []string
}

func (c *recordingConsent) Require(context.Context, int64) error { return nil }

func (c *recordingConsent) Set(context.Context, int64, bool) error { return nil }

func (c *recordingConsent) Archive(_ context.Context, _ int64, _ string, parcel *entity.Parcel) {
	c.archived = append(c.archived, parcel.ShipmentNumber)
}

type parcelFixture struct {
	client  *mockSvc.MockParcelClient
	qrcode  *mockSvc.MockQRCodeService
	consent *recordingConsent
	svc     *parcelService
}

func newParcelFixture(t *testing.T) *parcelFixture {
	t.Helper()

	logger := newDiscardLogger()
	client := mockSvc.NewMockParcelClient(t)
	qrcode := mockSvc.NewMockQRCodeService(t)
	consent := &recordingConsent{}

	svc := NewParcelService(client, NewGroupingService(client, logger), consent, qrcode, logger).(*parcelService)

	return &parcelFixture{client: client, qrcode: qrcode, consent: consent, svc: svc}
}

func statusParcel(number string, status entity.ParcelStatus) *entity.Parcel {
	return &entity.Parcel{ShipmentNumber: number, Status: status}
}

func TestParcelService_ListPending(t *testing.T) {
	f := newParcelFixture(t)
	account := testAccount(entity.ConsentGranted)

	f.client.EXPECT().
		FetchParcels(mock.Anything, testPhone, entity.ParcelTypeParcel).
		Return([]*entity.Parcel{
			statusParcel("1", entity.StatusReadyToPickup),
			statusParcel("2", entity.StatusDelivered),
			statusParcel("3", entity.StatusOutForDelivery),
			statusParcel("4", entity.StatusReturnedToSender),
		}, nil)

	groups, err := f.svc.ListPending(context.Background(), account)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "1", groups[0].Representative.ShipmentNumber)
	assert.Equal(t, "3", groups[1].Representative.ShipmentNumber)

	// Terminal-state parcels are neither shown nor archived.
	assert.Equal(t, []string{"1", "3"}, f.consent.archived)
}

func TestParcelService_ListPending_Empty(t *testing.T) {
	f := newParcelFixture(t)

	f.client.EXPECT().
		FetchParcels(mock.Anything, testPhone, entity.ParcelTypeParcel).
		Return([]*entity.Parcel{statusParcel("2", entity.StatusDelivered)}, nil)

	groups, err := f.svc.ListPending(context.Background(), testAccount(entity.ConsentGranted))
	assert.ErrorIs(t, err, domainerrors.ErrParcelNotFound)
	assert.Nil(t, groups)
}

func TestParcelService_ListPending_GroupsMulticompartment(t *testing.T) {
	f := newParcelFixture(t)

	main := groupMember("10", "grp-1", true)
	satellite := groupMember("11", "grp-1", false)

	f.client.EXPECT().
		FetchParcels(mock.Anything, testPhone, entity.ParcelTypeParcel).
		Return([]*entity.Parcel{main, satellite}, nil)
	f.client.EXPECT().
		FetchGroup(mock.Anything, testPhone, "grp-1").
		Return([]*entity.Parcel{main, satellite}, nil).
		Once()

	groups, err := f.svc.ListPending(context.Background(), testAccount(entity.ConsentGranted))
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "10", groups[0].Representative.ShipmentNumber)
	require.Len(t, groups[0].Companions, 1)
	assert.Equal(t, "11", groups[0].Companions[0].ShipmentNumber)
}

func TestParcelService_ListDelivered(t *testing.T) {
	f := newParcelFixture(t)

	f.client.EXPECT().
		FetchParcels(mock.Anything, testPhone, entity.ParcelTypeParcel).
		Return([]*entity.Parcel{
			statusParcel("1", entity.StatusReadyToPickup),
			statusParcel("2", entity.StatusDelivered),
		}, nil)

	delivered, err := f.svc.ListDelivered(context.Background(), testAccount(entity.ConsentGranted))
	require.NoError(t, err)
	require.Len(t, delivered, 1)
	assert.Equal(t, "2", delivered[0].ShipmentNumber)
	assert.Equal(t, []string{"2"}, f.consent.archived)
}

func TestParcelService_ListDelivered_Empty(t *testing.T) {
	f := newParcelFixture(t)

	f.client.EXPECT().
		FetchParcels(mock.Anything, testPhone, entity.ParcelTypeParcel).
		Return(nil, nil)

	delivered, err := f.svc.ListDelivered(context.Background(), testAccount(entity.ConsentGranted))
	assert.ErrorIs(t, err, domainerrors.ErrParcelNotFound)
	assert.Nil(t, delivered)
}

func TestParcelService_Get(t *testing.T) {
	f := newParcelFixture(t)

	parcel := statusParcel("1", entity.StatusReadyToPickup)
	f.client.EXPECT().
		FetchParcel(mock.Anything, testPhone, "1", entity.ParcelTypeParcel).
		Return(parcel, nil)

	group, err := f.svc.Get(context.Background(), testAccount(entity.ConsentGranted), "1")
	require.NoError(t, err)
	assert.Same(t, parcel, group.Representative)
	assert.Equal(t, []string{"1"}, f.consent.archived)
}

func TestParcelService_Get_NotFound(t *testing.T) {
	f := newParcelFixture(t)

	f.client.EXPECT().
		FetchParcel(mock.Anything, testPhone, "1", entity.ParcelTypeParcel).
		Return(nil, service.ErrParcelNotFound)

	group, err := f.svc.Get(context.Background(), testAccount(entity.ConsentGranted), "1")
	assert.ErrorIs(t, err, domainerrors.ErrParcelNotFound)
	assert.Nil(t, group)
	assert.Empty(t, f.consent.archived)
}

func TestParcelService_TranslatesClientSentinels(t *testing.T) {
	t.Run("unauthenticated list", func(t *testing.T) {
		f := newParcelFixture(t)

		f.client.EXPECT().
			FetchParcels(mock.Anything, testPhone, entity.ParcelTypeParcel).
			Return(nil, service.ErrNotAuthenticated)

		_, err := f.svc.ListPending(context.Background(), testAccount(entity.ConsentGranted))
		assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
	})

	t.Run("upstream failure on a single fetch", func(t *testing.T) {
		f := newParcelFixture(t)

		f.client.EXPECT().
			FetchParcel(mock.Anything, testPhone, "1", entity.ParcelTypeParcel).
			Return(nil, service.ErrUpstreamAPI)

		_, err := f.svc.OpenCode(context.Background(), testAccount(entity.ConsentGranted), "1")
		assert.ErrorIs(t, err, domainerrors.ErrUpstreamFailure)
	})
}

func TestParcelService_OpenCode(t *testing.T) {
	f := newParcelFixture(t)

	parcel := statusParcel("1", entity.StatusReadyToPickup)
	parcel.OpenCode = "482915"

	f.client.EXPECT().
		FetchParcel(mock.Anything, testPhone, "1", entity.ParcelTypeParcel).
		Return(parcel, nil)

	code, err := f.svc.OpenCode(context.Background(), testAccount(entity.ConsentGranted), "1")
	require.NoError(t, err)
	assert.Equal(t, "482915", code)
}

func TestParcelService_PickupQR(t *testing.T) {
	f := newParcelFixture(t)

	parcel := statusParcel("1", entity.StatusReadyToPickup)
	parcel.QRPayload = "P|1|482915"

	f.client.EXPECT().
		FetchParcel(mock.Anything, testPhone, "1", entity.ParcelTypeParcel).
		Return(parcel, nil)
	f.qrcode.EXPECT().
		GeneratePickupQR(parcel).
		Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	image, err := f.svc.PickupQR(context.Background(), testAccount(entity.ConsentGranted), "1")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, image)
}

func TestParcelService_PickupQR_GenerateFails(t *testing.T) {
	f := newParcelFixture(t)

	parcel := statusParcel("1", entity.StatusReadyToPickup)

	f.client.EXPECT().
		FetchParcel(mock.Anything, testPhone, "1", entity.ParcelTypeParcel).
		Return(parcel, nil)
	f.qrcode.EXPECT().
		GeneratePickupQR(parcel).
		Return(nil, assert.AnError)

	image, err := f.svc.PickupQR(context.Background(), testAccount(entity.ConsentGranted), "1")
	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, image)
}
