package inpost

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"boxbot/config"
	"boxbot/internal/domain/entity"
	"boxbot/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.Handler) (service.ParcelClient, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.ParcelAPI = config.ParcelAPIConfig{
		BaseURL: server.URL,
		Token:   "test-token",
		Timeout: 5 * time.Second,
	}

	return NewClient(cfg, newDiscardLogger()), server
}

func TestFetchParcels(t *testing.T) {
	var gotAuth, gotPhone, gotPath, gotQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPhone = r.Header.Get("X-Phone-Number")
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("shipmentType")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"parcels": [
				{
					"shipmentNumber": "1001",
					"shipmentType": "PARCEL",
					"status": "READY_TO_PICKUP",
					"sender": {"name": "Shop"},
					"pickUpPoint": {
						"name": "KRA01M",
						"location": {"latitude": 50.06, "longitude": 19.94},
						"addressDetails": {"city": "Krakow", "street": "Main", "buildingNumber": "1", "postCode": "30-001"},
						"locationDescription": "by the entrance"
					},
					"openCode": "123456",
					"qrCode": "P|1001|123456"
				},
				{
					"shipmentNumber": "1002",
					"shipmentType": "PARCEL",
					"status": "DELIVERED",
					"multiCompartment": {"uuid": "grp-1", "main": true}
				}
			]
		}`))
	}))

	parcels, err := client.FetchParcels(context.Background(), "48123456789", entity.ParcelTypeParcel)
	require.NoError(t, err)
	require.Len(t, parcels, 2)

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "48123456789", gotPhone)
	assert.Equal(t, "/v1/parcels", gotPath)
	assert.Equal(t, "PARCEL", gotQuery)

	first := parcels[0]
	assert.Equal(t, "1001", first.ShipmentNumber)
	assert.Equal(t, entity.StatusReadyToPickup, first.Status)
	assert.Equal(t, "Shop", first.SenderName)
	require.NotNil(t, first.PickupPoint)
	assert.Equal(t, "KRA01M", first.PickupPoint.Name)
	assert.InDelta(t, 50.06, first.PickupPoint.Latitude, 1e-9)
	assert.Equal(t, "Krakow", first.PickupPoint.City)
	assert.Equal(t, "by the entrance", first.PickupPoint.Description)
	assert.Equal(t, "P|1001|123456", first.QRPayload)
	assert.JSONEq(t, `{
		"shipmentNumber": "1001",
		"shipmentType": "PARCEL",
		"status": "READY_TO_PICKUP",
		"sender": {"name": "Shop"},
		"pickUpPoint": {
			"name": "KRA01M",
			"location": {"latitude": 50.06, "longitude": 19.94},
			"addressDetails": {"city": "Krakow", "street": "Main", "buildingNumber": "1", "postCode": "30-001"},
			"locationDescription": "by the entrance"
		},
		"openCode": "123456",
		"qrCode": "P|1001|123456"
	}`, string(first.RawPayload))

	second := parcels[1]
	assert.True(t, second.InGroup())
	assert.True(t, second.IsMainMultiCompartment)
	assert.Equal(t, "grp-1", second.MultiCompartmentID)
}

func TestFetchParcel_NotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	parcel, err := client.FetchParcel(context.Background(), "48123456789", "missing", entity.ParcelTypeParcel)
	assert.Nil(t, parcel)
	assert.ErrorIs(t, err, service.ErrParcelNotFound)
}

func TestFetchParcel_Unauthorized(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.FetchParcel(context.Background(), "48123456789", "1001", entity.ParcelTypeParcel)
	assert.ErrorIs(t, err, service.ErrNotAuthenticated)
}

func TestFetchGroup(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"parcels": [
			{"shipmentNumber": "2001", "multiCompartment": {"uuid": "grp-2", "main": true}},
			{"shipmentNumber": "2002", "multiCompartment": {"uuid": "grp-2", "main": false}}
		]}`))
	}))

	parcels, err := client.FetchGroup(context.Background(), "48123456789", "grp-2")
	require.NoError(t, err)
	require.Len(t, parcels, 2)
	assert.Equal(t, "/v1/multicompartments/grp-2", gotPath)
	assert.True(t, parcels[0].IsMainMultiCompartment)
	assert.False(t, parcels[1].IsMainMultiCompartment)
}

func TestUnlock(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"shipmentNumber": "1001",
			"status": "DELIVERED",
			"compartment": {"location": {"side": "L", "row": "2", "column": "3"}}
		}`))
	}))

	opened, err := client.Unlock(context.Background(), "48123456789", &entity.Parcel{
		ShipmentNumber: "1001",
		OpenCode:       "123456",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/v1/parcels/1001/open", gotPath)
	require.NotNil(t, opened.CompartmentLocation)
	assert.Equal(t, "L", opened.CompartmentLocation.Side)
	assert.Equal(t, "2", opened.CompartmentLocation.Row)
	assert.Equal(t, "3", opened.CompartmentLocation.Column)
}

func TestFetchFriends(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"friends": [
			{"uuid": "friend-1", "name": "Anna", "phoneNumber": "600100200"},
			{"uuid": "friend-2", "name": "Piotr", "phoneNumber": "600300400"}
		]}`))
	}))

	friends, err := client.FetchFriends(context.Background(), "48123456789", "1001")
	require.NoError(t, err)
	require.Len(t, friends, 2)
	assert.Equal(t, "/v1/parcels/1001/friends", gotPath)
	assert.Equal(t, "friend-1", friends[0].ID)
	assert.Equal(t, "Anna", friends[0].Name)
	assert.Equal(t, "600100200", friends[0].PhoneNumber)
}

func TestShare(t *testing.T) {
	var gotMethod, gotPath, gotBody string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)

		w.WriteHeader(http.StatusOK)
	}))

	err := client.Share(context.Background(), "48123456789", "1001", "friend-1")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/v1/parcels/1001/share", gotPath)
	assert.JSONEq(t, `{"friendUuid": "friend-1"}`, gotBody)
}

func TestShare_ServerError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	err := client.Share(context.Background(), "48123456789", "1001", "friend-1")
	assert.ErrorIs(t, err, service.ErrUpstreamAPI)
}

func TestUnlock_ServerError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.Unlock(context.Background(), "48123456789", &entity.Parcel{ShipmentNumber: "1001"})
	assert.ErrorIs(t, err, service.ErrUpstreamAPI)
}
