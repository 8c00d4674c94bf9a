package service

import (
	"context"
	"errors"

	"boxbot/internal/domain/entity"
)

// Client errors surfaced by the parcel-machine API. The workflow maps
// each one to a fixed user-facing message and never retries; token
// refresh and transport retries are the client's own concern.
var (
	// ErrNotAuthenticated is returned when the stored credentials are no
	// longer accepted by the parcel-machine API.
	ErrNotAuthenticated = errors.New("not authenticated with the parcel-machine API")
	// ErrParcelNotFound is returned when the API knows no parcel for the
	// given shipment number.
	ErrParcelNotFound = errors.New("parcel not found")
	// ErrUpstreamAPI is returned for any other upstream failure.
	ErrUpstreamAPI = errors.New("parcel-machine API failure")
)

// ParcelClient defines the interface to the remote parcel-machine API.
// All returned parcels are point-in-time snapshots; callers must re-fetch
// after any state-changing operation.
type ParcelClient interface {
	// FetchParcels retrieves all parcels visible to the phone-number
	// identity, optionally filtered by type.
	FetchParcels(ctx context.Context, phoneNumber string, parcelType entity.ParcelType) ([]*entity.Parcel, error)

	// FetchParcel retrieves a single parcel by shipment number.
	FetchParcel(ctx context.Context, phoneNumber, shipmentNumber string, parcelType entity.ParcelType) (*entity.Parcel, error)

	// FetchGroup retrieves the full sibling set of a multicompartment group.
	FetchGroup(ctx context.Context, phoneNumber, groupID string) ([]*entity.Parcel, error)

	// Unlock opens the physical compartment holding the parcel. On
	// success it returns the refreshed parcel snapshot carrying the
	// compartment location; a nil parcel with nil error never occurs —
	// failures are reported as errors.
	Unlock(ctx context.Context, phoneNumber string, parcel *entity.Parcel) (*entity.Parcel, error)

	// FetchFriends lists the contacts the shipment can be shared with.
	FetchFriends(ctx context.Context, phoneNumber, shipmentNumber string) ([]*entity.Friend, error)

	// Share grants a friend access to the shipment.
	Share(ctx context.Context, phoneNumber, shipmentNumber, friendID string) error
}
