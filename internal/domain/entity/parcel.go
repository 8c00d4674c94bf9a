// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// ParcelStatus is the upstream parcel-machine API status of a shipment.
type ParcelStatus string

// Statuses reported by the parcel-machine API.
const (
	StatusCreated                     ParcelStatus = "CREATED"
	StatusConfirmed                   ParcelStatus = "CONFIRMED"
	StatusAdoptedAtSortingCenter      ParcelStatus = "ADOPTED_AT_SORTING_CENTER"
	StatusAdoptedAtSourceBranch       ParcelStatus = "ADOPTED_AT_SOURCE_BRANCH"
	StatusCollectedFromSender         ParcelStatus = "COLLECTED_FROM_SENDER"
	StatusDispatchedBySender          ParcelStatus = "DISPATCHED_BY_SENDER"
	StatusDispatchedBySenderToPOK     ParcelStatus = "DISPATCHED_BY_SENDER_TO_POK"
	StatusSentFromSourceBranch        ParcelStatus = "SENT_FROM_SOURCE_BRANCH"
	StatusTakenByCourier              ParcelStatus = "TAKEN_BY_COURIER"
	StatusTakenByCourierFromPOK       ParcelStatus = "TAKEN_BY_COURIER_FROM_POK"
	StatusOutForDelivery              ParcelStatus = "OUT_FOR_DELIVERY"
	StatusOutForDeliveryToAddress     ParcelStatus = "OUT_FOR_DELIVERY_TO_ADDRESS"
	StatusReadyToPickup               ParcelStatus = "READY_TO_PICKUP"
	StatusStackInBoxMachine           ParcelStatus = "STACK_IN_BOX_MACHINE"
	StatusStackInCustomerServicePoint ParcelStatus = "STACK_IN_CUSTOMER_SERVICE_POINT"
	StatusPickupReminderSent          ParcelStatus = "PICKUP_REMINDER_SENT"
	StatusPickupReminderSentAddress   ParcelStatus = "PICKUP_REMINDER_SENT_ADDRESS"
	StatusDelivered                   ParcelStatus = "DELIVERED"
	StatusReturnedToSender            ParcelStatus = "RETURNED_TO_SENDER"
)

// ParcelType distinguishes how a shipment relates to the account that
// queries it. Tracked parcels are someone else's shipments followed by
// their number only.
type ParcelType string

const (
	ParcelTypeParcel  ParcelType = "PARCEL"
	ParcelTypeTracked ParcelType = "TRACKED"
	ParcelTypeSent    ParcelType = "SENT"
)

// PickupPoint describes the parcel machine (or service point) a shipment
// is stored at.
type PickupPoint struct {
	Name           string  // Machine identifier, e.g. "WAW01M".
	Latitude       float64 // Geographic latitude of the machine.
	Longitude      float64 // Geographic longitude of the machine.
	City           string
	Street         string
	BuildingNumber string
	PostCode       string
	Description    string // Human-readable placement hint, e.g. "by the mall entrance".
}

// CompartmentLocation is the physical locker cell position. It is only
// known once the upstream API has unlocked (or is ready to unlock) the
// compartment.
type CompartmentLocation struct {
	Side   string
	Row    string
	Column string
}

// Parcel is an immutable snapshot of a shipment as fetched from the
// parcel-machine API at a point in time. It is never mutated; any
// state-changing action (such as a compartment unlock) supersedes it
// with a fresh fetch.
type Parcel struct {
	ShipmentNumber string
	Type           ParcelType
	Status         ParcelStatus
	SenderName     string
	PickupPoint    *PickupPoint // Nil while the shipment is in transit.

	// Multicompartment shipments span several locker cells. Exactly one
	// member of the group is flagged as main and represents the group.
	IsMultiCompartment     bool
	IsMainMultiCompartment bool
	MultiCompartmentID     string // Opaque group id shared by siblings.

	OpenCode            string               // Manual open code shown at the machine keypad.
	QRPayload           string               // Raw payload encoded into the pickup QR code.
	CompartmentLocation *CompartmentLocation // Nil until unlocked/ready.

	StoredDate *time.Time
	ExpiryDate *time.Time
	Shareable  bool

	// RawPayload holds the unparsed API response body for this parcel.
	// It is persisted verbatim by the consent-gated archive hook.
	RawPayload []byte
}

// InGroup reports whether the parcel belongs to a multicompartment group.
func (p *Parcel) InGroup() bool {
	return p.IsMultiCompartment && p.MultiCompartmentID != ""
}
