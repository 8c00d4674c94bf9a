package inpost

import (
	"time"

	"boxbot/internal/domain/entity"
)

// Wire DTOs for the parcel-machine API. Field names follow the upstream
// JSON contract, not the domain model.

type parcelDTO struct {
	ShipmentNumber   string                  `json:"shipmentNumber"`
	ShipmentType     string                  `json:"shipmentType"`
	Status           string                  `json:"status"`
	Sender           *senderDTO              `json:"sender"`
	PickUpPoint      *pickupPointDTO         `json:"pickUpPoint"`
	MultiCompartment *multiCompartmentDTO    `json:"multiCompartment"`
	OpenCode         string                  `json:"openCode"`
	QRCode           string                  `json:"qrCode"`
	Compartment      *compartmentDTO         `json:"compartment"`
	StoredDate       *time.Time              `json:"storedDate"`
	ExpiryDate       *time.Time              `json:"expiryDate"`
	Shareable        bool                    `json:"shareable"`
}

type senderDTO struct {
	Name string `json:"name"`
}

type pickupPointDTO struct {
	Name                string          `json:"name"`
	Location            locationDTO     `json:"location"`
	AddressDetails      *addressDTO     `json:"addressDetails"`
	LocationDescription string          `json:"locationDescription"`
}

type locationDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type addressDTO struct {
	City           string `json:"city"`
	Street         string `json:"street"`
	BuildingNumber string `json:"buildingNumber"`
	PostCode       string `json:"postCode"`
}

type multiCompartmentDTO struct {
	UUID string `json:"uuid"`
	Main bool   `json:"main"`
}

type compartmentDTO struct {
	Location *compartmentLocationDTO `json:"location"`
}

type compartmentLocationDTO struct {
	Side   string `json:"side"`
	Row    string `json:"row"`
	Column string `json:"column"`
}

type friendDTO struct {
	UUID        string `json:"uuid"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

// toParcelDomain converts a wire parcel into a domain entity, retaining the
// raw body for the consent-gated archive.
func toParcelDomain(dto *parcelDTO, raw []byte) *entity.Parcel {
	if dto == nil {
		return nil
	}

	parcel := &entity.Parcel{
		ShipmentNumber: dto.ShipmentNumber,
		Type:           entity.ParcelType(dto.ShipmentType),
		Status:         entity.ParcelStatus(dto.Status),
		OpenCode:       dto.OpenCode,
		QRPayload:      dto.QRCode,
		StoredDate:     dto.StoredDate,
		ExpiryDate:     dto.ExpiryDate,
		Shareable:      dto.Shareable,
		RawPayload:     raw,
	}

	if dto.Sender != nil {
		parcel.SenderName = dto.Sender.Name
	}

	if dto.PickUpPoint != nil {
		point := &entity.PickupPoint{
			Name:        dto.PickUpPoint.Name,
			Latitude:    dto.PickUpPoint.Location.Latitude,
			Longitude:   dto.PickUpPoint.Location.Longitude,
			Description: dto.PickUpPoint.LocationDescription,
		}
		if addr := dto.PickUpPoint.AddressDetails; addr != nil {
			point.City = addr.City
			point.Street = addr.Street
			point.BuildingNumber = addr.BuildingNumber
			point.PostCode = addr.PostCode
		}
		parcel.PickupPoint = point
	}

	if dto.MultiCompartment != nil {
		parcel.IsMultiCompartment = true
		parcel.IsMainMultiCompartment = dto.MultiCompartment.Main
		parcel.MultiCompartmentID = dto.MultiCompartment.UUID
	}

	if dto.Compartment != nil && dto.Compartment.Location != nil {
		parcel.CompartmentLocation = &entity.CompartmentLocation{
			Side:   dto.Compartment.Location.Side,
			Row:    dto.Compartment.Location.Row,
			Column: dto.Compartment.Location.Column,
		}
	}

	return parcel
}
