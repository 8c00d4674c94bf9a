package repository

import (
	"context"
	"time"

	"boxbot/internal/domain/entity"
)

// ParcelArchiveRecord is one raw parcel payload captured for a consenting
// user. Records are append-only; a shipment accumulates one record per
// fetch so the newest timestamp is the freshest snapshot.
type ParcelArchiveRecord struct {
	TelegramID     int64
	PhoneNumber    string
	ShipmentNumber string
	ParcelType     entity.ParcelType
	Payload        []byte
	FetchedAt      time.Time
}

// ParcelArchiveRepository persists raw parcel-machine API payloads for
// users who opted into data collection.
type ParcelArchiveRepository interface {
	// Append stores a new archive record. It never updates existing rows.
	Append(ctx context.Context, record *ParcelArchiveRecord) error
}
