package model

import (
	"time"
)

// ParcelArchiveModel mirrors the 'parcel_archive' table. Rows are append
// only: every upstream fetch of a consenting user's parcel adds one, so the
// table doubles as an audit trail of what the bot saw and when.
type ParcelArchiveModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	TelegramID     int64  `gorm:"index;not null"`
	PhoneNumber    string `gorm:"type:varchar(32);not null"`
	ShipmentNumber string `gorm:"type:varchar(64);index;not null"`
	ParcelType     string `gorm:"type:varchar(16);not null"`
	Payload        []byte `gorm:"type:jsonb"`
	FetchedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ParcelArchiveModel) TableName() string {
	return "parcel_archive"
}
