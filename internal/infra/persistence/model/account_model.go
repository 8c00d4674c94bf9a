package model

import (
	"time"
)

// AccountModel mirrors the 'accounts' table. The Telegram user ID is the
// natural primary key: one chat identity owns exactly one account.
type AccountModel struct {
	TelegramID      int64  `gorm:"primaryKey;autoIncrement:false"`
	PhoneNumber     string `gorm:"type:varchar(32);not null"`
	GeocheckEnabled bool   `gorm:"not null;default:true"`
	DefaultMachine  string `gorm:"type:varchar(64)"`
	Notifications   bool   `gorm:"not null;default:true"`
	Consent         string `gorm:"type:varchar(16);not null;default:''"`
	Latitude        *float64
	Longitude       *float64
	LocationAt      *time.Time
	DeviceToken     string `gorm:"type:varchar(255)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
