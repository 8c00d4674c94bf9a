package postgres

import (
	"context"

	"boxbot/internal/domain/repository"
	"boxbot/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// parcelArchiveRepository implements repository.ParcelArchiveRepository using GORM.
type parcelArchiveRepository struct {
	db *gorm.DB
}

// NewParcelArchiveRepository is the constructor for parcelArchiveRepository.
func NewParcelArchiveRepository(db *gorm.DB) repository.ParcelArchiveRepository {
	return &parcelArchiveRepository{db: db}
}

// Append stores a raw parcel payload snapshot. Rows are never updated.
func (repo *parcelArchiveRepository) Append(ctx context.Context, record *repository.ParcelArchiveRecord) error {
	recordM := &model.ParcelArchiveModel{
		TelegramID:     record.TelegramID,
		PhoneNumber:    record.PhoneNumber,
		ShipmentNumber: record.ShipmentNumber,
		ParcelType:     string(record.ParcelType),
		Payload:        record.Payload,
		FetchedAt:      record.FetchedAt,
	}

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return errors.Wrap(err, "failed to append parcel archive record")
	}

	return nil
}
