package service

import (
	"context"
	"time"
)

// CompartmentOpenedEvent is emitted after a successful remote unlock.
type CompartmentOpenedEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	TelegramID     int64     `json:"telegram_id"`
	ShipmentNumber string    `json:"shipment_number"`
	Machine        string    `json:"machine"`
	Proximity      string    `json:"proximity"` // Policy outcome at confirm time (in_range, out_of_range, skipped).
	OpenedAt       time.Time `json:"opened_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCompartmentOpened publishes a compartment-opened event for async consumers.
	PublishCompartmentOpened(ctx context.Context, event *CompartmentOpenedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
