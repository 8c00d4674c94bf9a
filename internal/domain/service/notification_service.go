package service

import (
	"context"
)

// NotificationService defines the interface for push notification services.
// The bot's primary notification channel is the chat itself; push is an
// optional extra for accounts that registered a companion device token.
type NotificationService interface {
	// SendSingleNotification sends a push notification to a single device token
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
