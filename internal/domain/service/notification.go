package service

import "context"

// NotificationService sends push notifications to customer devices.
// It is optional; when no provider is configured the usecase layer skips it.
type NotificationService interface {
	// SendSingleNotification sends a push notification to a single device token.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
