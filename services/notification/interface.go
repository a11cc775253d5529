package notification

import (
	"context"

	"smartpark/models"
)

// NotificationService stores in-app notifications and sends best-effort FCM
// pushes. It runs strictly after the reservation transaction has committed.
type NotificationService interface {
	NotifyReserved(ctx context.Context, userID, lotName, slotID string, amountPaidCents int64, hours int) error
	NotifyExpired(ctx context.Context, userID, lotName, slotID string) error
	ListForUser(userID string) ([]models.Notification, error)
	Dismiss(id, userID string) error
}
