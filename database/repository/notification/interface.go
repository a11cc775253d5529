package notificationRepo

import "smartpark/models"

// NotificationRepository defines data access for in-app notifications.
// Notifications are append-only except for deletion by their owner.
type NotificationRepository interface {
	Create(n *models.Notification) error
	GetByUser(userID string) ([]models.Notification, error)
	Delete(id, userID string) error
}
