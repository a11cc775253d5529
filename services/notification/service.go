package notification

import (
	"context"
	"fmt"
	"time"

	notificationRepo "smartpark/database/repository/notification"
	userRepo "smartpark/database/repository/user"
	"smartpark/models"
	"smartpark/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo  notificationRepo.NotificationRepository
	Users userRepo.UserRepository
	// Push is nil when FCM is not configured; stored notifications still work.
	Push *messaging.Client
}

// NotifyReserved records a RESERVED notification with the data the
// notifications screen renders (car plate, amount, hours left).
func (s *DefaultNotificationService) NotifyReserved(ctx context.Context, userID, lotName, slotID string, amountPaidCents int64, hours int) error {
	carPlate := ""
	if u, err := s.Users.GetByID(userID); err == nil && u != nil {
		carPlate = u.CarPlate
	}

	message := fmt.Sprintf("Slot %s at %s is yours for the next %dh.", slotID, lotName, hours)
	n := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      models.NotificationReserved,
		Message:   message,
		IsRead:    false,
		Timestamp: time.Now(),
		Data: map[string]any{
			"carPlate":        carPlate,
			"amountPaidCents": amountPaidCents,
			"hoursLeft":       hours,
		},
	}
	if err := s.Repo.Create(n); err != nil {
		return fmt.Errorf("store reserved notification: %w", err)
	}

	s.push(ctx, userID, "Reservation confirmed", message)
	return nil
}

// NotifyExpired records a TIME_EXPIRED notification when the reservation's
// window runs out.
func (s *DefaultNotificationService) NotifyExpired(ctx context.Context, userID, lotName, slotID string) error {
	message := fmt.Sprintf("Your time at %s (slot %s) has expired.", lotName, slotID)
	n := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      models.NotificationTimeExpired,
		Message:   message,
		IsRead:    false,
		Timestamp: time.Now(),
		Data: map[string]any{
			"lotName": lotName,
			"slotId":  slotID,
		},
	}
	if err := s.Repo.Create(n); err != nil {
		return fmt.Errorf("store expired notification: %w", err)
	}

	s.push(ctx, userID, "Parking time expired", message)
	return nil
}

// ListForUser returns a user's notifications, newest first.
func (s *DefaultNotificationService) ListForUser(userID string) ([]models.Notification, error) {
	return s.Repo.GetByUser(userID)
}

// Dismiss deletes a notification. "Mark as left" routes here too; the two
// actions are equivalent.
func (s *DefaultNotificationService) Dismiss(id, userID string) error {
	return s.Repo.Delete(id, userID)
}

// push sends an FCM message if the user has a registered token. Push
// delivery is never load-bearing: any failure is logged and dropped.
func (s *DefaultNotificationService) push(ctx context.Context, userID, title, body string) {
	if s.Push == nil {
		return
	}
	logger := utils.GetLogger()

	u, err := s.Users.GetByID(userID)
	if err != nil || u == nil || u.FCMToken == "" {
		return
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}
	if _, err := s.Push.Send(ctx, msg); err != nil {
		logger.Warn("failed to send push notification",
			zap.String("userId", userID), zap.Error(err))
	}
}
