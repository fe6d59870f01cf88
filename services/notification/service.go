package notification

import (
	"context"
	"fmt"
	"time"

	"cleansync/models"
	"cleansync/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notify stores a notification record and delivers it over FCM. Push delivery
// is best effort: a failed or impossible push (no token, FCM down) is logged
// and does not fail the operation, the record is the source of truth.
func (s *DefaultNotificationService) Notify(ctx context.Context, userID, ntype, title, message string, data map[string]string) error {
	record := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      ntype,
		Title:     title,
		Message:   message,
		Read:      false,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(ctx, record); err != nil {
		return fmt.Errorf("Notify: failed to store notification: %w", err)
	}

	if err := s.SendPush(ctx, userID, title, message, data); err != nil {
		utils.GetLogger().Warn("Notify: push delivery failed",
			zap.String("userID", userID), zap.Error(err))
	}
	return nil
}

// SendPush looks up a user's FCM token and sends a push.
func (s *DefaultNotificationService) SendPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	if utils.FCMClient == nil {
		return fmt.Errorf("SendPush: FCM client not initialized")
	}

	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("SendPush: could not find user %s: %w", userID, err)
	}
	if u.FCMToken == "" {
		return fmt.Errorf("SendPush: user %s has no FCM token", userID)
	}

	if data == nil {
		data = map[string]string{}
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "carpet_booking",
				Sound:     "default",
			},
		},
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendPush: failed to send FCM message: %w", err)
	}
	return nil
}

// List returns the notification center contents for a user.
func (s *DefaultNotificationService) List(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// SetRead toggles the read flag of one notification owned by the user.
func (s *DefaultNotificationService) SetRead(ctx context.Context, userID, notificationID string, read bool) error {
	return s.Repo.SetRead(ctx, userID, notificationID, read)
}

// Delete removes one notification owned by the user.
func (s *DefaultNotificationService) Delete(ctx context.Context, userID, notificationID string) error {
	return s.Repo.Delete(ctx, userID, notificationID)
}
