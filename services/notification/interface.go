package notification

import (
	"context"

	notificationRepo "cleansync/database/repository/notification"
	userRepo "cleansync/database/repository/user"
	"cleansync/models"
)

// NotificationService records notifications and fans them out over FCM.
type NotificationService interface {
	Notify(ctx context.Context, userID, ntype, title, message string, data map[string]string) error
	SendPush(ctx context.Context, userID, title, body string, data map[string]string) error
	List(ctx context.Context, userID string) ([]models.Notification, error)
	SetRead(ctx context.Context, userID, notificationID string, read bool) error
	Delete(ctx context.Context, userID, notificationID string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo  notificationRepo.NotificationRepository
	Users userRepo.UserRepository
}
