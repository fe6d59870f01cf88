package notificationRepo

import (
	"context"

	"cleansync/models"
)

// NotificationRepository defines persistence operations for notification
// records. Mutations are scoped to the owner: a notification id belonging to
// another user behaves as not found.
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	ListByUser(ctx context.Context, userID string) ([]models.Notification, error)
	SetRead(ctx context.Context, userID, notificationID string, read bool) error
	Delete(ctx context.Context, userID, notificationID string) error
}
