package userRepo

import (
	"context"

	"cleansync/models"
)

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdateTokenHash(ctx context.Context, userID, tokenHash string) error
	UpdateFCMToken(ctx context.Context, userID, fcmToken string) error
	Delete(ctx context.Context, userID string) error
}
