package user

import (
	"context"

	userRepo "cleansync/database/repository/user"
	"cleansync/models"
)

// AuthResult is returned after a successful registration or sign-in.
type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// UserService manages CleanSync accounts.
type UserService interface {
	Register(ctx context.Context, fullName, email, phone, password string) (*AuthResult, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResult, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID, fullName, phone, address string) (*models.User, error)
	UpdateFCMToken(ctx context.Context, userID, fcmToken string) error
	Delete(ctx context.Context, userID string) error
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
