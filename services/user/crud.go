package user

import (
	"context"
	"fmt"

	"cleansync/models"
)

// GetByID returns the account profile.
func (svc *DefaultUserService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	return svc.Repo.GetByID(ctx, userID)
}

// UpdateProfile replaces the mutable profile fields.
func (svc *DefaultUserService) UpdateProfile(ctx context.Context, userID, fullName, phone, address string) (*models.User, error) {
	u, err := svc.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if fullName != "" {
		u.FullName = fullName
	}
	if phone != "" {
		u.Phone = phone
	}
	if address != "" {
		u.Address = address
	}
	if err := svc.Repo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return u, nil
}

// UpdateFCMToken stores the device push registration token.
func (svc *DefaultUserService) UpdateFCMToken(ctx context.Context, userID, fcmToken string) error {
	return svc.Repo.UpdateFCMToken(ctx, userID, fcmToken)
}

// Delete removes the account.
func (svc *DefaultUserService) Delete(ctx context.Context, userID string) error {
	return svc.Repo.Delete(ctx, userID)
}
