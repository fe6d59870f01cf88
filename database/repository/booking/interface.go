package bookingRepo

import (
	"context"

	"cleansync/models"
)

// BookingRepository defines persistence operations for booking aggregates.
// Implementations own the document store; services receive this interface so
// tests can substitute an in-memory fake.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	UpdateScheduledAt(ctx context.Context, bookingID, scheduledAt string) error
	UpdateProgressStage(ctx context.Context, bookingID, stage string) error
	Delete(ctx context.Context, bookingID string) error
}
