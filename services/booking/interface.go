package booking

import (
	"context"

	bookingRepo "cleansync/database/repository/booking"
	"cleansync/models"
	"cleansync/services/mail"
	"cleansync/services/notification"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// ScheduleUpdate is one edit to the draft's date/time selection.
// Exactly one of Reset, Date, Hour should be set.
type ScheduleUpdate struct {
	Date  *string `json:"date,omitempty"`
	Hour  *int    `json:"hour,omitempty"`
	Reset bool    `json:"reset,omitempty"`
}

// ContactDetails are the contact/address fields required to finalize a draft.
type ContactDetails struct {
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Address  string `json:"address" binding:"required"`
}

// SessionService manages booking draft sessions and the booking lifecycle.
type SessionService interface {
	InitiateSession(ctx context.Context, userID string) (*models.BookingDraft, error)
	GetSession(ctx context.Context, sessionID, userID string) (*models.BookingDraft, error)
	SetDimensions(ctx context.Context, sessionID, userID, length, width string) (*models.BookingDraft, error)
	ApplyCoupon(ctx context.Context, sessionID, userID, code string) (*models.BookingDraft, string, error)
	UpdateSchedule(ctx context.Context, sessionID, userID string, upd ScheduleUpdate) (*models.BookingDraft, error)
	AttachPhoto(ctx context.Context, sessionID, userID, photoRef string, analysis *models.CarpetAnalysis) (*models.BookingDraft, error)
	CancelSession(ctx context.Context, sessionID, userID string) error

	ConfirmBooking(ctx context.Context, sessionID, userID string, contact ContactDetails) (*models.Booking, error)
	ListBookings(ctx context.Context, userID string) ([]models.Booking, error)
	Reschedule(ctx context.Context, bookingID, userID, scheduledAt string) (*models.Booking, error)
	UpdateProgressStage(ctx context.Context, bookingID, userID, stage string) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID, userID string) error
}

// DefaultSessionService implements SessionService.
type DefaultSessionService struct {
	Cache           *redis.Client
	Repo            bookingRepo.BookingRepository
	NotificationSvc notification.NotificationService
	Mailer          mail.Mailer
	Reminders       *asynq.Client
}
