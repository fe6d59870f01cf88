package booking

import (
	"context"
	"fmt"
	"time"

	"cleansync/config"
	"cleansync/models"
	"cleansync/utils"

	"go.uber.org/zap"
)

// ListBookings returns every booking owned by the user.
func (svc *DefaultSessionService) ListBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return svc.Repo.ListByUser(ctx, userID)
}

// Reschedule patches the scheduled instant of an existing booking. The target
// must satisfy the same window and future rules the draft selector enforces.
func (svc *DefaultSessionService) Reschedule(ctx context.Context, bookingID, userID, scheduledAt string) (*models.Booking, error) {
	booking, err := svc.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, NewBookingError("booking not found")
	}

	cfg := config.AppConfig
	normalized, err := ValidateScheduledAt(scheduledAt, cfg.BookingOpenHour, cfg.BookingCloseHour, time.Now())
	if err != nil {
		return nil, err
	}

	if err := svc.Repo.UpdateScheduledAt(ctx, bookingID, normalized); err != nil {
		return nil, err
	}
	booking.ScheduledAt = normalized

	if err := svc.NotificationSvc.Notify(ctx, userID, "booking_rescheduled",
		"Booking rescheduled",
		fmt.Sprintf("Your carpet cleaning was moved to %s", normalized),
		map[string]string{"bookingId": bookingID},
	); err != nil {
		utils.GetLogger().Warn("Reschedule: notification failed",
			zap.String("bookingID", bookingID), zap.Error(err))
	}
	return booking, nil
}

// UpdateProgressStage moves a booking through the fulfilment stages
// (booked, collected, cleaned, returned) and notifies the owner. Only the
// owner may advance the stage.
func (svc *DefaultSessionService) UpdateProgressStage(ctx context.Context, bookingID, userID, stage string) (*models.Booking, error) {
	if !models.ValidProgressStage(stage) {
		return nil, NewBookingError("unknown progress stage")
	}
	booking, err := svc.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, NewBookingError("booking not found")
	}

	if err := svc.Repo.UpdateProgressStage(ctx, bookingID, stage); err != nil {
		return nil, err
	}
	booking.ProgressStage = stage

	if err := svc.NotificationSvc.Notify(ctx, booking.UserID, "progress_update",
		"Booking update",
		fmt.Sprintf("Your carpet is now %s", stage),
		map[string]string{"bookingId": bookingID, "stage": stage},
	); err != nil {
		utils.GetLogger().Warn("UpdateProgressStage: notification failed",
			zap.String("bookingID", bookingID), zap.Error(err))
	}
	return booking, nil
}

// CancelBooking removes a booking owned by the user.
func (svc *DefaultSessionService) CancelBooking(ctx context.Context, bookingID, userID string) error {
	booking, err := svc.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.UserID != userID {
		return NewBookingError("booking not found")
	}
	if err := svc.Repo.Delete(ctx, bookingID); err != nil {
		return err
	}

	if err := svc.NotificationSvc.Notify(ctx, userID, "booking_cancelled",
		"Booking cancelled",
		fmt.Sprintf("Your booking for %s was cancelled", booking.ScheduledAt),
		map[string]string{"bookingId": bookingID},
	); err != nil {
		utils.GetLogger().Warn("CancelBooking: notification failed",
			zap.String("bookingID", bookingID), zap.Error(err))
	}
	return nil
}
