package booking

import (
	"context"
	"fmt"
	"time"

	"cleansync/config"
	"cleansync/models"
	"cleansync/services/tasks"
	"cleansync/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConfirmBooking finalizes a completed draft into a persisted Booking,
// discards the session, and fans out the confirmation (record + push, email,
// scheduled pickup reminder). Side-channel failures after the store write are
// logged but do not fail the booking.
func (svc *DefaultSessionService) ConfirmBooking(ctx context.Context, sessionID, userID string, contact ContactDetails) (*models.Booking, error) {
	draft, err := svc.loadDraft(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if !draft.Complete() {
		return nil, NewBookingError("booking is missing a price estimate or a scheduled time")
	}

	booking := &models.Booking{
		ID:             uuid.New().String(),
		UserID:         userID,
		FullName:       contact.FullName,
		Phone:          contact.Phone,
		Email:          contact.Email,
		Address:        contact.Address,
		Length:         draft.Length,
		Width:          draft.Width,
		EstimatedPrice: *draft.EstimatedPrice,
		TotalPrice:     *draft.TotalPrice,
		CouponCode:     draft.CouponCode,
		ScheduledAt:    draft.Schedule.At.Format(models.ScheduledTimeLayout),
		PhotoRef:       draft.PhotoRef,
		ProgressStage:  models.StageBooked,
		CreatedAt:      time.Now(),
	}

	if err := svc.Repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("booking confirmation failed: %w", err)
	}

	if err := svc.Cache.Del(ctx, draftKey(sessionID)).Err(); err != nil {
		utils.GetLogger().Warn("ConfirmBooking: failed to clear session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	svc.fanOutConfirmation(ctx, booking)
	return booking, nil
}

func (svc *DefaultSessionService) fanOutConfirmation(ctx context.Context, booking *models.Booking) {
	logger := utils.GetLogger()

	title := "Booking confirmed"
	message := fmt.Sprintf("Your carpet cleaning is booked for %s. Total: %.2f", booking.ScheduledAt, booking.TotalPrice)
	if err := svc.NotificationSvc.Notify(ctx, booking.UserID, "booking_confirmed", title, message, map[string]string{
		"bookingId": booking.ID,
	}); err != nil {
		logger.Warn("ConfirmBooking: notification failed", zap.String("bookingID", booking.ID), zap.Error(err))
	}

	emailBody := fmt.Sprintf(
		"Hi %s,\n\nYour carpet cleaning booking is confirmed.\n\nPickup: %s\nAddress: %s\nEstimate: %.2f\nTotal (incl. pickup & delivery): %.2f\n\nThank you for choosing CleanSync.",
		booking.FullName, booking.ScheduledAt, booking.Address, booking.EstimatedPrice, booking.TotalPrice,
	)
	if err := svc.Mailer.Send(ctx, booking.Email, "Your CleanSync booking is confirmed", emailBody); err != nil {
		logger.Warn("ConfirmBooking: confirmation email failed", zap.String("bookingID", booking.ID), zap.Error(err))
	}

	svc.scheduleReminder(booking)
}

// scheduleReminder enqueues the pickup reminder push ahead of the scheduled
// instant. A missing asynq client (tests, stripped deployments) is a no-op.
func (svc *DefaultSessionService) scheduleReminder(booking *models.Booking) {
	if svc.Reminders == nil {
		return
	}
	logger := utils.GetLogger()

	at, err := time.ParseInLocation(models.ScheduledTimeLayout, booking.ScheduledAt, time.Local)
	if err != nil {
		logger.Warn("scheduleReminder: unparseable scheduled time",
			zap.String("bookingID", booking.ID), zap.Error(err))
		return
	}
	fireAt := at.Add(-time.Duration(config.AppConfig.ReminderLeadHours) * time.Hour)
	if !fireAt.After(time.Now()) {
		return
	}

	payload := models.ReminderPayload{
		UserID:    booking.UserID,
		BookingID: booking.ID,
		Title:     "Carpet pickup reminder",
		Body:      fmt.Sprintf("We will pick up your carpet at %s. Please have it ready.", booking.ScheduledAt),
		FireDate:  fireAt.Format(time.RFC3339),
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		logger.Warn("scheduleReminder: failed to build task", zap.Error(err))
		return
	}
	if _, err := svc.Reminders.Enqueue(task, opts...); err != nil {
		logger.Warn("scheduleReminder: failed to enqueue reminder",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}
}
