package booking

import (
	"fmt"
	"time"

	"cleansync/models"
)

// DateLayout is the wire format for a picked calendar date.
const DateLayout = "2006-01-02"

// PickDate moves a schedule selection to the DatePicked state. Dates before
// today are rejected and the prior selection is returned unchanged. Picking a
// new date discards any previously committed instant.
func PickDate(sel models.ScheduleSelection, date string, now time.Time) (models.ScheduleSelection, error) {
	d, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return sel, NewBookingError("invalid date; expected YYYY-MM-DD")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if d.Before(today) {
		return sel, NewBookingError("selected date is in the past")
	}
	return models.ScheduleSelection{
		State: models.ScheduleDatePicked,
		Date:  date,
	}, nil
}

// PickHour commits the full instant for a selection in the DatePicked state.
// The hour must lie inside the daily booking window [openHour, closeHour] and
// the composed instant must be strictly in the future; minutes are always
// normalized to zero. On rejection the prior selection is returned unchanged.
// A Complete selection must be reset before a new hour can be committed.
func PickHour(sel models.ScheduleSelection, hour, openHour, closeHour int, now time.Time) (models.ScheduleSelection, error) {
	if sel.State != models.ScheduleDatePicked {
		return sel, NewBookingError("pick a date before choosing an hour")
	}
	if hour < openHour || hour > closeHour {
		return sel, NewBookingError(fmt.Sprintf("hour must be between %02d:00 and %02d:00", openHour, closeHour))
	}
	d, err := time.ParseInLocation(DateLayout, sel.Date, now.Location())
	if err != nil {
		return sel, NewBookingError("invalid date; expected YYYY-MM-DD")
	}
	at := time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, now.Location())
	if !at.After(now) {
		return sel, NewBookingError("selected time is in the past")
	}
	return models.ScheduleSelection{
		State: models.ScheduleComplete,
		Date:  sel.Date,
		At:    &at,
	}, nil
}

// ResetSchedule returns the selection to the Idle state.
func ResetSchedule() models.ScheduleSelection {
	return models.ScheduleSelection{State: models.ScheduleIdle}
}

// ValidateScheduledAt checks a reschedule target against the same window and
// future rules the selector enforces, returning the normalized instant text.
func ValidateScheduledAt(scheduledAt string, openHour, closeHour int, now time.Time) (string, error) {
	at, err := time.ParseInLocation(models.ScheduledTimeLayout, scheduledAt, now.Location())
	if err != nil {
		return "", NewBookingError("invalid schedule; expected YYYY-MM-DD HH:MM")
	}
	h := at.Hour()
	if h < openHour || h > closeHour {
		return "", NewBookingError(fmt.Sprintf("hour must be between %02d:00 and %02d:00", openHour, closeHour))
	}
	at = time.Date(at.Year(), at.Month(), at.Day(), h, 0, 0, 0, now.Location())
	if !at.After(now) {
		return "", NewBookingError("selected time is in the past")
	}
	return at.Format(models.ScheduledTimeLayout), nil
}
