package models

import "time"

// Schedule selection states. The selector only ever moves forward
// (idle -> date picked -> complete) or resets back to idle.
const (
	ScheduleIdle       = "idle"
	ScheduleDatePicked = "datePicked"
	ScheduleComplete   = "complete"
)

// ScheduleSelection tracks the date/time picking progress inside a draft.
type ScheduleSelection struct {
	State string     `json:"state"`
	Date  string     `json:"date,omitempty"` // "2006-01-02"
	At    *time.Time `json:"at,omitempty"`   // committed instant, minutes zeroed
}

// BookingDraft is the transient booking state held during the input flow.
// Drafts are immutable values: every edit produces a replacement draft and
// the derived prices are recomputed from scratch, so a stale estimate can
// never survive an edit.
type BookingDraft struct {
	SessionID      string            `json:"sessionId"`
	UserID         string            `json:"userId"`
	Length         string            `json:"length,omitempty"` // normalized decimal text, empty until set
	Width          string            `json:"width,omitempty"`
	EstimatedPrice *float64          `json:"estimatedPrice,omitempty"`
	CouponCode     string            `json:"couponCode,omitempty"`
	CouponApplied  bool              `json:"couponApplied"` // monotonic: never true -> false within a session
	Discount       float64           `json:"discount"`
	TotalPrice     *float64          `json:"totalPrice,omitempty"`
	Schedule       ScheduleSelection `json:"schedule"`
	PhotoRef       string            `json:"photoRef,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// Complete reports whether the draft carries everything a Booking needs.
func (d BookingDraft) Complete() bool {
	return d.EstimatedPrice != nil && d.TotalPrice != nil &&
		d.Schedule.State == ScheduleComplete && d.Schedule.At != nil
}
