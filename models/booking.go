package models

import "time"

// Progress stages a booking moves through during fulfilment.
const (
	StageBooked    = "booked"
	StageCollected = "collected"
	StageCleaned   = "cleaned"
	StageReturned  = "returned"
)

// ValidProgressStage reports whether s is one of the known fulfilment stages.
func ValidProgressStage(s string) bool {
	switch s {
	case StageBooked, StageCollected, StageCleaned, StageReturned:
		return true
	}
	return false
}

// Booking represents a confirmed carpet-cleaning booking record.
type Booking struct {
	ID             string    `bson:"id" json:"id"`                         // Unique booking identifier (UUID)
	UserID         string    `bson:"user_id" json:"user_id"`               // Owner of the booking
	FullName       string    `bson:"full_name" json:"full_name"`           // Contact name
	Phone          string    `bson:"phone" json:"phone"`                   // Contact phone
	Email          string    `bson:"email" json:"email"`                   // Contact email
	Address        string    `bson:"address" json:"address"`               // Pickup/delivery address
	Length         string    `bson:"length" json:"length"`                 // Carpet length, normalized decimal text
	Width          string    `bson:"width" json:"width"`                   // Carpet width, normalized decimal text
	EstimatedPrice float64   `bson:"estimated_price" json:"estimated_price"`
	TotalPrice     float64   `bson:"total_price" json:"total_price"`
	CouponCode     string    `bson:"coupon_code,omitempty" json:"coupon_code,omitempty"`
	ScheduledAt    string    `bson:"scheduled_at" json:"scheduled_at"` // Formatted "2006-01-02 15:04"
	PhotoRef       string    `bson:"photo_ref,omitempty" json:"photo_ref,omitempty"`
	ProgressStage  string    `bson:"progress_stage" json:"progress_stage"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

// ScheduledTimeLayout is the wire format for Booking.ScheduledAt.
const ScheduledTimeLayout = "2006-01-02 15:04"
