package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cleansync/config"
	"cleansync/models"

	"github.com/google/uuid"
)

const draftKeyPrefix = "draft:"

func draftKey(sessionID string) string {
	return draftKeyPrefix + sessionID
}

func sessionTTL() time.Duration {
	return time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
}

// InitiateSession opens a fresh draft session for a user.
func (svc *DefaultSessionService) InitiateSession(ctx context.Context, userID string) (*models.BookingDraft, error) {
	draft := models.BookingDraft{
		SessionID: uuid.New().String(),
		UserID:    userID,
		Schedule:  models.ScheduleSelection{State: models.ScheduleIdle},
		CreatedAt: time.Now(),
	}
	if err := svc.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

// GetSession returns the current draft snapshot.
func (svc *DefaultSessionService) GetSession(ctx context.Context, sessionID, userID string) (*models.BookingDraft, error) {
	draft, err := svc.loadDraft(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

// SetDimensions replaces the draft's carpet dimensions with normalized values
// and recomputes the derived prices. Unparseable input becomes an empty
// dimension, which simply leaves the draft without an estimate.
func (svc *DefaultSessionService) SetDimensions(ctx context.Context, sessionID, userID, length, width string) (*models.BookingDraft, error) {
	draft, err := svc.loadDraft(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	max := config.AppConfig.MaxCarpetDimension
	next := draft
	next.Length = NormalizeDimension(length, max)
	next.Width = NormalizeDimension(width, max)
	next = recalc(next)

	if err := svc.saveDraft(ctx, next); err != nil {
		return nil, err
	}
	return &next, nil
}

// ApplyCoupon redeems a coupon code against the draft. Application is
// idempotent after the first success: once couponApplied is set, further
// calls change nothing. An unknown code leaves the draft untouched.
func (svc *DefaultSessionService) ApplyCoupon(ctx context.Context, sessionID, userID, code string) (*models.BookingDraft, string, error) {
	draft, err := svc.loadDraft(ctx, sessionID, userID)
	if err != nil {
		return nil, "", err
	}

	next, msg, err := applyCouponToDraft(draft, code)
	if err != nil {
		return nil, "", err
	}
	if next.CouponApplied && !draft.CouponApplied {
		if err := svc.saveDraft(ctx, next); err != nil {
			return nil, "", err
		}
	}
	return &next, msg, nil
}

// applyCouponToDraft redeems a code against a draft. Once a coupon is applied
// the draft is returned unchanged with an explanatory message; an unknown
// code or a draft without an estimate is an error and couponApplied stays
// false.
func applyCouponToDraft(d models.BookingDraft, code string) (models.BookingDraft, string, error) {
	if d.CouponApplied {
		return d, "A coupon has already been applied to this booking", nil
	}
	if d.EstimatedPrice == nil {
		return d, "", NewBookingError("enter carpet dimensions before applying a coupon")
	}
	coupon, ok := LookupCoupon(code)
	if !ok {
		return d, "", NewBookingError("invalid coupon code")
	}

	d.CouponCode = coupon.Code
	d.CouponApplied = true
	d = recalc(d)
	return d, fmt.Sprintf("Coupon %s applied", coupon.Code), nil
}

// UpdateSchedule advances the draft's date/time selection: reset, pick a
// date, or commit an hour. Rejected edits leave the stored draft unchanged.
func (svc *DefaultSessionService) UpdateSchedule(ctx context.Context, sessionID, userID string, upd ScheduleUpdate) (*models.BookingDraft, error) {
	draft, err := svc.loadDraft(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	next := draft
	switch {
	case upd.Reset:
		next.Schedule = ResetSchedule()
	case upd.Date != nil:
		sel, err := PickDate(draft.Schedule, *upd.Date, now)
		if err != nil {
			return nil, err
		}
		next.Schedule = sel
	case upd.Hour != nil:
		cfg := config.AppConfig
		sel, err := PickHour(draft.Schedule, *upd.Hour, cfg.BookingOpenHour, cfg.BookingCloseHour, now)
		if err != nil {
			return nil, err
		}
		next.Schedule = sel
	default:
		return nil, NewBookingError("schedule update must set reset, date, or hour")
	}

	if err := svc.saveDraft(ctx, next); err != nil {
		return nil, err
	}
	return &next, nil
}

// AttachPhoto records an uploaded carpet photo on the draft and, when the
// analysis was accepted, adopts its dimensions as the draft's suggestion.
// The user can still overwrite them through SetDimensions.
func (svc *DefaultSessionService) AttachPhoto(ctx context.Context, sessionID, userID, photoRef string, analysis *models.CarpetAnalysis) (*models.BookingDraft, error) {
	draft, err := svc.loadDraft(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	next := draft
	next.PhotoRef = photoRef
	if analysis != nil && analysis.Outcome == models.AnalysisAccepted {
		max := config.AppConfig.MaxCarpetDimension
		next.Length = NormalizeDimension(fmt.Sprintf("%.2f", analysis.Length), max)
		next.Width = NormalizeDimension(fmt.Sprintf("%.2f", analysis.Width), max)
		next = recalc(next)
	}

	if err := svc.saveDraft(ctx, next); err != nil {
		return nil, err
	}
	return &next, nil
}

// CancelSession discards the draft.
func (svc *DefaultSessionService) CancelSession(ctx context.Context, sessionID, userID string) error {
	if _, err := svc.loadDraft(ctx, sessionID, userID); err != nil {
		return err
	}
	if err := svc.Cache.Del(ctx, draftKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

// recalc rebuilds every derived field of a draft from its inputs. Drafts are
// replaced wholesale on each edit, so this is the only place prices are
// computed and a stale estimate cannot survive an edit.
func recalc(d models.BookingDraft) models.BookingDraft {
	cfg := config.AppConfig
	d.EstimatedPrice = nil
	d.TotalPrice = nil
	d.Discount = 0

	est, ok := Estimate(d.Length, d.Width, cfg.PricePerSquareUnit)
	if !ok {
		return d
	}
	d.EstimatedPrice = &est

	if d.CouponApplied {
		if coupon, ok := LookupCoupon(d.CouponCode); ok {
			d.Discount = coupon.DiscountAmount(est + cfg.PickupDeliveryFee)
		}
	}
	total := Total(est, cfg.PickupDeliveryFee, d.Discount)
	d.TotalPrice = &total
	return d
}

func (svc *DefaultSessionService) loadDraft(ctx context.Context, sessionID, userID string) (models.BookingDraft, error) {
	var draft models.BookingDraft
	data, err := svc.Cache.Get(ctx, draftKey(sessionID)).Result()
	if err != nil {
		return draft, NewBookingError("booking session not found or expired")
	}
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return draft, fmt.Errorf("failed to parse booking session: %w", err)
	}
	if draft.UserID != userID {
		return models.BookingDraft{}, NewBookingError("booking session not found or expired")
	}
	return draft, nil
}

func (svc *DefaultSessionService) saveDraft(ctx context.Context, draft models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := svc.Cache.Set(ctx, draftKey(draft.SessionID), data, sessionTTL()).Err(); err != nil {
		return fmt.Errorf("failed to cache booking session: %w", err)
	}
	return nil
}
