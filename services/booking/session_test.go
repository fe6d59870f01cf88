package booking

import (
	"testing"

	"cleansync/config"
	"cleansync/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestPricing(t *testing.T) {
	t.Helper()
	prev := config.AppConfig
	config.AppConfig.PricePerSquareUnit = 4
	config.AppConfig.PickupDeliveryFee = 10
	config.AppConfig.MaxCarpetDimension = 50
	t.Cleanup(func() { config.AppConfig = prev })
}

func TestRecalc(t *testing.T) {
	setTestPricing(t)

	t.Run("prices a complete pair", func(t *testing.T) {
		d := recalc(models.BookingDraft{Length: "3", Width: "2"})
		require.NotNil(t, d.EstimatedPrice)
		assert.InDelta(t, 24, *d.EstimatedPrice, 0.001)
		require.NotNil(t, d.TotalPrice)
		assert.InDelta(t, 34, *d.TotalPrice, 0.001)
		assert.Zero(t, d.Discount)
	})

	t.Run("clears prices when a dimension is missing", func(t *testing.T) {
		est := 24.0
		d := recalc(models.BookingDraft{Length: "3", Width: "", EstimatedPrice: &est})
		assert.Nil(t, d.EstimatedPrice)
		assert.Nil(t, d.TotalPrice)
		assert.Zero(t, d.Discount)
	})

	t.Run("applied coupon survives a dimension edit", func(t *testing.T) {
		d := recalc(models.BookingDraft{
			Length:        "3",
			Width:         "2",
			CouponCode:    "CLEAN10",
			CouponApplied: true,
		})
		require.NotNil(t, d.TotalPrice)
		assert.InDelta(t, 3.4, d.Discount, 0.001)
		assert.InDelta(t, 30.6, *d.TotalPrice, 0.001)

		// A new dimension pair recomputes the same coupon, not the old amount.
		d.Length = "5"
		d = recalc(d)
		require.NotNil(t, d.EstimatedPrice)
		assert.InDelta(t, 40, *d.EstimatedPrice, 0.001)
		assert.InDelta(t, 5, d.Discount, 0.001)
		assert.InDelta(t, 45, *d.TotalPrice, 0.001)
	})

	t.Run("zero area still pays the flat fee", func(t *testing.T) {
		d := recalc(models.BookingDraft{Length: "0", Width: "3"})
		require.NotNil(t, d.EstimatedPrice)
		assert.Zero(t, *d.EstimatedPrice)
		require.NotNil(t, d.TotalPrice)
		assert.InDelta(t, 10, *d.TotalPrice, 0.001)
	})
}

func TestApplyCouponToDraft(t *testing.T) {
	setTestPricing(t)

	priced := recalc(models.BookingDraft{Length: "3", Width: "2"})

	t.Run("first application discounts the total", func(t *testing.T) {
		d, msg, err := applyCouponToDraft(priced, "CLEAN10")
		require.NoError(t, err)
		assert.True(t, d.CouponApplied)
		assert.Equal(t, "CLEAN10", d.CouponCode)
		assert.InDelta(t, 3.4, d.Discount, 0.001)
		assert.InDelta(t, 30.6, *d.TotalPrice, 0.001)
		assert.Contains(t, msg, "CLEAN10")
	})

	t.Run("second application changes nothing", func(t *testing.T) {
		applied, _, err := applyCouponToDraft(priced, "CLEAN10")
		require.NoError(t, err)

		again, msg, err := applyCouponToDraft(applied, "FRESH20")
		require.NoError(t, err)
		assert.Equal(t, applied, again)
		assert.Equal(t, "A coupon has already been applied to this booking", msg)
		assert.InDelta(t, 3.4, again.Discount, 0.001)
	})

	t.Run("unknown code is an error and couponApplied stays false", func(t *testing.T) {
		d, _, err := applyCouponToDraft(priced, "BOGUS")
		assert.Error(t, err)
		assert.True(t, IsBookingError(err))
		assert.False(t, d.CouponApplied)
		assert.Empty(t, d.CouponCode)
		assert.InDelta(t, 34, *d.TotalPrice, 0.001)
	})

	t.Run("requires an estimate first", func(t *testing.T) {
		d, _, err := applyCouponToDraft(models.BookingDraft{}, "CLEAN10")
		assert.Error(t, err)
		assert.True(t, IsBookingError(err))
		assert.False(t, d.CouponApplied)
	})
}
