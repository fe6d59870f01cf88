package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupCoupon(t *testing.T) {
	c, ok := LookupCoupon("CLEAN10")
	assert.True(t, ok)
	assert.Equal(t, DiscountPercent, c.DiscountType)
	assert.Equal(t, 10.0, c.Value)

	c, ok = LookupCoupon("WELCOME5")
	assert.True(t, ok)
	assert.Equal(t, DiscountFlat, c.DiscountType)

	_, ok = LookupCoupon("NOPE")
	assert.False(t, ok)

	// Codes are case-sensitive.
	_, ok = LookupCoupon("clean10")
	assert.False(t, ok)
}

func TestDiscountAmount(t *testing.T) {
	tests := []struct {
		name   string
		coupon Coupon
		total  float64
		want   float64
	}{
		{name: "ten percent", coupon: Coupon{DiscountType: DiscountPercent, Value: 10}, total: 34, want: 3.4},
		{name: "twenty percent", coupon: Coupon{DiscountType: DiscountPercent, Value: 20}, total: 34, want: 6.8},
		{name: "flat five", coupon: Coupon{DiscountType: DiscountFlat, Value: 5}, total: 34, want: 5},
		{name: "flat capped at total", coupon: Coupon{DiscountType: DiscountFlat, Value: 5}, total: 3, want: 3},
		{name: "unknown type discounts nothing", coupon: Coupon{DiscountType: "mystery", Value: 5}, total: 34, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.coupon.DiscountAmount(tt.total), 0.001)
		})
	}
}
