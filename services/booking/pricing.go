package booking

import (
	"math"
	"strconv"
)

// Estimate derives the cleaning estimate from two normalized dimension
// strings: length * width * rate. The second return value is false when
// either dimension does not parse, meaning no estimate can be produced yet.
// Zero-area carpets are not rejected here; any parseable pair prices.
func Estimate(length, width string, rate float64) (float64, bool) {
	l, err := strconv.ParseFloat(length, 64)
	if err != nil {
		return 0, false
	}
	w, err := strconv.ParseFloat(width, 64)
	if err != nil {
		return 0, false
	}
	return round2(l * w * rate), true
}

// Total composes the customer-facing total: estimate plus the flat
// pickup/delivery fee, minus any applied discount. Never negative.
func Total(estimate, flatFee, discount float64) float64 {
	t := estimate + flatFee - discount
	if t < 0 {
		t = 0
	}
	return round2(t)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
