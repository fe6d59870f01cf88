package booking

// Coupon discount kinds.
const (
	DiscountPercent = "percent"
	DiscountFlat    = "flat"
)

// Coupon maps a code to a discount rule. Only one coupon may be active per
// booking session; no stacking.
type Coupon struct {
	Code         string
	DiscountType string
	Value        float64
}

// couponTable is the fixed set of redeemable codes.
var couponTable = map[string]Coupon{
	"CLEAN10":  {Code: "CLEAN10", DiscountType: DiscountPercent, Value: 10},
	"FRESH20":  {Code: "FRESH20", DiscountType: DiscountPercent, Value: 20},
	"WELCOME5": {Code: "WELCOME5", DiscountType: DiscountFlat, Value: 5},
}

// LookupCoupon returns the coupon for a code, if it exists.
func LookupCoupon(code string) (Coupon, bool) {
	c, ok := couponTable[code]
	return c, ok
}

// DiscountAmount computes the amount a coupon takes off the given total.
func (c Coupon) DiscountAmount(total float64) float64 {
	switch c.DiscountType {
	case DiscountPercent:
		return round2(total * c.Value / 100)
	case DiscountFlat:
		if c.Value > total {
			return total
		}
		return c.Value
	}
	return 0
}
