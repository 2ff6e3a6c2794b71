package pricing

import (
	"time"

	"seller-catalog/internal/domain/coupon"

	"github.com/shopspring/decimal"
)

// PricePlaces is the number of decimal places of a final price.
const PricePlaces = 2

// BestPrice returns the lowest price reachable with a single applicable
// coupon. Non-positive prices and an empty coupon list leave price untouched;
// otherwise the result is rounded half away from zero to PricePlaces.
func BestPrice(price decimal.Decimal, coupons []*coupon.Coupon, today time.Time, productID string) decimal.Decimal {
	if !price.IsPositive() || len(coupons) == 0 {
		return price
	}

	best := price
	for _, c := range coupons {
		if !c.IsApplicable(today, productID) {
			continue
		}
		candidate, ok := c.Candidate(price)
		if !ok {
			continue
		}
		if candidate.LessThan(best) {
			best = candidate
		}
	}
	return best.Round(PricePlaces)
}
