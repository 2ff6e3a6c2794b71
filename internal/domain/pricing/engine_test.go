//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"seller-catalog/internal/domain/coupon"
	"seller-catalog/internal/domain/pricing"
	"seller-catalog/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var today = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertPrice(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, price(want).Equal(got), "want %s got %s", want, got)
}

func TestBestPrice(t *testing.T) {
	instant30 := builder.NewCouponBuilder().Instant("30").MustBuildDomain()
	discount90 := builder.NewCouponBuilder().Discount("0.9").MustBuildDomain()
	threshold := builder.NewCouponBuilder().Threshold("100", "20").MustBuildDomain()

	t.Run("0以下の価格はそのまま", func(t *testing.T) {
		coupons := []*coupon.Coupon{instant30}
		assertPrice(t, "0", pricing.BestPrice(price("0"), coupons, today, "p-1"))
		assertPrice(t, "-5", pricing.BestPrice(price("-5"), coupons, today, "p-1"))
	})

	t.Run("クーポンなしはそのまま", func(t *testing.T) {
		assertPrice(t, "12.345", pricing.BestPrice(price("12.345"), nil, today, ""))
	})

	t.Run("threshold 境界", func(t *testing.T) {
		coupons := []*coupon.Coupon{threshold}
		assertPrice(t, "80", pricing.BestPrice(price("100"), coupons, today, ""))
		assertPrice(t, "99.99", pricing.BestPrice(price("99.99"), coupons, today, ""))
	})

	t.Run("discount", func(t *testing.T) {
		coupons := []*coupon.Coupon{builder.NewCouponBuilder().Discount("0.8").MustBuildDomain()}
		assertPrice(t, "160", pricing.BestPrice(price("200"), coupons, today, ""))
	})

	t.Run("最安値の候補を採用", func(t *testing.T) {
		coupons := []*coupon.Coupon{discount90, instant30}
		assertPrice(t, "170", pricing.BestPrice(price("200"), coupons, today, ""))
	})

	t.Run("適用外のクーポンは無視", func(t *testing.T) {
		coupons := []*coupon.Coupon{
			builder.NewCouponBuilder().Instant("50").ScopedTo("p-2").MustBuildDomain(),
			builder.NewCouponBuilder().Instant("40").Inactive().MustBuildDomain(),
			builder.NewCouponBuilder().Instant("60").With(func(b *builder.CouponBuilder) {
				b.EndDate = today.AddDate(0, 0, -1)
				b.StartDate = today.AddDate(0, 0, -10)
			}).MustBuildDomain(),
			instant30,
		}
		assertPrice(t, "170", pricing.BestPrice(price("200"), coupons, today, "p-1"))
		assertPrice(t, "170", pricing.BestPrice(price("200"), coupons, today, ""))
		assertPrice(t, "150", pricing.BestPrice(price("200"), coupons, today, "p-2"))
	})

	t.Run("小数第2位で四捨五入", func(t *testing.T) {
		coupons := []*coupon.Coupon{builder.NewCouponBuilder().Discount("0.85").MustBuildDomain()}
		// 19.9 * 0.85 = 16.915
		assertPrice(t, "16.92", pricing.BestPrice(price("19.9"), coupons, today, ""))
	})

	t.Run("適用なしでも丸める", func(t *testing.T) {
		coupons := []*coupon.Coupon{threshold}
		assertPrice(t, "10.13", pricing.BestPrice(price("10.125"), coupons, today, ""))
	})
}

func TestBestPrice_neverAboveInput(t *testing.T) {
	coupons := []*coupon.Coupon{
		builder.NewCouponBuilder().Instant("3").MustBuildDomain(),
		builder.NewCouponBuilder().Threshold("50", "10").MustBuildDomain(),
		builder.NewCouponBuilder().Discount("0.95").MustBuildDomain(),
	}
	for cents := int64(1); cents <= 20000; cents += 37 {
		p := decimal.New(cents, -2)
		got := pricing.BestPrice(p, coupons, today, "p-1")
		assert.True(t, got.LessThanOrEqual(p.Round(pricing.PricePlaces)), "price %s became %s", p, got)
	}
}
