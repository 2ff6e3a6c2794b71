package queries

import (
	"context"
	"log/slog"
	"time"

	"seller-catalog/internal/domain/coupon"
	"seller-catalog/internal/domain/pricing"
	"seller-catalog/internal/pkg/clock"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=pricing.go -destination=../../../tests/mock/queries/pricing_mock.go -package=queriesmock

type PricingEngine interface {
	// CalculateFinalPrice never fails: a coupon lookup error means no discount.
	CalculateFinalPrice(ctx context.Context, price decimal.Decimal, shop, productID string) decimal.Decimal
	// Margin returns nil when purchasePrice is unknown or either price is not positive.
	Margin(finalPrice decimal.Decimal, purchasePrice *decimal.Decimal) *MarginView
}

type pricingEngineImpl struct {
	coupons CouponQueries
	clock   clock.Clock
	loc     *time.Location
	policy  pricing.MarginPolicy
}

func NewPricingEngine(coupons CouponQueries, clk clock.Clock, loc *time.Location, policy pricing.MarginPolicy) PricingEngine {
	return &pricingEngineImpl{
		coupons: coupons,
		clock:   clk,
		loc:     loc,
		policy:  policy,
	}
}

func (e *pricingEngineImpl) CalculateFinalPrice(ctx context.Context, price decimal.Decimal, shop, productID string) decimal.Decimal {
	if !price.IsPositive() {
		return price
	}

	views, err := e.coupons.ListActiveForShop(ctx, shop)
	if err != nil {
		slog.Warn("active coupon lookup failed, pricing without discount", "shop", shop, "error", err)
		return price
	}

	return pricing.BestPrice(price, toDomainCoupons(views), clock.Today(e.clock, e.loc), productID)
}

func (e *pricingEngineImpl) Margin(finalPrice decimal.Decimal, purchasePrice *decimal.Decimal) *MarginView {
	if purchasePrice == nil {
		return nil
	}
	m, ok := e.policy.Calculate(finalPrice, *purchasePrice)
	if !ok {
		return nil
	}
	return &MarginView{
		ShippingFee:     m.ShippingFee,
		GrossMargin:     m.GrossMargin,
		GrossMarginRate: m.GrossMarginRate,
		AfterSalesFee:   m.AfterSalesFee,
		ManagementFee:   m.ManagementFee,
		PlatformFee:     m.PlatformFee,
		MiscFee:         m.MiscFee,
		MiscFeeRate:     m.MiscFeeRate,
		NetMarginRate:   m.NetMarginRate,
		NetProfit:       m.NetProfit,
	}
}

// Rows that no longer validate are skipped rather than failing the price.
func toDomainCoupons(views []*CouponView) []*coupon.Coupon {
	coupons := make([]*coupon.Coupon, 0, len(views))
	for _, v := range views {
		c, err := coupon.NewCoupon(coupon.Attributes{
			ID:          v.ID,
			Shop:        v.Shop,
			Type:        coupon.Type(v.CouponType),
			Amount:      v.Amount,
			MinPrice:    v.MinPrice,
			StartDate:   v.StartDate,
			EndDate:     v.EndDate,
			Description: v.Description,
			IsActive:    v.IsActive,
			Scope:       coupon.ScopedTo(v.ProductIDs...),
		})
		if err != nil {
			slog.Warn("skipping invalid stored coupon", "coupon_id", v.ID, "error", err)
			continue
		}
		coupons = append(coupons, c)
	}
	return coupons
}
