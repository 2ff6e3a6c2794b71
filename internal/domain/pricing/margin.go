package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// MarginPolicy holds the cost assumptions used to estimate seller margin.
// Rates are fractions of the final price.
type MarginPolicy struct {
	ShippingThreshold decimal.Decimal
	ShippingFeeHigh   decimal.Decimal
	ShippingFeeLow    decimal.Decimal
	AfterSalesRate    decimal.Decimal
	ManagementRate    decimal.Decimal
	PlatformRate      decimal.Decimal
}

func DefaultMarginPolicy() MarginPolicy {
	return MarginPolicy{
		ShippingThreshold: decimal.NewFromInt(150),
		ShippingFeeHigh:   decimal.NewFromInt(30),
		ShippingFeeLow:    decimal.NewFromInt(2),
		AfterSalesRate:    decimal.RequireFromString("0.02"),
		ManagementRate:    decimal.RequireFromString("0.07"),
		PlatformRate:      decimal.RequireFromString("0.01"),
	}
}

// Margin amounts are in currency, rates in percent; all rounded to two places.
type Margin struct {
	FinalPrice      decimal.Decimal
	PurchasePrice   decimal.Decimal
	ShippingFee     decimal.Decimal
	GrossMargin     decimal.Decimal
	GrossMarginRate decimal.Decimal
	AfterSalesFee   decimal.Decimal
	ManagementFee   decimal.Decimal
	PlatformFee     decimal.Decimal
	MiscFee         decimal.Decimal
	MiscFeeRate     decimal.Decimal
	NetMarginRate   decimal.Decimal
	NetProfit       decimal.Decimal
}

func (p MarginPolicy) ShippingFee(finalPrice decimal.Decimal) decimal.Decimal {
	if finalPrice.GreaterThanOrEqual(p.ShippingThreshold) {
		return p.ShippingFeeHigh
	}
	return p.ShippingFeeLow
}

// Calculate returns false when either price is not positive, since no
// meaningful margin exists then.
func (p MarginPolicy) Calculate(finalPrice, purchasePrice decimal.Decimal) (Margin, bool) {
	if !finalPrice.IsPositive() || !purchasePrice.IsPositive() {
		return Margin{}, false
	}

	shipping := p.ShippingFee(finalPrice)
	gross := finalPrice.Sub(purchasePrice).Sub(shipping)
	grossRate := gross.Div(finalPrice).Mul(hundred)

	afterSales := finalPrice.Mul(p.AfterSalesRate)
	management := finalPrice.Mul(p.ManagementRate)
	platform := finalPrice.Mul(p.PlatformRate)
	misc := afterSales.Add(management).Add(platform)
	miscRate := misc.Div(finalPrice).Mul(hundred)

	return Margin{
		FinalPrice:      finalPrice.Round(PricePlaces),
		PurchasePrice:   purchasePrice.Round(PricePlaces),
		ShippingFee:     shipping.Round(PricePlaces),
		GrossMargin:     gross.Round(PricePlaces),
		GrossMarginRate: grossRate.Round(PricePlaces),
		AfterSalesFee:   afterSales.Round(PricePlaces),
		ManagementFee:   management.Round(PricePlaces),
		PlatformFee:     platform.Round(PricePlaces),
		MiscFee:         misc.Round(PricePlaces),
		MiscFeeRate:     miscRate.Round(PricePlaces),
		NetMarginRate:   grossRate.Sub(miscRate).Round(PricePlaces),
		NetProfit:       gross.Sub(misc).Round(PricePlaces),
	}, true
}
