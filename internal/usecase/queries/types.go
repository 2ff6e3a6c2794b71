package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type ProductView struct {
	SpecID        string           `json:"spec_id"`
	SKU           string           `json:"sku"`
	ProductID     string           `json:"product_id"`
	Name          string           `json:"name"`
	SpecName      string           `json:"spec_name"`
	Price         decimal.Decimal  `json:"price"`
	Quantity      int32            `json:"quantity"`
	Shop          string           `json:"shop"`
	Category      string           `json:"category"`
	Warehouse     string           `json:"warehouse"`
	ShortName     string           `json:"short_name"`
	MinPrice      *decimal.Decimal `json:"min_price,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	FinalPrice    decimal.Decimal  `json:"final_price"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type ProductPage struct {
	Items []*ProductView `json:"items"`
	Total int64          `json:"total"`
}

type MarginView struct {
	ShippingFee     decimal.Decimal `json:"shipping_fee"`
	GrossMargin     decimal.Decimal `json:"gross_margin"`
	GrossMarginRate decimal.Decimal `json:"gross_margin_rate"`
	AfterSalesFee   decimal.Decimal `json:"after_sales_fee"`
	ManagementFee   decimal.Decimal `json:"management_fee"`
	PlatformFee     decimal.Decimal `json:"platform_fee"`
	MiscFee         decimal.Decimal `json:"misc_fee"`
	MiscFeeRate     decimal.Decimal `json:"misc_fee_rate"`
	NetMarginRate   decimal.Decimal `json:"net_margin_rate"`
	NetProfit       decimal.Decimal `json:"net_profit"`
}

type PricingView struct {
	Product    *ProductView    `json:"product"`
	FinalPrice decimal.Decimal `json:"final_price"`
	// nil when the product has no purchase price
	Margin *MarginView `json:"margin,omitempty"`
}

type CouponView struct {
	ID          int64           `json:"id"`
	Shop        string          `json:"shop"`
	CouponType  string          `json:"coupon_type"`
	Amount      decimal.Decimal `json:"amount"`
	MinPrice    decimal.Decimal `json:"min_price"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	Description string          `json:"description"`
	IsActive    bool            `json:"is_active"`
	// Empty means store-wide.
	ProductIDs []string  `json:"product_ids,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CouponStats struct {
	Total   int64 `json:"total"`
	Active  int64 `json:"active"`
	Expired int64 `json:"expired"`
}

type EligibleProductView struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
}

type ExclusionsView struct {
	InvalidSpecIDs []string `json:"invalid_spec_ids"`
	EnabledSKUs    []string `json:"enabled_skus"`
}
