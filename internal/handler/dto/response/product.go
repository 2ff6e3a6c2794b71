package response

import (
	"log/slog"
	"time"

	"seller-catalog/internal/usecase/queries"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	SpecID        string           `json:"spec_id"`
	SKU           string           `json:"sku"`
	ProductID     string           `json:"product_id"`
	Name          string           `json:"name"`
	SpecName      string           `json:"spec_name"`
	Price         decimal.Decimal  `json:"price"`
	FinalPrice    decimal.Decimal  `json:"final_price"`
	Quantity      int32            `json:"quantity"`
	Shop          string           `json:"shop"`
	Category      string           `json:"category"`
	Warehouse     string           `json:"warehouse"`
	ShortName     string           `json:"short_name"`
	MinPrice      *decimal.Decimal `json:"min_price,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type ProductListResponse struct {
	Items []*ProductResponse `json:"items"`
	Total int64              `json:"total"`
}

type MarginResponse struct {
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

type PricingResponse struct {
	Product    *ProductResponse `json:"product"`
	FinalPrice decimal.Decimal  `json:"final_price"`
	Margin     *MarginResponse  `json:"margin,omitempty"`
}

type FinalPriceResponse struct {
	Shop       string          `json:"shop"`
	ProductID  string          `json:"product_id,omitempty"`
	Price      decimal.Decimal `json:"price"`
	FinalPrice decimal.Decimal `json:"final_price"`
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	return &ProductResponse{
		SpecID:        v.SpecID,
		SKU:           v.SKU,
		ProductID:     v.ProductID,
		Name:          v.Name,
		SpecName:      v.SpecName,
		Price:         v.Price,
		FinalPrice:    v.FinalPrice,
		Quantity:      v.Quantity,
		Shop:          v.Shop,
		Category:      v.Category,
		Warehouse:     v.Warehouse,
		ShortName:     v.ShortName,
		MinPrice:      v.MinPrice,
		PurchasePrice: v.PurchasePrice,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func FromProductPage(page *queries.ProductPage) *ProductListResponse {
	items := make([]*ProductResponse, 0, len(page.Items))
	for _, v := range page.Items {
		items = append(items, FromProductView(v))
	}
	return &ProductListResponse{Items: items, Total: page.Total}
}

func FromPricingView(v *queries.PricingView) *PricingResponse {
	resp := &PricingResponse{
		Product:    FromProductView(v.Product),
		FinalPrice: v.FinalPrice,
	}
	if v.Margin != nil {
		var m MarginResponse
		if err := copier.Copy(&m, v.Margin); err != nil {
			slog.Error("failed to copy margin view", "spec_id", v.Product.SpecID, "error", err)
		}
		resp.Margin = &m
	}
	return resp
}
