package request

import (
	"strings"

	"seller-catalog/internal/domain/product"

	"github.com/shopspring/decimal"
)

// ProductRequest carries one product row. Decimals accept JSON numbers or strings.
type ProductRequest struct {
	SpecID        string           `json:"spec_id"`
	SKU           string           `json:"sku" binding:"required"`
	ProductID     string           `json:"product_id"`
	Name          string           `json:"name" binding:"required"`
	SpecName      string           `json:"spec_name"`
	Price         decimal.Decimal  `json:"price"`
	Quantity      int32            `json:"quantity"`
	Shop          string           `json:"shop" binding:"required"`
	Category      string           `json:"category"`
	Warehouse     string           `json:"warehouse"`
	ShortName     string           `json:"short_name"`
	MinPrice      *decimal.Decimal `json:"min_price,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
}

func (r ProductRequest) ToAttributes() product.Attributes {
	return product.Attributes{
		SpecID:        strings.TrimSpace(r.SpecID),
		SKU:           strings.TrimSpace(r.SKU),
		ProductID:     strings.TrimSpace(r.ProductID),
		Name:          strings.TrimSpace(r.Name),
		SpecName:      strings.TrimSpace(r.SpecName),
		Price:         r.Price,
		Quantity:      r.Quantity,
		Shop:          strings.TrimSpace(r.Shop),
		Category:      strings.TrimSpace(r.Category),
		Warehouse:     strings.TrimSpace(r.Warehouse),
		ShortName:     strings.TrimSpace(r.ShortName),
		MinPrice:      r.MinPrice,
		PurchasePrice: r.PurchasePrice,
	}
}

type UpsertProductsRequest struct {
	Products []ProductRequest `json:"products" binding:"required,dive"`
}

func (r UpsertProductsRequest) ToAttributes() []product.Attributes {
	return toAttributes(r.Products)
}

func toAttributes(rows []ProductRequest) []product.Attributes {
	attrs := make([]product.Attributes, 0, len(rows))
	for _, row := range rows {
		attrs = append(attrs, row.ToAttributes())
	}
	return attrs
}
