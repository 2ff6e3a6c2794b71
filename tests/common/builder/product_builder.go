//go:build unit || e2e

package builder

import (
	"seller-catalog/internal/domain/product"
	reqdto "seller-catalog/internal/handler/dto/request"
	"seller-catalog/internal/infra/dbq"
	"seller-catalog/internal/pkg/pgconv"
	"seller-catalog/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	SpecID        string
	SKU           string
	ProductID     string
	Name          string
	SpecName      string
	Price         string
	Quantity      int32
	Shop          string
	Category      string
	Warehouse     string
	ShortName     string
	MinPrice      *string
	PurchasePrice *string
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		SpecID:    "spec-001",
		SKU:       "SKU-001",
		ProductID: "p-001",
		Name:      "Linen Shirt",
		SpecName:  "White / M",
		Price:     "199.00",
		Quantity:  10,
		Shop:      "shop-a",
		Category:  "apparel",
		Warehouse: "hangzhou",
		ShortName: "shirt",
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) WithPurchasePrice(v string) *ProductBuilder {
	b.PurchasePrice = &v
	return b
}

func (b *ProductBuilder) WithMinPrice(v string) *ProductBuilder {
	b.MinPrice = &v
	return b
}

func (b *ProductBuilder) Attributes() product.Attributes {
	return product.Attributes{
		SpecID:        b.SpecID,
		SKU:           b.SKU,
		ProductID:     b.ProductID,
		Name:          b.Name,
		SpecName:      b.SpecName,
		Price:         decimal.RequireFromString(b.Price),
		Quantity:      b.Quantity,
		Shop:          b.Shop,
		Category:      b.Category,
		Warehouse:     b.Warehouse,
		ShortName:     b.ShortName,
		MinPrice:      optionalDecimal(b.MinPrice),
		PurchasePrice: optionalDecimal(b.PurchasePrice),
	}
}

// Build methods
func (b *ProductBuilder) BuildDomain() (*product.Product, error) {
	return product.NewProduct(b.Attributes())
}

func (b *ProductBuilder) MustBuildDomain() *product.Product {
	p, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return p
}

func optionalDecimal(s *string) *decimal.Decimal {
	if s == nil {
		return nil
	}
	d := decimal.RequireFromString(*s)
	return &d
}

func (b *ProductBuilder) BuildView() *queries.ProductView {
	a := b.Attributes()
	return &queries.ProductView{
		SpecID:        a.SpecID,
		SKU:           a.SKU,
		ProductID:     a.ProductID,
		Name:          a.Name,
		SpecName:      a.SpecName,
		Price:         a.Price,
		Quantity:      a.Quantity,
		Shop:          a.Shop,
		Category:      a.Category,
		Warehouse:     a.Warehouse,
		ShortName:     a.ShortName,
		MinPrice:      a.MinPrice,
		PurchasePrice: a.PurchasePrice,
	}
}

func (b *ProductBuilder) BuildRow() dbq.Product {
	a := b.Attributes()
	return dbq.Product{
		SpecID:        a.SpecID,
		Sku:           a.SKU,
		ProductID:     a.ProductID,
		Name:          a.Name,
		SpecName:      a.SpecName,
		Price:         pgconv.DecimalToNumeric(a.Price),
		Quantity:      a.Quantity,
		Shop:          a.Shop,
		Category:      a.Category,
		Warehouse:     a.Warehouse,
		ShortName:     a.ShortName,
		MinPrice:      pgconv.DecimalPtrToNumeric(a.MinPrice),
		PurchasePrice: pgconv.DecimalPtrToNumeric(a.PurchasePrice),
	}
}

func (b *ProductBuilder) BuildRequestDTO() reqdto.ProductRequest {
	a := b.Attributes()
	return reqdto.ProductRequest{
		SpecID:        a.SpecID,
		SKU:           a.SKU,
		ProductID:     a.ProductID,
		Name:          a.Name,
		SpecName:      a.SpecName,
		Price:         a.Price,
		Quantity:      a.Quantity,
		Shop:          a.Shop,
		Category:      a.Category,
		Warehouse:     a.Warehouse,
		ShortName:     a.ShortName,
		MinPrice:      a.MinPrice,
		PurchasePrice: a.PurchasePrice,
	}
}
