package product

import (
	"strings"

	"seller-catalog/internal/pkg/errs"
	"seller-catalog/internal/pkg/money"

	"github.com/shopspring/decimal"
)

// WildcardSKU marks a specification that is always enabled.
const WildcardSKU = "*"

var (
	ErrEmptySpecID      = errs.Mark(errs.New("spec id must not be empty"), errs.ErrValidation)
	ErrEmptySKU         = errs.Mark(errs.New("sku must not be empty"), errs.ErrValidation)
	ErrEmptyName        = errs.Mark(errs.New("name must not be empty"), errs.ErrValidation)
	ErrNegativePrice    = errs.Mark(errs.New("price cannot be negative"), errs.ErrValidation)
	ErrNegativeQuantity = errs.Mark(errs.New("quantity cannot be negative"), errs.ErrValidation)
	ErrPriceOutOfRange  = errs.Mark(errs.Newf("prices allow at most %d decimal places and %d integer digits", money.Scale, money.Precision-money.Scale), errs.ErrValidation)
)

type Attributes struct {
	SpecID        string
	SKU           string
	ProductID     string
	Name          string
	SpecName      string
	Price         decimal.Decimal
	Quantity      int32
	Shop          string
	Category      string
	Warehouse     string
	ShortName     string
	MinPrice      *decimal.Decimal
	PurchasePrice *decimal.Decimal
}

type Product struct {
	specID        string
	sku           string
	productID     string
	name          string
	specName      string
	price         decimal.Decimal
	quantity      int32
	shop          string
	category      string
	warehouse     string
	shortName     string
	minPrice      *decimal.Decimal
	purchasePrice *decimal.Decimal
}

// NewProduct trims every text attribute and validates the result.
func NewProduct(a Attributes) (*Product, error) {
	p := &Product{
		specID:        strings.TrimSpace(a.SpecID),
		sku:           strings.TrimSpace(a.SKU),
		productID:     strings.TrimSpace(a.ProductID),
		name:          strings.TrimSpace(a.Name),
		specName:      strings.TrimSpace(a.SpecName),
		price:         a.Price,
		quantity:      a.Quantity,
		shop:          strings.TrimSpace(a.Shop),
		category:      strings.TrimSpace(a.Category),
		warehouse:     strings.TrimSpace(a.Warehouse),
		shortName:     strings.TrimSpace(a.ShortName),
		minPrice:      a.MinPrice,
		purchasePrice: a.PurchasePrice,
	}

	switch {
	case p.specID == "":
		return nil, ErrEmptySpecID
	case p.sku == "":
		return nil, ErrEmptySKU
	case p.name == "":
		return nil, ErrEmptyName
	case p.price.IsNegative():
		return nil, ErrNegativePrice
	case p.quantity < 0:
		return nil, ErrNegativeQuantity
	case !storable(&p.price, p.minPrice, p.purchasePrice):
		return nil, ErrPriceOutOfRange
	}
	return p, nil
}

func storable(values ...*decimal.Decimal) bool {
	for _, v := range values {
		if v != nil && !money.Storable(*v) {
			return false
		}
	}
	return true
}

func (p *Product) IsWildcardSKU() bool { return p.sku == WildcardSKU }

func (p *Product) SpecID() string                  { return p.specID }
func (p *Product) SKU() string                     { return p.sku }
func (p *Product) ProductID() string               { return p.productID }
func (p *Product) Name() string                    { return p.name }
func (p *Product) SpecName() string                { return p.specName }
func (p *Product) Price() decimal.Decimal          { return p.price }
func (p *Product) Quantity() int32                 { return p.quantity }
func (p *Product) Shop() string                    { return p.shop }
func (p *Product) Category() string                { return p.category }
func (p *Product) Warehouse() string               { return p.warehouse }
func (p *Product) ShortName() string               { return p.shortName }
func (p *Product) MinPrice() *decimal.Decimal      { return p.minPrice }
func (p *Product) PurchasePrice() *decimal.Decimal { return p.purchasePrice }
