//go:build unit || e2e

package builder

import (
	"time"

	"seller-catalog/internal/domain/coupon"
	reqdto "seller-catalog/internal/handler/dto/request"
	"seller-catalog/internal/infra/dbq"
	"seller-catalog/internal/pkg/pgconv"
	"seller-catalog/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type CouponBuilder struct {
	ID          int64
	Shop        string
	Type        string
	Amount      string
	MinPrice    string
	StartDate   time.Time
	EndDate     time.Time
	Description string
	IsActive    bool
	ProductIDs  []string
}

func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		ID:          1,
		Shop:        "shop-a",
		Type:        "instant",
		Amount:      "30",
		MinPrice:    "0",
		StartDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		Description: "summer sale",
		IsActive:    true,
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) Instant(amount string) *CouponBuilder {
	b.Type, b.Amount, b.MinPrice = "instant", amount, "0"
	return b
}

func (b *CouponBuilder) Threshold(minPrice, amount string) *CouponBuilder {
	b.Type, b.Amount, b.MinPrice = "threshold", amount, minPrice
	return b
}

func (b *CouponBuilder) Discount(rate string) *CouponBuilder {
	b.Type, b.Amount, b.MinPrice = "discount", rate, "0"
	return b
}

func (b *CouponBuilder) ScopedTo(productIDs ...string) *CouponBuilder {
	b.ProductIDs = productIDs
	return b
}

func (b *CouponBuilder) Inactive() *CouponBuilder {
	b.IsActive = false
	return b
}

func (b *CouponBuilder) Attributes() coupon.Attributes {
	return coupon.Attributes{
		ID:          b.ID,
		Shop:        b.Shop,
		Type:        coupon.Type(b.Type),
		Amount:      decimal.RequireFromString(b.Amount),
		MinPrice:    decimal.RequireFromString(b.MinPrice),
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		Description: b.Description,
		IsActive:    b.IsActive,
		Scope:       coupon.ScopedTo(b.ProductIDs...),
	}
}

// Build methods
func (b *CouponBuilder) BuildDomain() (*coupon.Coupon, error) {
	return coupon.NewCoupon(b.Attributes())
}

func (b *CouponBuilder) MustBuildDomain() *coupon.Coupon {
	c, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return c
}

func (b *CouponBuilder) BuildView() *queries.CouponView {
	return &queries.CouponView{
		ID:          b.ID,
		Shop:        b.Shop,
		CouponType:  b.Type,
		Amount:      decimal.RequireFromString(b.Amount),
		MinPrice:    decimal.RequireFromString(b.MinPrice),
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		Description: b.Description,
		IsActive:    b.IsActive,
		ProductIDs:  b.ProductIDs,
	}
}

func (b *CouponBuilder) BuildRow() dbq.Coupon {
	return dbq.Coupon{
		ID:          b.ID,
		Shop:        b.Shop,
		CouponType:  b.Type,
		Amount:      pgconv.DecimalToNumeric(decimal.RequireFromString(b.Amount)),
		MinPrice:    pgconv.DecimalToNumeric(decimal.RequireFromString(b.MinPrice)),
		StartDate:   pgconv.DateToPgtype(b.StartDate),
		EndDate:     pgconv.DateToPgtype(b.EndDate),
		Description: b.Description,
		IsActive:    b.IsActive,
		ProductIds:  pgconv.StringPtrToPgtype(coupon.ScopedTo(b.ProductIDs...).Encode()),
	}
}

func (b *CouponBuilder) BuildRequestDTO() reqdto.CouponRequest {
	minPrice := decimal.RequireFromString(b.MinPrice)
	active := b.IsActive
	return reqdto.CouponRequest{
		Shop:        b.Shop,
		CouponType:  b.Type,
		Amount:      decimal.RequireFromString(b.Amount),
		MinPrice:    &minPrice,
		StartDate:   b.StartDate.Format(time.DateOnly),
		EndDate:     b.EndDate.Format(time.DateOnly),
		Description: b.Description,
		IsActive:    &active,
		ProductIDs:  b.ProductIDs,
	}
}
