package request

import (
	"strings"
	"time"

	"seller-catalog/internal/domain/coupon"
	"seller-catalog/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrInvalidDate = errs.Mark(errs.New("dates must use the YYYY-MM-DD format"), errs.ErrValidation)

type CouponRequest struct {
	Shop       string          `json:"shop" binding:"required"`
	CouponType string          `json:"coupon_type" binding:"required"`
	Amount     decimal.Decimal `json:"amount"`
	// Only meaningful for threshold coupons; defaults to 0.
	MinPrice    *decimal.Decimal `json:"min_price,omitempty"`
	StartDate   string           `json:"start_date" binding:"required"`
	EndDate     string           `json:"end_date" binding:"required"`
	Description string           `json:"description"`
	// Defaults to true.
	IsActive   *bool    `json:"is_active,omitempty"`
	ProductIDs []string `json:"product_ids,omitempty"`
}

func (r CouponRequest) ToAttributes() (coupon.Attributes, error) {
	couponType, err := coupon.ParseType(r.CouponType)
	if err != nil {
		return coupon.Attributes{}, err
	}
	start, err := parseDate(r.StartDate)
	if err != nil {
		return coupon.Attributes{}, err
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return coupon.Attributes{}, err
	}

	minPrice := decimal.Zero
	if r.MinPrice != nil {
		minPrice = *r.MinPrice
	}
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}

	return coupon.Attributes{
		Shop:        strings.TrimSpace(r.Shop),
		Type:        couponType,
		Amount:      r.Amount,
		MinPrice:    minPrice,
		StartDate:   start,
		EndDate:     end,
		Description: strings.TrimSpace(r.Description),
		IsActive:    active,
		Scope:       coupon.ScopedTo(r.ProductIDs...),
	}, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
