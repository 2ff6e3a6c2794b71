package coupon

import (
	"strings"
	"time"

	"seller-catalog/internal/pkg/errs"
	"seller-catalog/internal/pkg/money"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyShop           = errs.Mark(errs.New("coupon shop must not be empty"), errs.ErrValidation)
	ErrNonPositiveAmount   = errs.Mark(errs.New("coupon amount must be positive"), errs.ErrValidation)
	ErrNegativeMinPrice    = errs.Mark(errs.New("coupon min price cannot be negative"), errs.ErrValidation)
	ErrInvalidDateWindow   = errs.Mark(errs.New("coupon start date must not be after end date"), errs.ErrValidation)
	ErrMissingDateBoundary = errs.Mark(errs.New("coupon start and end dates are required"), errs.ErrValidation)
	ErrAmountOutOfRange    = errs.Mark(errs.Newf("coupon amounts allow at most %d decimal places and %d integer digits", money.Scale, money.Precision-money.Scale), errs.ErrValidation)
)

type Attributes struct {
	ID          int64
	Shop        string
	Type        Type
	Amount      decimal.Decimal
	MinPrice    decimal.Decimal
	StartDate   time.Time
	EndDate     time.Time
	Description string
	IsActive    bool
	Scope       Scope
}

type Coupon struct {
	id          int64
	shop        string
	couponType  Type
	amount      decimal.Decimal
	minPrice    decimal.Decimal
	startDate   time.Time
	endDate     time.Time
	description string
	isActive    bool
	scope       Scope
}

// NewCoupon validates a coupon. ID is zero for coupons not yet stored.
// Dates are truncated to calendar days.
func NewCoupon(a Attributes) (*Coupon, error) {
	if strings.TrimSpace(a.Shop) == "" {
		return nil, ErrEmptyShop
	}
	couponType, err := ParseType(string(a.Type))
	if err != nil {
		return nil, err
	}
	if !a.Amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}
	if a.MinPrice.IsNegative() {
		return nil, ErrNegativeMinPrice
	}
	if !money.Storable(a.Amount) || !money.Storable(a.MinPrice) {
		return nil, ErrAmountOutOfRange
	}
	if a.StartDate.IsZero() || a.EndDate.IsZero() {
		return nil, ErrMissingDateBoundary
	}

	start, end := dateOnly(a.StartDate), dateOnly(a.EndDate)
	if start.After(end) {
		return nil, ErrInvalidDateWindow
	}

	return &Coupon{
		id:          a.ID,
		shop:        strings.TrimSpace(a.Shop),
		couponType:  couponType,
		amount:      a.Amount,
		minPrice:    a.MinPrice,
		startDate:   start,
		endDate:     end,
		description: a.Description,
		isActive:    a.IsActive,
		scope:       a.Scope,
	}, nil
}

// InWindow reports whether the calendar day today lies in [start, end].
func (c *Coupon) InWindow(today time.Time) bool {
	d := dateOnly(today)
	return !d.Before(c.startDate) && !d.After(c.endDate)
}

func (c *Coupon) IsExpired(today time.Time) bool {
	return c.endDate.Before(dateOnly(today))
}

func (c *Coupon) IsApplicable(today time.Time, productID string) bool {
	return c.isActive && c.InWindow(today) && c.scope.Covers(productID)
}

// Candidate returns the price after this coupon alone, or false when the
// coupon yields no candidate for price.
func (c *Coupon) Candidate(price decimal.Decimal) (decimal.Decimal, bool) {
	switch c.couponType {
	case TypeInstant:
		return decimal.Max(decimal.Zero, price.Sub(c.amount)), true
	case TypeThreshold:
		if price.LessThan(c.minPrice) {
			return decimal.Decimal{}, false
		}
		return decimal.Max(decimal.Zero, price.Sub(c.amount)), true
	case TypeDiscount:
		return price.Mul(c.amount), true
	default:
		return decimal.Decimal{}, false
	}
}

func (c *Coupon) ID() int64                 { return c.id }
func (c *Coupon) Shop() string              { return c.shop }
func (c *Coupon) Type() Type                { return c.couponType }
func (c *Coupon) Amount() decimal.Decimal   { return c.amount }
func (c *Coupon) MinPrice() decimal.Decimal { return c.minPrice }
func (c *Coupon) StartDate() time.Time      { return c.startDate }
func (c *Coupon) EndDate() time.Time        { return c.endDate }
func (c *Coupon) Description() string       { return c.description }
func (c *Coupon) IsActive() bool            { return c.isActive }
func (c *Coupon) Scope() Scope              { return c.scope }

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
