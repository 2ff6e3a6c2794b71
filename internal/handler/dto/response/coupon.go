package response

import (
	"log/slog"
	"time"

	"seller-catalog/internal/usecase/queries"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type CouponResponse struct {
	ID          int64           `json:"id"`
	Shop        string          `json:"shop"`
	CouponType  string          `json:"coupon_type"`
	Amount      decimal.Decimal `json:"amount"`
	MinPrice    decimal.Decimal `json:"min_price"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	Description string          `json:"description"`
	IsActive    bool            `json:"is_active"`
	ProductIDs  []string        `json:"product_ids"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Coupon windows are calendar dates, rendered without a time part.
var dateConverter = copier.TypeConverter{
	SrcType: time.Time{},
	DstType: copier.String,
	Fn: func(src any) (any, error) {
		return src.(time.Time).Format(time.DateOnly), nil
	},
}

func FromCouponView(v *queries.CouponView) *CouponResponse {
	var resp CouponResponse
	err := copier.CopyWithOption(&resp, v, copier.Option{
		Converters: []copier.TypeConverter{dateConverter},
	})
	if err != nil {
		slog.Error("failed to copy coupon view", "coupon_id", v.ID, "error", err)
	}
	if resp.ProductIDs == nil {
		resp.ProductIDs = []string{}
	}
	return &resp
}

func FromCouponList(views []*queries.CouponView) []*CouponResponse {
	out := make([]*CouponResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromCouponView(v))
	}
	return out
}
