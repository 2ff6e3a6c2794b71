package dbq

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Product struct {
	SpecID        string
	Sku           string
	ProductID     string
	Name          string
	SpecName      string
	Price         pgtype.Numeric
	Quantity      int32
	Shop          string
	Category      string
	Warehouse     string
	ShortName     string
	MinPrice      pgtype.Numeric
	PurchasePrice pgtype.Numeric
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type Coupon struct {
	ID          int64
	Shop        string
	CouponType  string
	Amount      pgtype.Numeric
	MinPrice    pgtype.Numeric
	StartDate   pgtype.Date
	EndDate     pgtype.Date
	Description string
	IsActive    bool
	ProductIds  pgtype.Text
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}
