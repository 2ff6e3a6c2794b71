package dbq

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const couponColumns = `id, shop, coupon_type, amount, min_price, start_date, end_date,
       description, is_active, product_ids, created_at, updated_at`

func scanCoupon(row pgx.Row) (Coupon, error) {
	var i Coupon
	err := row.Scan(
		&i.ID,
		&i.Shop,
		&i.CouponType,
		&i.Amount,
		&i.MinPrice,
		&i.StartDate,
		&i.EndDate,
		&i.Description,
		&i.IsActive,
		&i.ProductIds,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func collectCoupons(rows pgx.Rows, err error) ([]Coupon, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Coupon{}
	for rows.Next() {
		i, err := scanCoupon(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

type CouponParams struct {
	Shop        string
	CouponType  string
	Amount      pgtype.Numeric
	MinPrice    pgtype.Numeric
	StartDate   pgtype.Date
	EndDate     pgtype.Date
	Description string
	IsActive    bool
	ProductIds  pgtype.Text
}

const insertCoupon = `-- name: InsertCoupon :one
INSERT INTO coupons (shop, coupon_type, amount, min_price, start_date, end_date, description, is_active, product_ids)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`

func (q *Queries) InsertCoupon(ctx context.Context, db DBTX, arg CouponParams) (int64, error) {
	var id int64
	err := db.QueryRow(ctx, insertCoupon,
		arg.Shop,
		arg.CouponType,
		arg.Amount,
		arg.MinPrice,
		arg.StartDate,
		arg.EndDate,
		arg.Description,
		arg.IsActive,
		arg.ProductIds,
	).Scan(&id)
	return id, err
}

const updateCoupon = `-- name: UpdateCoupon :execrows
UPDATE coupons
SET shop = $2, coupon_type = $3, amount = $4, min_price = $5, start_date = $6, end_date = $7,
    description = $8, is_active = $9, product_ids = $10, updated_at = now()
WHERE id = $1`

type UpdateCouponParams struct {
	ID int64
	CouponParams
}

func (q *Queries) UpdateCoupon(ctx context.Context, db DBTX, arg UpdateCouponParams) (int64, error) {
	tag, err := db.Exec(ctx, updateCoupon,
		arg.ID,
		arg.Shop,
		arg.CouponType,
		arg.Amount,
		arg.MinPrice,
		arg.StartDate,
		arg.EndDate,
		arg.Description,
		arg.IsActive,
		arg.ProductIds,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteCoupon = `-- name: DeleteCoupon :one
DELETE FROM coupons WHERE id = $1
RETURNING shop`

// DeleteCoupon returns the shop of the removed coupon.
func (q *Queries) DeleteCoupon(ctx context.Context, db DBTX, id int64) (string, error) {
	var shop string
	err := db.QueryRow(ctx, deleteCoupon, id).Scan(&shop)
	return shop, err
}

const getCouponByID = `-- name: GetCouponByID :one
SELECT ` + couponColumns + `
FROM coupons
WHERE id = $1`

func (q *Queries) GetCouponByID(ctx context.Context, db DBTX, id int64) (Coupon, error) {
	return scanCoupon(db.QueryRow(ctx, getCouponByID, id))
}

const listCoupons = `-- name: ListCoupons :many
SELECT ` + couponColumns + `
FROM coupons
ORDER BY shop, start_date DESC, id`

func (q *Queries) ListCoupons(ctx context.Context, db DBTX) ([]Coupon, error) {
	return collectCoupons(db.Query(ctx, listCoupons))
}

const listActiveCouponsByShop = `-- name: ListActiveCouponsByShop :many
SELECT ` + couponColumns + `
FROM coupons
WHERE shop = $1 AND is_active AND start_date <= $2 AND end_date >= $2
ORDER BY amount DESC, id`

type ListActiveCouponsByShopParams struct {
	Shop  string
	Today pgtype.Date
}

func (q *Queries) ListActiveCouponsByShop(ctx context.Context, db DBTX, arg ListActiveCouponsByShopParams) ([]Coupon, error) {
	return collectCoupons(db.Query(ctx, listActiveCouponsByShop, arg.Shop, arg.Today))
}

const getCouponStats = `-- name: GetCouponStats :one
SELECT count(*) AS total,
       count(*) FILTER (WHERE is_active AND start_date <= $1 AND end_date >= $1) AS active,
       count(*) FILTER (WHERE end_date < $1) AS expired
FROM coupons`

type CouponStatsRow struct {
	Total   int64
	Active  int64
	Expired int64
}

func (q *Queries) GetCouponStats(ctx context.Context, db DBTX, today pgtype.Date) (CouponStatsRow, error) {
	var i CouponStatsRow
	err := db.QueryRow(ctx, getCouponStats, today).Scan(&i.Total, &i.Active, &i.Expired)
	return i, err
}
