package readstore

import (
	"context"
	"log/slog"
	"time"

	"seller-catalog/internal/domain/coupon"
	"seller-catalog/internal/infra"
	"seller-catalog/internal/infra/dbq"
	"seller-catalog/internal/pkg/pgconv"
	"seller-catalog/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=coupon.go -destination=../../../tests/mock/readstore/coupon_mock.go -package=readstoremock

type CouponReadQueries interface {
	GetCouponByID(ctx context.Context, db dbq.DBTX, id int64) (dbq.Coupon, error)
	ListCoupons(ctx context.Context, db dbq.DBTX) ([]dbq.Coupon, error)
	ListActiveCouponsByShop(ctx context.Context, db dbq.DBTX, arg dbq.ListActiveCouponsByShopParams) ([]dbq.Coupon, error)
	GetCouponStats(ctx context.Context, db dbq.DBTX, today pgtype.Date) (dbq.CouponStatsRow, error)
}

type CouponReadStore struct {
	queries CouponReadQueries
	db      dbq.DBTX
}

func NewCouponReadStore(queries CouponReadQueries, db dbq.DBTX) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CouponReadStore) FindByID(ctx context.Context, id int64) (*queries.CouponView, error) {
	row, err := r.queries.GetCouponByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get coupon by id", err)
	}

	view, err := toCouponView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert coupon row", err)
	}
	return view, nil
}

func (r *CouponReadStore) ListAll(ctx context.Context) ([]*queries.CouponView, error) {
	rows, err := r.queries.ListCoupons(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	return toCouponViews(rows)
}

func (r *CouponReadStore) ListActiveForShop(ctx context.Context, shop string, today time.Time) ([]*queries.CouponView, error) {
	rows, err := r.queries.ListActiveCouponsByShop(ctx, r.db, dbq.ListActiveCouponsByShopParams{
		Shop:  shop,
		Today: pgconv.DateToPgtype(today),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active coupons", err)
	}
	return toCouponViews(rows)
}

func (r *CouponReadStore) Stats(ctx context.Context, today time.Time) (*queries.CouponStats, error) {
	row, err := r.queries.GetCouponStats(ctx, r.db, pgconv.DateToPgtype(today))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get coupon stats", err)
	}
	return &queries.CouponStats{Total: row.Total, Active: row.Active, Expired: row.Expired}, nil
}

func toCouponViews(rows []dbq.Coupon) ([]*queries.CouponView, error) {
	views := make([]*queries.CouponView, 0, len(rows))
	for _, row := range rows {
		view, err := toCouponView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert coupon row", err)
		}
		views = append(views, view)
	}
	return views, nil
}

func toCouponView(row dbq.Coupon) (*queries.CouponView, error) {
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, err
	}
	minPrice, err := pgconv.DecimalFromNumeric(row.MinPrice)
	if err != nil {
		return nil, err
	}

	// A scope that cannot be read falls back to store-wide.
	scope, err := coupon.DecodeScope(pgconv.StringPtrFromPgtype(row.ProductIds))
	if err != nil {
		slog.Warn("malformed coupon scope, treating coupon as store-wide",
			"coupon_id", row.ID,
			"shop", row.Shop,
			"error", err.Error())
	}

	return &queries.CouponView{
		ID:          row.ID,
		Shop:        row.Shop,
		CouponType:  row.CouponType,
		Amount:      amount,
		MinPrice:    minPrice,
		StartDate:   pgconv.DateFromPgtype(row.StartDate),
		EndDate:     pgconv.DateFromPgtype(row.EndDate),
		Description: row.Description,
		IsActive:    row.IsActive,
		ProductIDs:  scope.ProductIDs(),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
