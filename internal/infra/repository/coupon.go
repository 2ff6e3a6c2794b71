package repository

import (
	"context"

	"seller-catalog/internal/domain/coupon"
	"seller-catalog/internal/infra"
	"seller-catalog/internal/infra/dbq"
	"seller-catalog/internal/pkg/pgconv"
)

//go:generate mockgen -source=coupon.go -destination=../../../tests/mock/repository/coupon_mock.go -package=repositorymock

type CouponWriteQueries interface {
	InsertCoupon(ctx context.Context, db dbq.DBTX, arg dbq.CouponParams) (int64, error)
	UpdateCoupon(ctx context.Context, db dbq.DBTX, arg dbq.UpdateCouponParams) (int64, error)
	DeleteCoupon(ctx context.Context, db dbq.DBTX, id int64) (string, error)
}

type CouponRepository struct {
	queries CouponWriteQueries
	db      dbq.DBTX
}

func NewCouponRepository(queries CouponWriteQueries, db dbq.DBTX) *CouponRepository {
	return &CouponRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CouponRepository) Create(ctx context.Context, c *coupon.Coupon) (int64, error) {
	id, err := r.queries.InsertCoupon(ctx, r.db, toCouponParams(c))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create coupon", err)
	}
	return id, nil
}

func (r *CouponRepository) Update(ctx context.Context, c *coupon.Coupon) error {
	affected, err := r.queries.UpdateCoupon(ctx, r.db, dbq.UpdateCouponParams{
		ID:           c.ID(),
		CouponParams: toCouponParams(c),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update coupon", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CouponRepository) Delete(ctx context.Context, id int64) (string, error) {
	shop, err := r.queries.DeleteCoupon(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to delete coupon", err)
	}
	return shop, nil
}

func toCouponParams(c *coupon.Coupon) dbq.CouponParams {
	return dbq.CouponParams{
		Shop:        c.Shop(),
		CouponType:  c.Type().String(),
		Amount:      pgconv.DecimalToNumeric(c.Amount()),
		MinPrice:    pgconv.DecimalToNumeric(c.MinPrice()),
		StartDate:   pgconv.DateToPgtype(c.StartDate()),
		EndDate:     pgconv.DateToPgtype(c.EndDate()),
		Description: c.Description(),
		IsActive:    c.IsActive(),
		ProductIds:  pgconv.StringPtrToPgtype(c.Scope().Encode()),
	}
}
