package queries

import (
	"context"
	"log/slog"
	"time"

	"seller-catalog/internal/infra"
	"seller-catalog/internal/pkg/clock"
	"seller-catalog/internal/pkg/errs"
)

//go:generate mockgen -source=coupon.go -destination=../../../tests/mock/queries/coupon_mock.go -package=queriesmock

var ErrCouponNotFound = errs.Mark(errs.New("coupon not found"), errs.ErrNotFound)

type CouponReadStore interface {
	FindByID(ctx context.Context, id int64) (*CouponView, error)
	ListAll(ctx context.Context) ([]*CouponView, error)
	ListActiveForShop(ctx context.Context, shop string, today time.Time) ([]*CouponView, error)
	Stats(ctx context.Context, today time.Time) (*CouponStats, error)
}

// ActiveCouponCache keeps the active coupon list of a shop for one business day.
// Get reports the shop's invalidation epoch alongside a miss; Set stores the
// list only while the shop is still at that epoch.
type ActiveCouponCache interface {
	Get(ctx context.Context, shop string, day time.Time) ([]*CouponView, int64, bool)
	Set(ctx context.Context, shop string, day time.Time, epoch int64, coupons []*CouponView)
}

type CouponQueries interface {
	GetByID(ctx context.Context, id int64) (*CouponView, error)
	ListAll(ctx context.Context) ([]*CouponView, error)
	// ListActiveForShop lists coupons active today, highest amount first.
	ListActiveForShop(ctx context.Context, shop string) ([]*CouponView, error)
	Stats(ctx context.Context) (*CouponStats, error)
}

type couponQueriesImpl struct {
	store CouponReadStore
	cache ActiveCouponCache
	clock clock.Clock
	loc   *time.Location
}

func NewCouponQueries(store CouponReadStore, cache ActiveCouponCache, clk clock.Clock, loc *time.Location) CouponQueries {
	return &couponQueriesImpl{
		store: store,
		cache: cache,
		clock: clk,
		loc:   loc,
	}
}

func (q *couponQueriesImpl) GetByID(ctx context.Context, id int64) (*CouponView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *couponQueriesImpl) ListAll(ctx context.Context) ([]*CouponView, error) {
	return q.store.ListAll(ctx)
}

func (q *couponQueriesImpl) ListActiveForShop(ctx context.Context, shop string) ([]*CouponView, error) {
	today := clock.Today(q.clock, q.loc)
	cached, epoch, ok := q.cache.Get(ctx, shop, today)
	if ok {
		return cached, nil
	}

	coupons, err := q.store.ListActiveForShop(ctx, shop, today)
	if err != nil {
		return nil, err
	}
	q.cache.Set(ctx, shop, today, epoch, coupons)
	slog.Debug("active coupons loaded", "shop", shop, "date", today.Format(time.DateOnly), "count", len(coupons))
	return coupons, nil
}

func (q *couponQueriesImpl) Stats(ctx context.Context) (*CouponStats, error) {
	return q.store.Stats(ctx, clock.Today(q.clock, q.loc))
}
