package cache

import (
	"context"
	"strings"
	"time"

	"seller-catalog/internal/usecase/queries"
)

const activeCouponPrefix = "active_coupons:"

const shopEpochPrefix = "coupon_epoch:"

// CouponCache holds the active coupon list per (shop, business day).
// Failures are logged and treated as misses.
//
// Every InvalidateShop advances the shop's epoch. Get returns the epoch seen
// on a miss and Set drops lists loaded under an older epoch, so a read racing
// a coupon write cannot repopulate the cache with the pre-write list.
type CouponCache interface {
	Get(ctx context.Context, shop string, day time.Time) ([]*queries.CouponView, int64, bool)
	Set(ctx context.Context, shop string, day time.Time, epoch int64, coupons []*queries.CouponView)
	InvalidateShop(ctx context.Context, shop string) error
}

func activeCouponKey(shop string, day time.Time) string {
	return shopPrefix(shop) + day.Format(time.DateOnly)
}

func shopPrefix(shop string) string {
	return activeCouponPrefix + strings.TrimSpace(shop) + ":"
}

func shopEpochKey(shop string) string {
	return shopEpochPrefix + strings.TrimSpace(shop)
}
