//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"seller-catalog/internal/infra"
	"seller-catalog/internal/infra/cache"
	"seller-catalog/internal/pkg/clock"
	"seller-catalog/internal/pkg/errs"
	"seller-catalog/internal/usecase/queries"
	"seller-catalog/tests/common/builder"
	queriesmock "seller-catalog/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var shanghai = time.FixedZone("CST", 8*3600)

func TestCouponQueries_ListActiveForShop(t *testing.T) {
	ctx := context.Background()
	// 2024-06-14 18:00 UTC is 2024-06-15 in UTC+8.
	clk := clock.NewMockClock(time.Date(2024, 6, 14, 18, 0, 0, 0, time.UTC))
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	coupons := []*queries.CouponView{builder.NewCouponBuilder().BuildView()}

	t.Run("正常系: キャッシュヒット時はストアを呼ばない", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCouponReadStore(ctrl)
		couponCache := queriesmock.NewMockActiveCouponCache(ctrl)
		couponCache.EXPECT().Get(gomock.Any(), "shop-a", today).Return(coupons, int64(0), true)

		q := queries.NewCouponQueries(store, couponCache, clk, shanghai)
		got, err := q.ListActiveForShop(ctx, "shop-a")
		require.NoError(t, err)
		assert.Equal(t, coupons, got)
	})

	t.Run("正常系: ミス時は営業日でストアを引きキャッシュする", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCouponReadStore(ctrl)
		couponCache := queriesmock.NewMockActiveCouponCache(ctrl)
		gomock.InOrder(
			couponCache.EXPECT().Get(gomock.Any(), "shop-a", today).Return(nil, int64(3), false),
			store.EXPECT().ListActiveForShop(gomock.Any(), "shop-a", today).Return(coupons, nil),
			couponCache.EXPECT().Set(gomock.Any(), "shop-a", today, int64(3), coupons),
		)

		q := queries.NewCouponQueries(store, couponCache, clk, shanghai)
		got, err := q.ListActiveForShop(ctx, "shop-a")
		require.NoError(t, err)
		assert.Equal(t, coupons, got)
	})

	t.Run("異常系: ストア失敗はキャッシュしない", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCouponReadStore(ctrl)
		couponCache := queriesmock.NewMockActiveCouponCache(ctrl)
		couponCache.EXPECT().Get(gomock.Any(), "shop-a", today).Return(nil, int64(0), false)
		store.EXPECT().ListActiveForShop(gomock.Any(), "shop-a", today).
			Return(nil, infra.WrapRepoErr("failed to list active coupons", errors.New("boom")))

		q := queries.NewCouponQueries(store, couponCache, clk, shanghai)
		_, err := q.ListActiveForShop(ctx, "shop-a")
		assert.Error(t, err)
	})

	t.Run("正常系: 読み込み中に無効化された結果はキャッシュに残らない", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCouponReadStore(ctrl)
		memory := cache.NewMemoryCouponCache(time.Hour, clk)

		loading := make(chan struct{})
		release := make(chan struct{})
		store.EXPECT().ListActiveForShop(gomock.Any(), "shop-a", today).
			DoAndReturn(func(context.Context, string, time.Time) ([]*queries.CouponView, error) {
				close(loading)
				<-release
				return coupons, nil
			})
		store.EXPECT().ListActiveForShop(gomock.Any(), "shop-a", today).Return([]*queries.CouponView{}, nil)

		q := queries.NewCouponQueries(store, memory, clk, shanghai)
		done := make(chan []*queries.CouponView)
		go func() {
			got, _ := q.ListActiveForShop(ctx, "shop-a")
			done <- got
		}()

		<-loading
		require.NoError(t, memory.InvalidateShop(ctx, "shop-a"))
		close(release)
		assert.Equal(t, coupons, <-done)
		assert.Equal(t, 0, memory.Len())

		got, err := q.ListActiveForShop(ctx, "shop-a")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestCouponQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockCouponReadStore(ctrl)
	store.EXPECT().FindByID(gomock.Any(), int64(9)).
		Return(nil, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound))

	q := queries.NewCouponQueries(store, queriesmock.NewMockActiveCouponCache(ctrl), clock.NewRealClock(), time.UTC)
	_, err := q.GetByID(ctx, 9)
	assert.ErrorIs(t, err, queries.ErrCouponNotFound)
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}

func TestCouponQueries_Stats(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockCouponReadStore(ctrl)
	clk := clock.NewMockClock(time.Date(2024, 6, 14, 18, 0, 0, 0, time.UTC))
	stats := &queries.CouponStats{Total: 3, Active: 1, Expired: 1}
	store.EXPECT().Stats(gomock.Any(), time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)).Return(stats, nil)

	q := queries.NewCouponQueries(store, queriesmock.NewMockActiveCouponCache(ctrl), clk, shanghai)
	got, err := q.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, stats, got)
}
