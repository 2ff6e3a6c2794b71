//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"seller-catalog/internal/infra"
	"seller-catalog/internal/infra/dbq"
	"seller-catalog/internal/infra/readstore"
	"seller-catalog/tests/common/builder"
	readstoremock "seller-catalog/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCouponReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		row           func() dbq.Coupon
		err           error
		expectKind    infra.RepositoryErrorKind
		expectProduct []string
	}{
		{
			name:          "success: scoped coupon",
			row:           func() dbq.Coupon { return builder.NewCouponBuilder().ScopedTo("p-2", "p-1").BuildRow() },
			expectProduct: []string{"p-1", "p-2"},
		},
		{
			name:          "success: store-wide coupon",
			row:           func() dbq.Coupon { return builder.NewCouponBuilder().BuildRow() },
			expectProduct: nil,
		},
		{
			name: "success: malformed scope falls back to store-wide",
			row: func() dbq.Coupon {
				row := builder.NewCouponBuilder().BuildRow()
				row.ProductIds = pgtype.Text{String: "{not json", Valid: true}
				return row
			},
			expectProduct: nil,
		},
		{
			name:       "error: coupon not found",
			row:        func() dbq.Coupon { return dbq.Coupon{} },
			err:        pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name:       "error: database error",
			row:        func() dbq.Coupon { return dbq.Coupon{} },
			err:        errDBConnectionLost,
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockCouponReadQueries(ctrl)
			mockQueries.EXPECT().GetCouponByID(ctx, gomock.Any(), int64(1)).Return(tc.row(), tc.err)

			store := readstore.NewCouponReadStore(mockQueries, &mockDBTX{})
			result, actualError := store.FindByID(ctx, 1)

			if tc.expectKind != "" {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, actualError)
			assert.Equal(t, tc.expectProduct, result.ProductIDs)
			assert.True(t, result.Amount.Equal(decimal.RequireFromString("30")))
			assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), result.StartDate)
		})
	}
}

func TestCouponReadStore_ListActiveForShop(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockCouponReadQueries(ctrl)
	mockQueries.EXPECT().ListActiveCouponsByShop(ctx, gomock.Any(), dbq.ListActiveCouponsByShopParams{
		Shop:  "shop-a",
		Today: pgtype.Date{Time: today, Valid: true},
	}).Return([]dbq.Coupon{
		builder.NewCouponBuilder().Instant("50").BuildRow(),
		builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) { b.ID = 2 }).Discount("0.9").BuildRow(),
	}, nil)

	store := readstore.NewCouponReadStore(mockQueries, &mockDBTX{})
	got, err := store.ListActiveForShop(ctx, "shop-a", today)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "instant", got[0].CouponType)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestCouponReadStore_Stats(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCouponReadQueries(ctrl)
		mockQueries.EXPECT().GetCouponStats(ctx, gomock.Any(), pgtype.Date{Time: today, Valid: true}).
			Return(dbq.CouponStatsRow{Total: 5, Active: 2, Expired: 1}, nil)

		store := readstore.NewCouponReadStore(mockQueries, &mockDBTX{})
		got, err := store.Stats(ctx, today)
		require.NoError(t, err)
		assert.Equal(t, int64(5), got.Total)
		assert.Equal(t, int64(2), got.Active)
		assert.Equal(t, int64(1), got.Expired)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCouponReadQueries(ctrl)
		mockQueries.EXPECT().GetCouponStats(ctx, gomock.Any(), gomock.Any()).Return(dbq.CouponStatsRow{}, errDBConnectionLost)

		store := readstore.NewCouponReadStore(mockQueries, &mockDBTX{})
		_, err := store.Stats(ctx, today)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
