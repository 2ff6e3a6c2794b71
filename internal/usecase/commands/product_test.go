//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"seller-catalog/internal/domain/product"
	"seller-catalog/internal/infra"
	"seller-catalog/internal/infra/changefeed"
	"seller-catalog/internal/pkg/errs"
	"seller-catalog/internal/usecase/commands"
	"seller-catalog/internal/usecase/shared"
	"seller-catalog/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProductCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 作成して変更を通知する", func(t *testing.T) {
		f := newUoWFixture(t)
		f.expectWithin()
		f.products.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *product.Product) error {
				assert.Equal(t, "spec-001", p.SpecID())
				return nil
			})
		f.events.EXPECT().Publish(changefeed.KindProducts, "shop-a")

		uc := commands.NewProductCommands(f.uow, f.events, 10)
		require.NoError(t, uc.Create(ctx, sellerA, builder.NewProductBuilder().Attributes()))
	})

	t.Run("異常系: 他ショップの商品は作成できない", func(t *testing.T) {
		f := newUoWFixture(t)
		attrs := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) { b.Shop = "shop-b" }).Attributes()

		uc := commands.NewProductCommands(f.uow, f.events, 10)
		err := uc.Create(ctx, sellerA, attrs)
		assert.True(t, errs.Is(err, errs.ErrShopForbidden))
	})

	t.Run("異常系: 名前が空ならバリデーションエラー", func(t *testing.T) {
		f := newUoWFixture(t)
		attrs := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) { b.Name = "  " }).Attributes()

		uc := commands.NewProductCommands(f.uow, f.events, 10)
		err := uc.Create(ctx, sellerA, attrs)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("異常系: 既存キーは競合エラーになる", func(t *testing.T) {
		f := newUoWFixture(t)
		f.expectWithin()
		f.products.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("dup", nil, infra.KindDuplicateKey))

		uc := commands.NewProductCommands(f.uow, f.events, 10)
		err := uc.Create(ctx, sellerA, builder.NewProductBuilder().Attributes())
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})
}

func TestProductCommands_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: パスのspec_idで更新する", func(t *testing.T) {
		f := newUoWFixture(t)
		f.expectWithin()
		f.reads.EXPECT().ProductBySpecID(gomock.Any(), "spec-009").
			Return(&shared.ProductSnapshot{SpecID: "spec-009", Shop: "shop-a"}, nil)
		f.products.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *product.Product) error {
				assert.Equal(t, "spec-009", p.SpecID())
				return nil
			})
		f.events.EXPECT().Publish(changefeed.KindProducts, "shop-a")

		uc := commands.NewProductCommands(f.uow, f.events, 10)
		require.NoError(t, uc.Update(ctx, sellerA, "spec-009", builder.NewProductBuilder().Attributes()))
	})

	t.Run("異常系: 存在しない商品はNotFound", func(t *testing.T) {
		f := newUoWFixture(t)
		f.expectWithin()
		f.reads.EXPECT().ProductBySpecID(gomock.Any(), "spec-001").
			Return(nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound))

		uc := commands.NewProductCommands(f.uow, f.events, 10)
		err := uc.Update(ctx, sellerA, "spec-001", builder.NewProductBuilder().Attributes())
		assert.ErrorIs(t, err, commands.ErrProductNotFoundWrite)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("異常系: 保存先ショップの権限がなければ拒否", func(t *testing.T) {
		f := newUoWFixture(t)
		f.expectWithin()
		f.reads.EXPECT().ProductBySpecID(gomock.Any(), "spec-001").
			Return(&shared.ProductSnapshot{SpecID: "spec-001", Shop: "shop-b"}, nil)

		uc := commands.NewProductCommands(f.uow, f.events, 10)
		err := uc.Update(ctx, sellerA, "spec-001", builder.NewProductBuilder().Attributes())
		assert.ErrorIs(t, err, commands.ErrForbidden)
	})
}

func TestProductCommands_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 削除して元のショップに通知する", func(t *testing.T) {
		f := newUoWFixture(t)
		f.expectWithin()
		f.reads.EXPECT().ProductBySpecID(gomock.Any(), "spec-001").
			Return(&shared.ProductSnapshot{SpecID: "spec-001", Shop: "shop-a"}, nil)
		f.products.EXPECT().Delete(gomock.Any(), "spec-001").Return(nil)
		f.events.EXPECT().Publish(changefeed.KindProducts, "shop-a")

		uc := commands.NewProductCommands(f.uow, f.events, 10)
		require.NoError(t, uc.Delete(ctx, sellerA, " spec-001 "))
	})

	t.Run("異常系: 空のspec_id", func(t *testing.T) {
		f := newUoWFixture(t)
		uc := commands.NewProductCommands(f.uow, f.events, 10)
		assert.ErrorIs(t, uc.Delete(ctx, sellerA, ""), product.ErrEmptySpecID)
	})

	t.Run("異常系: DB障害はストレージエラー", func(t *testing.T) {
		f := newUoWFixture(t)
		f.expectWithin()
		f.reads.EXPECT().ProductBySpecID(gomock.Any(), "spec-001").
			Return(&shared.ProductSnapshot{SpecID: "spec-001", Shop: "shop-a"}, nil)
		f.products.EXPECT().Delete(gomock.Any(), "spec-001").
			Return(infra.WrapRepoErr("failed to delete product", errors.New("conn reset")))

		uc := commands.NewProductCommands(f.uow, f.events, 10)
		err := uc.Delete(ctx, sellerA, "spec-001")
		assert.True(t, errs.Is(err, errs.ErrStorage))
	})
}

func TestProductCommands_UpsertBatch(t *testing.T) {
	ctx := context.Background()

	rows := []product.Attributes{
		builder.NewProductBuilder().Attributes(),
		builder.NewProductBuilder().With(func(b *builder.ProductBuilder) { b.SpecID = "spec-002" }).Attributes(),
		builder.NewProductBuilder().With(func(b *builder.ProductBuilder) { b.SpecID = "spec-003"; b.Shop = "shop-b" }).Attributes(),
	}

	t.Run("正常系: 件数を返しショップごとに通知する", func(t *testing.T) {
		f := newUoWFixture(t)
		f.expectWithin()
		f.products.EXPECT().UpsertBatch(gomock.Any(), gomock.Len(3)).
			Return(shared.UpsertResult{Added: 2, Updated: 1}, nil)
		f.events.EXPECT().Publish(changefeed.KindProducts, "shop-a")
		f.events.EXPECT().Publish(changefeed.KindProducts, "shop-b")

		uc := commands.NewProductCommands(f.uow, f.events, 10)
		got, err := uc.UpsertBatch(ctx, admin, rows)
		require.NoError(t, err)
		assert.Equal(t, &shared.UpsertResult{Added: 2, Updated: 1}, got)
	})

	t.Run("異常系: 一部のショップに権限がない", func(t *testing.T) {
		f := newUoWFixture(t)
		uc := commands.NewProductCommands(f.uow, f.events, 10)
		_, err := uc.UpsertBatch(ctx, sellerA, rows)
		assert.ErrorIs(t, err, commands.ErrForbidden)
	})

	t.Run("異常系: 上限を超えるバッチ", func(t *testing.T) {
		f := newUoWFixture(t)
		uc := commands.NewProductCommands(f.uow, f.events, 2)
		_, err := uc.UpsertBatch(ctx, admin, rows)
		assert.ErrorIs(t, err, commands.ErrBatchTooLarge)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("異常系: 不正な行は行番号付きで拒否", func(t *testing.T) {
		f := newUoWFixture(t)
		bad := append([]product.Attributes{}, rows[0], builder.NewProductBuilder().With(func(b *builder.ProductBuilder) { b.Price = "-1" }).Attributes())

		uc := commands.NewProductCommands(f.uow, f.events, 10)
		_, err := uc.UpsertBatch(ctx, admin, bad)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "row 2")
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}
