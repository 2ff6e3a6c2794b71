//go:build unit

package commands_test

import (
	"context"
	"testing"

	"seller-catalog/internal/infra/changefeed"
	"seller-catalog/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExclusionCommands(t *testing.T) {
	ctx := context.Background()
	values := []string{"A-1", " b-2 "}

	t.Run("正常系: 無効spec_idを置き換える", func(t *testing.T) {
		f := newUoWFixture(t)
		f.expectWithin()
		f.exclusions.EXPECT().ReplaceInvalidSpecIDs(gomock.Any(), values).Return(int64(2), nil)
		f.events.EXPECT().Publish(changefeed.KindExclusions, "")

		uc := commands.NewExclusionCommands(f.uow, f.events)
		got, err := uc.ReplaceInvalidSpecIDs(ctx, admin, values)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got)
	})

	t.Run("正常系: 有効SKUを置き換える", func(t *testing.T) {
		f := newUoWFixture(t)
		f.expectWithin()
		f.exclusions.EXPECT().ReplaceEnabledSKUs(gomock.Any(), values).Return(int64(2), nil)
		f.events.EXPECT().Publish(changefeed.KindExclusions, "")

		uc := commands.NewExclusionCommands(f.uow, f.events)
		got, err := uc.ReplaceEnabledSKUs(ctx, admin, values)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got)
	})

	t.Run("異常系: 全ショップ権限がなければ拒否", func(t *testing.T) {
		f := newUoWFixture(t)
		uc := commands.NewExclusionCommands(f.uow, f.events)
		_, err := uc.ReplaceEnabledSKUs(ctx, sellerA, values)
		assert.ErrorIs(t, err, commands.ErrForbidden)
	})
}

func TestActor(t *testing.T) {
	assert.True(t, sellerA.CoversShop(" shop-a "))
	assert.False(t, sellerA.CoversShop("shop-b"))
	assert.False(t, sellerA.CoversAll())
	assert.True(t, admin.CoversShop("anything"))
	assert.True(t, admin.CoversAll())
	assert.False(t, commands.Actor{}.CoversShop("shop-a"))
}
