//go:build unit

package repository_test

import (
	"context"
	"testing"

	"seller-catalog/internal/infra"
	"seller-catalog/internal/infra/dbq"
	"seller-catalog/internal/infra/repository"
	repositorymock "seller-catalog/tests/mock/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExclusionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("success: spec ids are trimmed and lower-cased", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockExclusionWriteQueries(ctrl)
		repo := repository.NewExclusionRepository(mockQueries, &mockDBTX{})

		gomock.InOrder(
			mockQueries.EXPECT().ClearExclusions(ctx, gomock.Any(), dbq.InvalidSpecIDs).Return(nil),
			mockQueries.EXPECT().InsertExclusions(ctx, gomock.Any(), dbq.InvalidSpecIDs, []string{"abc-1", "x"}).Return(int64(2), nil),
		)

		n, err := repo.ReplaceInvalidSpecIDs(ctx, []string{" ABC-1 ", "X"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("success: skus keep their case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockExclusionWriteQueries(ctrl)
		repo := repository.NewExclusionRepository(mockQueries, &mockDBTX{})

		gomock.InOrder(
			mockQueries.EXPECT().ClearExclusions(ctx, gomock.Any(), dbq.EnabledSKUs).Return(nil),
			mockQueries.EXPECT().InsertExclusions(ctx, gomock.Any(), dbq.EnabledSKUs, []string{"Sku-A"}).Return(int64(1), nil),
		)

		_, err := repo.ReplaceEnabledSKUs(ctx, []string{" Sku-A"})
		require.NoError(t, err)
	})

	t.Run("error: clear failure stops the insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockExclusionWriteQueries(ctrl)
		repo := repository.NewExclusionRepository(mockQueries, &mockDBTX{})
		mockQueries.EXPECT().ClearExclusions(ctx, gomock.Any(), dbq.EnabledSKUs).Return(errDBConnectionLost)

		_, err := repo.ReplaceEnabledSKUs(ctx, []string{"a"})
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
