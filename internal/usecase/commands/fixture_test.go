//go:build unit

package commands_test

import (
	"context"
	"testing"

	"seller-catalog/internal/usecase/commands"
	"seller-catalog/internal/usecase/shared"
	commandsmock "seller-catalog/tests/mock/commands"
	sharedmock "seller-catalog/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var (
	sellerA = commands.Actor{Subject: "seller-a", Shops: []string{"shop-a"}}
	admin   = commands.Actor{Subject: "ops", Shops: []string{"*"}}
)

type uowFixture struct {
	uow        *sharedmock.MockUnitOfWork
	tx         *sharedmock.MockTx
	reads      *sharedmock.MockCommandReads
	products   *sharedmock.MockProductRepository
	coupons    *sharedmock.MockCouponRepository
	exclusions *sharedmock.MockExclusionRepository
	events     *commandsmock.MockChangePublisher
	cache      *commandsmock.MockCouponCacheInvalidator
}

func newUoWFixture(t *testing.T) *uowFixture {
	ctrl := gomock.NewController(t)
	f := &uowFixture{
		uow:        sharedmock.NewMockUnitOfWork(ctrl),
		tx:         sharedmock.NewMockTx(ctrl),
		reads:      sharedmock.NewMockCommandReads(ctrl),
		products:   sharedmock.NewMockProductRepository(ctrl),
		coupons:    sharedmock.NewMockCouponRepository(ctrl),
		exclusions: sharedmock.NewMockExclusionRepository(ctrl),
		events:     commandsmock.NewMockChangePublisher(ctrl),
		cache:      commandsmock.NewMockCouponCacheInvalidator(ctrl),
	}
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Products().Return(f.products).AnyTimes()
	f.tx.EXPECT().Coupons().Return(f.coupons).AnyTimes()
	f.tx.EXPECT().Exclusions().Return(f.exclusions).AnyTimes()
	return f
}

// expectWithin runs the transaction body against the mocked Tx.
func (f *uowFixture) expectWithin() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		})
}
