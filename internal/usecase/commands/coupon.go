package commands

import (
	"context"

	"seller-catalog/internal/domain/coupon"
	"seller-catalog/internal/infra/changefeed"
	"seller-catalog/internal/pkg/errs"
	"seller-catalog/internal/usecase/shared"
)

//go:generate mockgen -source=coupon.go -destination=../../../tests/mock/commands/coupon_mock.go -package=commandsmock

var ErrCouponNotFoundWrite = errs.Mark(errs.New("coupon not found"), errs.ErrNotFound)

type CreateCouponResult struct {
	CouponID int64
}

type CouponCommands interface {
	Create(ctx context.Context, actor Actor, attrs coupon.Attributes) (*CreateCouponResult, error)
	// Update replaces coupon id; attrs.ID is ignored.
	Update(ctx context.Context, actor Actor, id int64, attrs coupon.Attributes) error
	Delete(ctx context.Context, actor Actor, id int64) error
}

type couponCommandsImpl struct {
	uow    shared.UnitOfWork
	cache  CouponCacheInvalidator
	events ChangePublisher
}

func NewCouponCommands(uow shared.UnitOfWork, cache CouponCacheInvalidator, events ChangePublisher) CouponCommands {
	return &couponCommandsImpl{
		uow:    uow,
		cache:  cache,
		events: events,
	}
}

func (uc *couponCommandsImpl) Create(ctx context.Context, actor Actor, attrs coupon.Attributes) (*CreateCouponResult, error) {
	attrs.ID = 0
	c, err := coupon.NewCoupon(attrs)
	if err != nil {
		return nil, err
	}
	if err := actor.authorize(c.Shop()); err != nil {
		return nil, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		id, derr = tx.Coupons().Create(ctx, c)
		return derr
	})
	if err != nil {
		return nil, translateRepoErr(err, nil, nil)
	}

	uc.afterMutation(ctx, c.Shop())
	return &CreateCouponResult{CouponID: id}, nil
}

func (uc *couponCommandsImpl) Update(ctx context.Context, actor Actor, id int64, attrs coupon.Attributes) error {
	attrs.ID = id
	c, err := coupon.NewCoupon(attrs)
	if err != nil {
		return err
	}

	var previousShop string
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().CouponByID(ctx, id)
		if derr != nil {
			return derr
		}
		if derr = actor.authorize(snap.Shop, c.Shop()); derr != nil {
			return derr
		}
		previousShop = snap.Shop
		return tx.Coupons().Update(ctx, c)
	})
	if err != nil {
		return translateRepoErr(err, ErrCouponNotFoundWrite, nil)
	}

	uc.afterMutation(ctx, previousShop, c.Shop())
	return nil
}

func (uc *couponCommandsImpl) Delete(ctx context.Context, actor Actor, id int64) error {
	var shop string
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().CouponByID(ctx, id)
		if derr != nil {
			return derr
		}
		if derr = actor.authorize(snap.Shop); derr != nil {
			return derr
		}
		shop, derr = tx.Coupons().Delete(ctx, id)
		return derr
	})
	if err != nil {
		return translateRepoErr(err, ErrCouponNotFoundWrite, nil)
	}

	uc.afterMutation(ctx, shop)
	return nil
}

func (uc *couponCommandsImpl) afterMutation(ctx context.Context, shops ...string) {
	shops = distinct(shops...)
	invalidateCoupons(ctx, uc.cache, shops)
	for _, shop := range shops {
		uc.events.Publish(changefeed.KindCoupons, shop)
	}
}
