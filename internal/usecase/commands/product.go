package commands

import (
	"context"
	"strings"

	"seller-catalog/internal/domain/product"
	"seller-catalog/internal/infra/changefeed"
	"seller-catalog/internal/pkg/errs"
	"seller-catalog/internal/usecase/shared"
)

//go:generate mockgen -source=product.go -destination=../../../tests/mock/commands/product_mock.go -package=commandsmock

var (
	ErrProductNotFoundWrite = errs.Mark(errs.New("product not found"), errs.ErrNotFound)
	ErrProductExists        = errs.Mark(errs.New("product already exists"), errs.ErrConflict)
	ErrBatchTooLarge        = errs.Mark(errs.New("batch exceeds the maximum size"), errs.ErrValidation)
)

type ProductCommands interface {
	Create(ctx context.Context, actor Actor, attrs product.Attributes) error
	// Update replaces the product stored under specID; attrs.SpecID is ignored.
	Update(ctx context.Context, actor Actor, specID string, attrs product.Attributes) error
	Delete(ctx context.Context, actor Actor, specID string) error
	UpsertBatch(ctx context.Context, actor Actor, rows []product.Attributes) (*shared.UpsertResult, error)
}

type productCommandsImpl struct {
	uow          shared.UnitOfWork
	events       ChangePublisher
	maxBatchSize int
}

func NewProductCommands(uow shared.UnitOfWork, events ChangePublisher, maxBatchSize int) ProductCommands {
	return &productCommandsImpl{
		uow:          uow,
		events:       events,
		maxBatchSize: maxBatchSize,
	}
}

func (uc *productCommandsImpl) Create(ctx context.Context, actor Actor, attrs product.Attributes) error {
	p, err := product.NewProduct(attrs)
	if err != nil {
		return err
	}
	if err := actor.authorize(p.Shop()); err != nil {
		return err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Products().Insert(ctx, p)
	})
	if err != nil {
		return translateRepoErr(err, nil, ErrProductExists)
	}
	uc.events.Publish(changefeed.KindProducts, p.Shop())
	return nil
}

func (uc *productCommandsImpl) Update(ctx context.Context, actor Actor, specID string, attrs product.Attributes) error {
	attrs.SpecID = specID
	p, err := product.NewProduct(attrs)
	if err != nil {
		return err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ProductBySpecID(ctx, p.SpecID())
		if derr != nil {
			return derr
		}
		if derr = actor.authorize(snap.Shop, p.Shop()); derr != nil {
			return derr
		}
		return tx.Products().Update(ctx, p)
	})
	if err != nil {
		return translateRepoErr(err, ErrProductNotFoundWrite, nil)
	}
	uc.events.Publish(changefeed.KindProducts, p.Shop())
	return nil
}

func (uc *productCommandsImpl) Delete(ctx context.Context, actor Actor, specID string) error {
	specID = strings.TrimSpace(specID)
	if specID == "" {
		return product.ErrEmptySpecID
	}

	var shop string
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ProductBySpecID(ctx, specID)
		if derr != nil {
			return derr
		}
		if derr = actor.authorize(snap.Shop); derr != nil {
			return derr
		}
		shop = snap.Shop
		return tx.Products().Delete(ctx, specID)
	})
	if err != nil {
		return translateRepoErr(err, ErrProductNotFoundWrite, nil)
	}
	uc.events.Publish(changefeed.KindProducts, shop)
	return nil
}

func (uc *productCommandsImpl) UpsertBatch(ctx context.Context, actor Actor, rows []product.Attributes) (*shared.UpsertResult, error) {
	if uc.maxBatchSize > 0 && len(rows) > uc.maxBatchSize {
		return nil, ErrBatchTooLarge
	}

	products, shops, err := buildProducts(rows)
	if err != nil {
		return nil, err
	}
	if err := actor.authorize(shops...); err != nil {
		return nil, err
	}

	var result shared.UpsertResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		result, derr = tx.Products().UpsertBatch(ctx, products)
		return derr
	})
	if err != nil {
		return nil, translateRepoErr(err, nil, nil)
	}
	for _, shop := range shops {
		uc.events.Publish(changefeed.KindProducts, shop)
	}
	return &result, nil
}

// buildProducts validates every row and returns the distinct shops in first-seen order.
func buildProducts(rows []product.Attributes) ([]*product.Product, []string, error) {
	products := make([]*product.Product, 0, len(rows))
	shops := make([]string, 0, 1)
	for i, row := range rows {
		p, err := product.NewProduct(row)
		if err != nil {
			return nil, nil, errs.Wrapf(err, "row %d", i+1)
		}
		products = append(products, p)
		shops = append(shops, p.Shop())
	}
	return products, distinct(shops...), nil
}
