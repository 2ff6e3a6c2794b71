package repository

import (
	"context"

	"seller-catalog/internal/domain/product"
	"seller-catalog/internal/infra"
	"seller-catalog/internal/infra/dbq"
	"seller-catalog/internal/pkg/pgconv"
	"seller-catalog/internal/usecase/shared"
)

//go:generate mockgen -source=product.go -destination=../../../tests/mock/repository/product_mock.go -package=repositorymock

type ProductWriteQueries interface {
	InsertProduct(ctx context.Context, db dbq.DBTX, arg dbq.ProductParams) error
	UpdateProduct(ctx context.Context, db dbq.DBTX, arg dbq.ProductParams) (int64, error)
	DeleteProduct(ctx context.Context, db dbq.DBTX, specID string) (int64, error)
	UpsertProducts(ctx context.Context, db dbq.DBTX, args []dbq.ProductParams) ([]bool, error)
}

type ProductRepository struct {
	queries ProductWriteQueries
	db      dbq.DBTX
}

func NewProductRepository(queries ProductWriteQueries, db dbq.DBTX) *ProductRepository {
	return &ProductRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ProductRepository) Insert(ctx context.Context, p *product.Product) error {
	if err := r.queries.InsertProduct(ctx, r.db, toProductParams(p)); err != nil {
		return infra.WrapRepoErr("failed to insert product", err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	affected, err := r.queries.UpdateProduct(ctx, r.db, toProductParams(p))
	if err != nil {
		return infra.WrapRepoErr("failed to update product", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, specID string) error {
	affected, err := r.queries.DeleteProduct(ctx, r.db, specID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete product", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

// UpsertBatch counts each row as added or updated from the row's own upsert
// result. A spec id repeated inside the batch counts once as added and then
// as updated.
func (r *ProductRepository) UpsertBatch(ctx context.Context, products []*product.Product) (shared.UpsertResult, error) {
	if len(products) == 0 {
		return shared.UpsertResult{}, nil
	}

	params := make([]dbq.ProductParams, 0, len(products))
	for _, p := range products {
		params = append(params, toProductParams(p))
	}

	inserted, err := r.queries.UpsertProducts(ctx, r.db, params)
	if err != nil {
		return shared.UpsertResult{}, infra.WrapRepoErr("failed to upsert product batch", err)
	}

	var result shared.UpsertResult
	for _, ins := range inserted {
		if ins {
			result.Added++
		} else {
			result.Updated++
		}
	}
	return result, nil
}

func toProductParams(p *product.Product) dbq.ProductParams {
	return dbq.ProductParams{
		SpecID:        p.SpecID(),
		Sku:           p.SKU(),
		ProductID:     p.ProductID(),
		Name:          p.Name(),
		SpecName:      p.SpecName(),
		Price:         pgconv.DecimalToNumeric(p.Price()),
		Quantity:      p.Quantity(),
		Shop:          p.Shop(),
		Category:      p.Category(),
		Warehouse:     p.Warehouse(),
		ShortName:     p.ShortName(),
		MinPrice:      pgconv.DecimalPtrToNumeric(p.MinPrice()),
		PurchasePrice: pgconv.DecimalPtrToNumeric(p.PurchasePrice()),
	}
}
