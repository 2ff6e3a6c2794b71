package readstore

import (
	"context"
	"strings"

	"seller-catalog/internal/domain/eligibility"
	"seller-catalog/internal/infra"
	"seller-catalog/internal/infra/dbq"
	"seller-catalog/internal/pkg/pgconv"
	"seller-catalog/internal/usecase/queries"
)

//go:generate mockgen -source=product.go -destination=../../../tests/mock/readstore/product_mock.go -package=readstoremock

type ProductReadQueries interface {
	GetProductBySpecID(ctx context.Context, db dbq.DBTX, specID string) (dbq.Product, error)
	ListProducts(ctx context.Context, db dbq.DBTX, arg dbq.ListProductsParams) ([]dbq.Product, error)
	CountProducts(ctx context.Context, db dbq.DBTX) (int64, error)
	SearchProducts(ctx context.Context, db dbq.DBTX, arg dbq.SearchProductsParams) ([]dbq.Product, error)
	CountSearchProducts(ctx context.Context, db dbq.DBTX, pattern string) (int64, error)
	ListEligibilityCandidates(ctx context.Context, db dbq.DBTX, shop string) ([]dbq.EligibilityCandidateRow, error)
}

type ProductReadStore struct {
	queries ProductReadQueries
	db      dbq.DBTX
}

func NewProductReadStore(queries ProductReadQueries, db dbq.DBTX) *ProductReadStore {
	return &ProductReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProductReadStore) FindBySpecID(ctx context.Context, specID string) (*queries.ProductView, error) {
	row, err := r.queries.GetProductBySpecID(ctx, r.db, specID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product by spec id", err)
	}

	view, err := toProductView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert product row", err)
	}
	return view, nil
}

func (r *ProductReadStore) List(ctx context.Context, limit, offset int32) ([]*queries.ProductView, error) {
	rows, err := r.queries.ListProducts(ctx, r.db, dbq.ListProductsParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	return toProductViews(rows)
}

func (r *ProductReadStore) Count(ctx context.Context) (int64, error) {
	count, err := r.queries.CountProducts(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count products", err)
	}
	return count, nil
}

func (r *ProductReadStore) Search(ctx context.Context, query string, limit, offset int32) ([]*queries.ProductView, error) {
	rows, err := r.queries.SearchProducts(ctx, r.db, dbq.SearchProductsParams{
		Pattern: dbq.ContainsPattern(query),
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search products", err)
	}
	return toProductViews(rows)
}

func (r *ProductReadStore) SearchCount(ctx context.Context, query string) (int64, error) {
	count, err := r.queries.CountSearchProducts(ctx, r.db, dbq.ContainsPattern(query))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count product search", err)
	}
	return count, nil
}

func (r *ProductReadStore) ListEligibilityCandidates(ctx context.Context, shop string) ([]eligibility.Candidate, error) {
	rows, err := r.queries.ListEligibilityCandidates(ctx, r.db, shop)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list eligibility candidates", err)
	}

	candidates := make([]eligibility.Candidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, eligibility.Candidate{
			ProductID: strings.TrimSpace(row.ProductID),
			Name:      row.Name,
			SpecID:    row.SpecID,
			SKU:       row.Sku,
		})
	}
	return candidates, nil
}

func toProductViews(rows []dbq.Product) ([]*queries.ProductView, error) {
	views := make([]*queries.ProductView, 0, len(rows))
	for _, row := range rows {
		view, err := toProductView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert product row", err)
		}
		views = append(views, view)
	}
	return views, nil
}

func toProductView(row dbq.Product) (*queries.ProductView, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, err
	}
	minPrice, err := pgconv.DecimalPtrFromNumeric(row.MinPrice)
	if err != nil {
		return nil, err
	}
	purchasePrice, err := pgconv.DecimalPtrFromNumeric(row.PurchasePrice)
	if err != nil {
		return nil, err
	}

	return &queries.ProductView{
		SpecID:        row.SpecID,
		SKU:           row.Sku,
		ProductID:     row.ProductID,
		Name:          row.Name,
		SpecName:      row.SpecName,
		Price:         price,
		Quantity:      row.Quantity,
		Shop:          row.Shop,
		Category:      row.Category,
		Warehouse:     row.Warehouse,
		ShortName:     row.ShortName,
		MinPrice:      minPrice,
		PurchasePrice: purchasePrice,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
