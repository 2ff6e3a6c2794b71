package queries

import (
	"context"
	"strings"

	"seller-catalog/internal/domain/eligibility"
	"seller-catalog/internal/infra"
	"seller-catalog/internal/pkg/errs"
)

//go:generate mockgen -source=product.go -destination=../../../tests/mock/queries/product_mock.go -package=queriesmock

// ErrProductNotFound is for callers that treat a nil view as an error.
var ErrProductNotFound = errs.Mark(errs.New("product not found"), errs.ErrNotFound)

type ProductReadStore interface {
	FindBySpecID(ctx context.Context, specID string) (*ProductView, error)
	List(ctx context.Context, limit, offset int32) ([]*ProductView, error)
	Count(ctx context.Context) (int64, error)
	Search(ctx context.Context, query string, limit, offset int32) ([]*ProductView, error)
	SearchCount(ctx context.Context, query string) (int64, error)
	ListEligibilityCandidates(ctx context.Context, shop string) ([]eligibility.Candidate, error)
}

type ProductQueries interface {
	// ListPage lists every product when query is blank and searches otherwise.
	// Rows carry their final price.
	ListPage(ctx context.Context, query string, limit, offset int) (*ProductPage, error)
	// GetBySpecID returns nil without error when the product does not exist.
	GetBySpecID(ctx context.Context, specID string) (*ProductView, error)
	// GetPricing returns nil without error when the product does not exist.
	GetPricing(ctx context.Context, specID string) (*PricingView, error)
}

type productQueriesImpl struct {
	store   ProductReadStore
	pricing PricingEngine
	paging  Paging
}

func NewProductQueries(store ProductReadStore, pricing PricingEngine, paging Paging) ProductQueries {
	return &productQueriesImpl{
		store:   store,
		pricing: pricing,
		paging:  paging,
	}
}

func (q *productQueriesImpl) ListPage(ctx context.Context, query string, limit, offset int) (*ProductPage, error) {
	lim, off, err := q.paging.Normalize(limit, offset)
	if err != nil {
		return nil, err
	}

	var (
		rows  []*ProductView
		total int64
	)
	if query = strings.TrimSpace(query); query == "" {
		rows, err = q.store.List(ctx, lim, off)
		if err == nil {
			total, err = q.store.Count(ctx)
		}
	} else {
		rows, err = q.store.Search(ctx, query, lim, off)
		if err == nil {
			total, err = q.store.SearchCount(ctx, query)
		}
	}
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		row.FinalPrice = q.pricing.CalculateFinalPrice(ctx, row.Price, row.Shop, row.ProductID)
	}
	return &ProductPage{Items: rows, Total: total}, nil
}

func (q *productQueriesImpl) GetBySpecID(ctx context.Context, specID string) (*ProductView, error) {
	view, err := q.store.FindBySpecID(ctx, strings.TrimSpace(specID))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	view.FinalPrice = q.pricing.CalculateFinalPrice(ctx, view.Price, view.Shop, view.ProductID)
	return view, nil
}

func (q *productQueriesImpl) GetPricing(ctx context.Context, specID string) (*PricingView, error) {
	view, err := q.GetBySpecID(ctx, specID)
	if err != nil || view == nil {
		return nil, err
	}
	return &PricingView{
		Product:    view,
		FinalPrice: view.FinalPrice,
		Margin:     q.pricing.Margin(view.FinalPrice, view.PurchasePrice),
	}, nil
}
