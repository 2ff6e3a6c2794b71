package loader

import (
	"context"

	"seller-catalog/internal/usecase/queries"
)

// QueryFetcher reads pages in process. Rows already carry their final price.
type QueryFetcher struct {
	queries queries.ProductQueries
}

func NewQueryFetcher(q queries.ProductQueries) *QueryFetcher {
	return &QueryFetcher{queries: q}
}

func (f *QueryFetcher) Fetch(ctx context.Context, query string, limit, offset int) (Page[*queries.ProductView], error) {
	page, err := f.queries.ListPage(ctx, query, limit, offset)
	if err != nil {
		return Page[*queries.ProductView]{}, err
	}
	return Page[*queries.ProductView]{Rows: page.Items, Total: page.Total}, nil
}
