package readstore

import (
	"context"

	"seller-catalog/internal/infra"
	"seller-catalog/internal/infra/dbq"
)

//go:generate mockgen -source=exclusion.go -destination=../../../tests/mock/readstore/exclusion_mock.go -package=readstoremock

type ExclusionReadQueries interface {
	ListExclusions(ctx context.Context, db dbq.DBTX, table dbq.ExclusionTable) ([]string, error)
}

type ExclusionReadStore struct {
	queries ExclusionReadQueries
	db      dbq.DBTX
}

func NewExclusionReadStore(queries ExclusionReadQueries, db dbq.DBTX) *ExclusionReadStore {
	return &ExclusionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ExclusionReadStore) ListInvalidSpecIDs(ctx context.Context) ([]string, error) {
	values, err := r.queries.ListExclusions(ctx, r.db, dbq.InvalidSpecIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list invalid spec ids", err)
	}
	return values, nil
}

func (r *ExclusionReadStore) ListEnabledSKUs(ctx context.Context) ([]string, error) {
	values, err := r.queries.ListExclusions(ctx, r.db, dbq.EnabledSKUs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list enabled skus", err)
	}
	return values, nil
}
