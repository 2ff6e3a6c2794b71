package repository

import (
	"context"

	"seller-catalog/internal/domain/eligibility"
	"seller-catalog/internal/infra"
	"seller-catalog/internal/infra/dbq"
)

//go:generate mockgen -source=exclusion.go -destination=../../../tests/mock/repository/exclusion_mock.go -package=repositorymock

type ExclusionWriteQueries interface {
	ClearExclusions(ctx context.Context, db dbq.DBTX, table dbq.ExclusionTable) error
	InsertExclusions(ctx context.Context, db dbq.DBTX, table dbq.ExclusionTable, values []string) (int64, error)
}

// ExclusionRepository replaces a registry list wholesale. It must run inside
// a transaction so readers never see the cleared table.
type ExclusionRepository struct {
	queries ExclusionWriteQueries
	db      dbq.DBTX
}

func NewExclusionRepository(queries ExclusionWriteQueries, db dbq.DBTX) *ExclusionRepository {
	return &ExclusionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ExclusionRepository) ReplaceInvalidSpecIDs(ctx context.Context, values []string) (int64, error) {
	normalized := make([]string, 0, len(values))
	for _, v := range values {
		normalized = append(normalized, eligibility.NormalizeSpecID(v))
	}
	return r.replace(ctx, dbq.InvalidSpecIDs, normalized)
}

func (r *ExclusionRepository) ReplaceEnabledSKUs(ctx context.Context, values []string) (int64, error) {
	normalized := make([]string, 0, len(values))
	for _, v := range values {
		normalized = append(normalized, eligibility.NormalizeSKU(v))
	}
	return r.replace(ctx, dbq.EnabledSKUs, normalized)
}

func (r *ExclusionRepository) replace(ctx context.Context, table dbq.ExclusionTable, values []string) (int64, error) {
	if err := r.queries.ClearExclusions(ctx, r.db, table); err != nil {
		return 0, infra.WrapRepoErr("failed to clear "+string(table), err)
	}
	inserted, err := r.queries.InsertExclusions(ctx, r.db, table, values)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert "+string(table), err)
	}
	return inserted, nil
}
