package commands

import (
	"context"

	"seller-catalog/internal/domain/eligibility"
	"seller-catalog/internal/domain/product"
	"seller-catalog/internal/infra/changefeed"
	"seller-catalog/internal/usecase/shared"
)

//go:generate mockgen -source=import.go -destination=../../../tests/mock/commands/import_mock.go -package=commandsmock

// ImportRequest is one already-parsed workbook: product rows plus the two
// exclusion lists that replace the stored ones.
type ImportRequest struct {
	Rows           []product.Attributes
	InvalidSpecIDs []string
	EnabledSKUs    []string
	IncludeReport  bool
}

type ImportRowReport struct {
	Row      int                `json:"row"`
	SpecID   string             `json:"spec_id"`
	SKU      string             `json:"sku"`
	Reason   eligibility.Reason `json:"reason,omitempty"`
	Imported bool               `json:"imported"`
}

type ImportSummary struct {
	InvalidSpecIDs int               `json:"invalid_spec_ids"`
	EnabledSKUs    int               `json:"enabled_skus"`
	Total          int               `json:"total"`
	Filtered       int               `json:"filtered"`
	Imported       int               `json:"imported"`
	Added          int               `json:"added"`
	Updated        int               `json:"updated"`
	Report         []ImportRowReport `json:"report,omitempty"`
}

type ImportCommands interface {
	// Import replaces both exclusion lists and upserts the rows they let
	// through, all in one transaction.
	Import(ctx context.Context, actor Actor, req ImportRequest) (*ImportSummary, error)
}

type importCommandsImpl struct {
	uow          shared.UnitOfWork
	events       ChangePublisher
	maxBatchSize int
}

func NewImportCommands(uow shared.UnitOfWork, events ChangePublisher, maxBatchSize int) ImportCommands {
	return &importCommandsImpl{
		uow:          uow,
		events:       events,
		maxBatchSize: maxBatchSize,
	}
}

func (uc *importCommandsImpl) Import(ctx context.Context, actor Actor, req ImportRequest) (*ImportSummary, error) {
	if err := actor.authorizeAll(); err != nil {
		return nil, err
	}
	if uc.maxBatchSize > 0 && len(req.Rows) > uc.maxBatchSize {
		return nil, ErrBatchTooLarge
	}

	products, _, err := buildProducts(req.Rows)
	if err != nil {
		return nil, err
	}

	registry := eligibility.NewRegistry(req.InvalidSpecIDs, req.EnabledSKUs)
	summary := &ImportSummary{
		InvalidSpecIDs: registry.InvalidSpecIDCount(),
		EnabledSKUs:    registry.EnabledSKUCount(),
		Total:          len(products),
	}

	survivors := make([]*product.Product, 0, len(products))
	for i, p := range products {
		reason := registry.Reject(p.SpecID(), p.SKU())
		if reason == eligibility.ReasonNone {
			survivors = append(survivors, p)
		}
		if req.IncludeReport {
			summary.Report = append(summary.Report, ImportRowReport{
				Row:      i + 1,
				SpecID:   p.SpecID(),
				SKU:      p.SKU(),
				Reason:   reason,
				Imported: reason == eligibility.ReasonNone,
			})
		}
	}
	summary.Imported = len(survivors)
	summary.Filtered = summary.Total - summary.Imported

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Exclusions().ReplaceInvalidSpecIDs(ctx, req.InvalidSpecIDs); derr != nil {
			return derr
		}
		if _, derr := tx.Exclusions().ReplaceEnabledSKUs(ctx, req.EnabledSKUs); derr != nil {
			return derr
		}
		result, derr := tx.Products().UpsertBatch(ctx, survivors)
		if derr != nil {
			return derr
		}
		summary.Added = result.Added
		summary.Updated = result.Updated
		return nil
	})
	if err != nil {
		return nil, translateRepoErr(err, nil, nil)
	}

	uc.events.Publish(changefeed.KindImport, "")
	return summary, nil
}
