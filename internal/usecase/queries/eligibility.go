package queries

import (
	"context"
	"strings"

	"seller-catalog/internal/domain/eligibility"
	"seller-catalog/internal/pkg/errs"
)

//go:generate mockgen -source=eligibility.go -destination=../../../tests/mock/queries/eligibility_mock.go -package=queriesmock

var ErrEmptyShop = errs.Mark(errs.New("shop must not be empty"), errs.ErrValidation)

type ExclusionReadStore interface {
	ListInvalidSpecIDs(ctx context.Context) ([]string, error)
	ListEnabledSKUs(ctx context.Context) ([]string, error)
}

type EligibilityQueries interface {
	// ListEligibleProducts returns one entry per sellable product of shop, sorted by name.
	ListEligibleProducts(ctx context.Context, shop string) ([]*EligibleProductView, error)
	Exclusions(ctx context.Context) (*ExclusionsView, error)
}

type eligibilityQueriesImpl struct {
	products   ProductReadStore
	exclusions ExclusionReadStore
}

func NewEligibilityQueries(products ProductReadStore, exclusions ExclusionReadStore) EligibilityQueries {
	return &eligibilityQueriesImpl{
		products:   products,
		exclusions: exclusions,
	}
}

func (q *eligibilityQueriesImpl) ListEligibleProducts(ctx context.Context, shop string) ([]*EligibleProductView, error) {
	if shop = strings.TrimSpace(shop); shop == "" {
		return nil, ErrEmptyShop
	}

	lists, err := q.Exclusions(ctx)
	if err != nil {
		return nil, err
	}
	candidates, err := q.products.ListEligibilityCandidates(ctx, shop)
	if err != nil {
		return nil, err
	}

	registry := eligibility.NewRegistry(lists.InvalidSpecIDs, lists.EnabledSKUs)
	eligible := eligibility.Filter(candidates, registry)

	views := make([]*EligibleProductView, 0, len(eligible))
	for _, e := range eligible {
		views = append(views, &EligibleProductView{ProductID: e.ProductID, Name: e.Name})
	}
	return views, nil
}

func (q *eligibilityQueriesImpl) Exclusions(ctx context.Context) (*ExclusionsView, error) {
	invalid, err := q.exclusions.ListInvalidSpecIDs(ctx)
	if err != nil {
		return nil, err
	}
	enabled, err := q.exclusions.ListEnabledSKUs(ctx)
	if err != nil {
		return nil, err
	}
	return &ExclusionsView{InvalidSpecIDs: invalid, EnabledSKUs: enabled}, nil
}
