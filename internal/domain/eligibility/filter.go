package eligibility

import (
	"cmp"
	"slices"
	"strings"

	"seller-catalog/internal/domain/product"
)

// Candidate is one specification of a shop's product as seen by the filter.
type Candidate struct {
	ProductID string
	Name      string
	SpecID    string
	SKU       string
}

type Eligible struct {
	ProductID string
	Name      string
}

// Registry is a snapshot of the exclusion lists.
type Registry struct {
	invalidSpecIDs map[string]struct{}
	enabledSKUs    map[string]struct{}
}

// NewRegistry normalizes both lists: spec ids are trimmed and lower-cased,
// SKUs are trimmed only.
func NewRegistry(invalidSpecIDs, enabledSKUs []string) Registry {
	r := Registry{
		invalidSpecIDs: make(map[string]struct{}, len(invalidSpecIDs)),
		enabledSKUs:    make(map[string]struct{}, len(enabledSKUs)),
	}
	for _, id := range invalidSpecIDs {
		if id = NormalizeSpecID(id); id != "" {
			r.invalidSpecIDs[id] = struct{}{}
		}
	}
	for _, sku := range enabledSKUs {
		if sku = NormalizeSKU(sku); sku != "" {
			r.enabledSKUs[sku] = struct{}{}
		}
	}
	return r
}

func NormalizeSpecID(id string) string { return strings.ToLower(strings.TrimSpace(id)) }
func NormalizeSKU(sku string) string   { return strings.TrimSpace(sku) }

type Reason string

const (
	ReasonNone          Reason = ""
	ReasonInvalidSpecID Reason = "invalid spec id"
	ReasonSKUNotEnabled Reason = "sku not enabled"
)

// Reject explains why a specification is excluded, or ReasonNone.
// The invalid spec id check takes precedence.
func (r Registry) Reject(specID, sku string) Reason {
	if _, invalid := r.invalidSpecIDs[NormalizeSpecID(specID)]; invalid {
		return ReasonInvalidSpecID
	}
	sku = NormalizeSKU(sku)
	if sku == product.WildcardSKU {
		return ReasonNone
	}
	if _, enabled := r.enabledSKUs[sku]; !enabled {
		return ReasonSKUNotEnabled
	}
	return ReasonNone
}

func (r Registry) InvalidSpecIDCount() int { return len(r.invalidSpecIDs) }
func (r Registry) EnabledSKUCount() int    { return len(r.enabledSKUs) }

// Filter keeps the first surviving specification of every product and
// returns the products sorted by name. Candidates are ordered by
// (product id, spec id) first so the survivor does not depend on input order.
func Filter(candidates []Candidate, registry Registry) []Eligible {
	sorted := slices.Clone(candidates)
	slices.SortStableFunc(sorted, func(a, b Candidate) int {
		return cmp.Or(cmp.Compare(a.ProductID, b.ProductID), cmp.Compare(a.SpecID, b.SpecID))
	})

	seen := make(map[string]struct{}, len(sorted))
	result := make([]Eligible, 0, len(sorted))
	for _, c := range sorted {
		if c.ProductID == "" {
			continue
		}
		if _, dup := seen[c.ProductID]; dup {
			continue
		}
		if registry.Reject(c.SpecID, c.SKU) != ReasonNone {
			continue
		}
		seen[c.ProductID] = struct{}{}
		result = append(result, Eligible{ProductID: c.ProductID, Name: c.Name})
	}

	slices.SortStableFunc(result, func(a, b Eligible) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ProductID, b.ProductID))
	})
	return result
}
