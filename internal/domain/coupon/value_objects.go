package coupon

import (
	"encoding/json"
	"slices"
	"strings"

	"seller-catalog/internal/pkg/errs"
)

var ErrInvalidCouponType = errs.Mark(errs.New("coupon type must be one of instant, threshold, discount"), errs.ErrValidation)

type Type string

const (
	// Flat amount off.
	TypeInstant Type = "instant"
	// Flat amount off once the price reaches MinPrice.
	TypeThreshold Type = "threshold"
	// Price multiplied by Amount (0.8 means 20% off).
	TypeDiscount Type = "discount"
)

func ParseType(s string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case TypeInstant, TypeThreshold, TypeDiscount:
		return t, nil
	default:
		return "", ErrInvalidCouponType
	}
}

func (t Type) String() string {
	return string(t)
}

// Scope is the set of product ids a coupon is restricted to.
// The zero value is unscoped and applies store-wide.
type Scope struct {
	productIDs []string
}

func Unscoped() Scope {
	return Scope{}
}

// ScopedTo drops blank ids; a scope with no ids left is unscoped.
func ScopedTo(productIDs ...string) Scope {
	ids := make([]string, 0, len(productIDs))
	for _, id := range productIDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return Scope{productIDs: slices.Compact(ids)}
}

func (s Scope) IsUnscoped() bool {
	return len(s.productIDs) == 0
}

func (s Scope) ProductIDs() []string {
	return slices.Clone(s.productIDs)
}

// Covers reports whether an item with productID falls under the scope.
// An unscoped coupon covers everything; a scoped one never covers an item
// without a product id.
func (s Scope) Covers(productID string) bool {
	if s.IsUnscoped() {
		return true
	}
	if productID == "" {
		return false
	}
	_, found := slices.BinarySearch(s.productIDs, productID)
	return found
}

// Encode returns the persisted form of the scope, nil when unscoped.
func (s Scope) Encode() *string {
	if s.IsUnscoped() {
		return nil
	}
	b, _ := json.Marshal(s.productIDs)
	raw := string(b)
	return &raw
}

// DecodeScope parses a persisted scope. Strings and numbers are both accepted
// as ids. Anything else yields an unscoped value together with an error
// marked ErrMalformedScope, so callers may keep going with the coupon.
func DecodeScope(raw *string) (Scope, error) {
	if raw == nil {
		return Unscoped(), nil
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" || trimmed == "null" {
		return Unscoped(), nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &items); err != nil {
		return Unscoped(), errs.Mark(errs.Wrapf(err, "decode scope %q", trimmed), errs.ErrMalformedScope)
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			ids = append(ids, s)
			continue
		}
		var n json.Number
		if err := json.Unmarshal(item, &n); err == nil {
			ids = append(ids, n.String())
			continue
		}
		return Unscoped(), errs.Mark(errs.Newf("scope item %s is not a product id", string(item)), errs.ErrMalformedScope)
	}
	return ScopedTo(ids...), nil
}
