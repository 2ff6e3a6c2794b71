//go:build unit

package eligibility

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestRegistry_Reject(t *testing.T) {
	r := NewRegistry([]string{" SPEC-A ", "spec-b"}, []string{" SKU-X ", "sku-y"})

	tests := []struct {
		name   string
		specID string
		sku    string
		want   Reason
	}{
		{"有効", "spec-c", "SKU-X", ReasonNone},
		{"spec id は大文字小文字を区別しない", "Spec-A", "SKU-X", ReasonInvalidSpecID},
		{"sku は大文字小文字を区別する", "spec-c", "sku-x", ReasonSKUNotEnabled},
		{"ワイルドカードは常に有効", "spec-c", "*", ReasonNone},
		{"spec id 判定が優先", "spec-b", "*", ReasonInvalidSpecID},
		{"前後の空白は無視", " spec-c ", " sku-y", ReasonNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Reject(tt.specID, tt.sku))
		})
	}

	assert.Equal(t, 2, r.InvalidSpecIDCount())
	assert.Equal(t, 2, r.EnabledSKUCount())
}

func TestFilter(t *testing.T) {
	registry := NewRegistry([]string{"spec-a"}, []string{"SKU-X", "SKU-Z"})

	t.Run("全規格が除外された商品は出ない", func(t *testing.T) {
		candidates := []Candidate{
			{ProductID: "p1", Name: "Shirt", SpecID: "spec-a", SKU: "SKU-X"},
			{ProductID: "p1", Name: "Shirt", SpecID: "spec-b", SKU: "SKU-Y"},
		}
		assert.Empty(t, Filter(candidates, registry))
	})

	t.Run("残った規格があれば出る", func(t *testing.T) {
		candidates := []Candidate{
			{ProductID: "p1", Name: "Shirt", SpecID: "spec-a", SKU: "SKU-X"},
			{ProductID: "p1", Name: "Shirt", SpecID: "spec-b", SKU: "SKU-Y"},
			{ProductID: "p1", Name: "Shirt", SpecID: "spec-c", SKU: "SKU-Z"},
		}
		assert.Equal(t, []Eligible{{ProductID: "p1", Name: "Shirt"}}, Filter(candidates, registry))
	})

	t.Run("重複なし・名前順", func(t *testing.T) {
		candidates := []Candidate{
			{ProductID: "p3", Name: "Cap", SpecID: "s5", SKU: "*"},
			{ProductID: "p2", Name: "Apron", SpecID: "s3", SKU: "SKU-X"},
			{ProductID: "p2", Name: "Apron", SpecID: "s4", SKU: "SKU-Z"},
			{ProductID: "p4", Name: "Apron", SpecID: "s6", SKU: "*"},
			{ProductID: "", Name: "Orphan", SpecID: "s7", SKU: "*"},
		}
		want := []Eligible{
			{ProductID: "p2", Name: "Apron"},
			{ProductID: "p4", Name: "Apron"},
			{ProductID: "p3", Name: "Cap"},
		}
		if diff := cmp.Diff(want, Filter(candidates, registry)); diff != "" {
			t.Errorf("Filter mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("入力順に依存しない", func(t *testing.T) {
		candidates := []Candidate{
			{ProductID: "p1", Name: "Shirt (old)", SpecID: "s2", SKU: "*"},
			{ProductID: "p1", Name: "Shirt", SpecID: "s1", SKU: "*"},
			{ProductID: "p2", Name: "Hat", SpecID: "s3", SKU: "SKU-X"},
			{ProductID: "p2", Name: "Hat v2", SpecID: "s4", SKU: "SKU-Z"},
		}
		want := Filter(candidates, registry)
		assert.Equal(t, []Eligible{{ProductID: "p2", Name: "Hat"}, {ProductID: "p1", Name: "Shirt"}}, want)

		rng := rand.New(rand.NewPCG(1, 2))
		for range 20 {
			shuffled := append([]Candidate(nil), candidates...)
			rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
			assert.Equal(t, want, Filter(shuffled, registry))
		}
	})
}
