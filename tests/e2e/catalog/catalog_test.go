//go:build e2e

package catalog_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	reqdto "seller-catalog/internal/handler/dto/request"
	resdto "seller-catalog/internal/handler/dto/response"
	"seller-catalog/internal/usecase/commands"
	"seller-catalog/internal/usecase/queries"
	"seller-catalog/tests/common/authtest"
	"seller-catalog/tests/common/builder"
	"seller-catalog/tests/common/dbtest"
	"seller-catalog/tests/common/httptest"
	"seller-catalog/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	productsURL   = "/api/products"
	productURL    = "/api/products/%s"
	pricingURL    = "/api/products/%s/pricing"
	couponsURL    = "/api/coupons"
	finalPriceURL = "/api/shops/%s/final-price?price=%s"
	eligibleURL   = "/api/shops/%s/eligible-products"
	activeURL     = "/api/shops/%s/coupons/active"
	importsURL    = "/api/imports"
	exclusionsURL = "/api/exclusions"
)

type CatalogSuite struct {
	e2e.SharedSuite
	sellerToken string
	adminToken  string
}

func (s *CatalogSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	jwtHelper := authtest.NewJWTHelper(s.Config.JWT)
	s.sellerToken = jwtHelper.GenerateToken(s.T(), "seller-a", "shop-a")
	s.adminToken = jwtHelper.GenerateToken(s.T(), "ops")
}

func (s *CatalogSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestCatalogSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CatalogSuite))
}

func decimalEq(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

// =============================================================================
// Products
// =============================================================================

func (s *CatalogSuite) TestProductLifecycle() {
	s.Run("Normal case: seller creates, searches and deletes a product", func() {
		t := s.T()
		reqBody := builder.NewProductBuilder().BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, productsURL, reqBody, s.sellerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, productsURL+"?q=linen", nil, "")
		var page resdto.ProductListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Equal(t, int64(1), page.Total)
		require.Equal(t, "spec-001", page.Items[0].SpecID)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(productURL, "spec-001"), nil, s.sellerToken)
		require.Equal(t, http.StatusNoContent, w.Code)
		require.Equal(t, int64(0), dbtest.CountRows(t, s.DB, "products"))
	})

	s.Run("Error case: duplicate spec id is a conflict", func() {
		t := s.T()
		dbtest.CreateTestProduct(t, s.DB, "spec-001", "SKU-001", "shop-a", "Linen Shirt", "199")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, productsURL, builder.NewProductBuilder().BuildRequestDTO(), s.sellerToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})

	s.Run("Error case: seller cannot write another shop", func() {
		t := s.T()
		reqBody := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) { b.Shop = "shop-b" }).BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, productsURL, reqBody, s.sellerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
		require.Equal(t, int64(0), dbtest.CountRows(t, s.DB, "products"))
	})

	s.Run("Error case: writes need a valid token", func() {
		t := s.T()
		expired := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(t, "seller-a", "shop-a")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, productsURL, builder.NewProductBuilder().BuildRequestDTO(), "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, productsURL, builder.NewProductBuilder().BuildRequestDTO(), expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// Coupons and pricing
// =============================================================================

func (s *CatalogSuite) TestCouponPricing() {
	s.Run("Normal case: active threshold coupon lowers the final price", func() {
		t := s.T()
		dbtest.CreateTestProduct(t, s.DB, "spec-001", "SKU-001", "shop-a", "Linen Shirt", "199")

		coupon := builder.NewCouponBuilder().Threshold("100", "20").BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL, coupon, s.sellerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(productURL, "spec-001"), nil, "")
		var product resdto.ProductResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &product)
		decimalEq(t, "179", product.FinalPrice)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(finalPriceURL, "shop-a", "50"), nil, "")
		var below resdto.FinalPriceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &below)
		decimalEq(t, "50", below.FinalPrice)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(pricingURL, "spec-001"), nil, "")
		var pricing resdto.PricingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &pricing)
		decimalEq(t, "179", pricing.FinalPrice)
	})

	s.Run("Normal case: coupon stops applying after its end date", func() {
		t := s.T()
		dbtest.CreateTestProduct(t, s.DB, "spec-001", "SKU-001", "shop-a", "Linen Shirt", "199")
		coupon := builder.NewCouponBuilder().Instant("30").BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL, coupon, s.sellerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(activeURL, "shop-a"), nil, "")
		var active []resdto.CouponResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &active)
		require.Len(t, active, 1)

		s.Clock.Set(time.Date(2024, 7, 2, 10, 0, 0, 0, time.UTC))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(productURL, "spec-001"), nil, "")
		var product resdto.ProductResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &product)
		decimalEq(t, "199", product.FinalPrice)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, couponsURL+"/stats", nil, "")
		var stats queries.CouponStats
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &stats)
		require.Equal(t, queries.CouponStats{Total: 1, Active: 0, Expired: 1}, stats)
	})

	s.Run("Normal case: active coupons are listed by raw amount", func() {
		t := s.T()
		for _, c := range []reqdto.CouponRequest{
			builder.NewCouponBuilder().Discount("0.9").BuildRequestDTO(),
			builder.NewCouponBuilder().Instant("50").BuildRequestDTO(),
			builder.NewCouponBuilder().Threshold("100", "20").BuildRequestDTO(),
		} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL, c, s.sellerToken)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(activeURL, "shop-a"), nil, "")
		var active []resdto.CouponResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &active)
		require.Len(t, active, 3)
		decimalEq(t, "50", active[0].Amount)
		decimalEq(t, "20", active[1].Amount)
		decimalEq(t, "0.9", active[2].Amount)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(finalPriceURL, "shop-a", "200"), nil, "")
		var priced resdto.FinalPriceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &priced)
		decimalEq(t, "150", priced.FinalPrice)
	})

	s.Run("Error case: end date before start date", func() {
		t := s.T()
		coupon := builder.NewCouponBuilder().BuildRequestDTO()
		coupon.StartDate, coupon.EndDate = "2024-06-30", "2024-06-01"

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL, coupon, s.sellerToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
		require.Equal(t, int64(0), dbtest.CountRows(t, s.DB, "coupons"))
	})
}

// =============================================================================
// Import and eligibility
// =============================================================================

func (s *CatalogSuite) TestImportEligibility() {
	rows := []reqdto.ProductRequest{
		builder.NewProductBuilder().BuildRequestDTO(),
		builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
			b.SpecID, b.SKU, b.ProductID = "spec-002", "SKU-002", "p-002"
		}).BuildRequestDTO(),
		builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
			b.SpecID, b.SKU, b.ProductID, b.Name = "spec-003", "*", "p-003", "Cotton Tee"
		}).BuildRequestDTO(),
	}

	s.Run("Normal case: import filters rows and eligibility follows the lists", func() {
		t := s.T()
		reqBody := reqdto.ImportRequest{
			Rows:           rows,
			InvalidSpecIDs: []string{"SPEC-002"},
			EnabledSKUs:    []string{"SKU-001"},
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, importsURL, reqBody, s.adminToken)
		var summary commands.ImportSummary
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &summary)
		require.Equal(t, commands.ImportSummary{
			InvalidSpecIDs: 1, EnabledSKUs: 1, Total: 3, Filtered: 1, Imported: 2, Added: 2,
		}, summary)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(eligibleURL, "shop-a"), nil, "")
		var eligible []queries.EligibleProductView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &eligible)
		want := []queries.EligibleProductView{
			{ProductID: "p-003", Name: "Cotton Tee"},
			{ProductID: "p-001", Name: "Linen Shirt"},
		}
		if diff := cmp.Diff(want, eligible); diff != "" {
			t.Errorf("eligible products mismatch (-want +got):\n%s", diff)
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, exclusionsURL+"/enabled-skus",
			reqdto.ExclusionListRequest{Values: []string{}}, s.adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(eligibleURL, "shop-a"), nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &eligible)
		if diff := cmp.Diff(want[:1], eligible); diff != "" {
			t.Errorf("eligible products mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: shop-scoped token cannot import", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, importsURL, reqdto.ImportRequest{Rows: rows}, s.sellerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
		require.Equal(t, int64(0), dbtest.CountRows(t, s.DB, "products"))
	})
}
