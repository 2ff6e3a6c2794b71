//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"seller-catalog/internal/domain/coupon"
	"seller-catalog/internal/handler/api"
	resdto "seller-catalog/internal/handler/dto/response"
	"seller-catalog/internal/usecase/commands"
	"seller-catalog/internal/usecase/queries"
	"seller-catalog/tests/common/builder"
	"seller-catalog/tests/common/httptest"
	"seller-catalog/tests/common/testutil"
	commandsmock "seller-catalog/tests/mock/commands"
	queriesmock "seller-catalog/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CouponHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCouponCommands
	mockQueries  *queriesmock.MockCouponQueries
	handler      *api.CouponHandler
}

func (s *CouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCouponCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCouponQueries(s.mockCtrl)
	s.handler = api.NewCouponHandler(s.mockCommands, s.mockQueries)

	auth := fakeAuth(sellerA)
	s.router.GET("/api/coupons", s.handler.List)
	s.router.POST("/api/coupons", auth, s.handler.Create)
	s.router.GET("/api/coupons/stats", s.handler.Stats)
	s.router.GET("/api/coupons/:id", s.handler.Get)
	s.router.PUT("/api/coupons/:id", auth, s.handler.Update)
	s.router.DELETE("/api/coupons/:id", auth, s.handler.Delete)
	s.router.GET("/api/shops/:shop/coupons/active", s.handler.ListActiveForShop)
}

func (s *CouponHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}

func (s *CouponHandlerTestSuite) TestGet() {
	s.Run("success: renders dates without a time part", func() {
		view := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) { b.ID = 7 }).ScopedTo("p-1").BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(7)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/coupons/7", nil, "")

		var body resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(7), body.ID)
		s.Equal("2024-06-01", body.StartDate)
		s.Equal("2024-06-30", body.EndDate)
		s.Equal([]string{"p-1"}, body.ProductIDs)
		s.True(decimal.NewFromInt(30).Equal(body.Amount))
	})

	s.Run("success: store-wide coupon has an empty scope list", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).Return(builder.NewCouponBuilder().BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/coupons/1", nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Contains(rec.Body.String(), `"product_ids":[]`)
	})

	s.Run("error: 400 Bad Request on invalid id", func() {
		for _, id := range []string{"abc", "0", "-4"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/coupons/"+id, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
		}
	})

	s.Run("error: 404 Not Found when absent", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, queries.ErrCouponNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/coupons/99", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Coupon not found")
	})
}

func (s *CouponHandlerTestSuite) TestListAndStats() {
	s.Run("success: lists every coupon", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any()).Return([]*queries.CouponView{
			builder.NewCouponBuilder().BuildView(),
			builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) { b.ID = 2 }).BuildView(),
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/coupons", nil, "")

		var body []resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("success: lists active coupons of a shop", func() {
		s.mockQueries.EXPECT().ListActiveForShop(gomock.Any(), "shop-b").Return([]*queries.CouponView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/shops/shop-b/coupons/active", nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("success: returns counts", func() {
		s.mockQueries.EXPECT().Stats(gomock.Any()).Return(&queries.CouponStats{Total: 5, Active: 2, Expired: 1}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/coupons/stats", nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq(`{"total":5,"active":2,"expired":1}`, rec.Body.String())
	})
}

func (s *CouponHandlerTestSuite) TestCreate() {
	url := "/api/coupons"
	reqBody := builder.NewCouponBuilder().Threshold("100", "10").BuildRequestDTO()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), sellerA, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ commands.Actor, attrs coupon.Attributes) (*commands.CreateCouponResult, error) {
				s.Equal(coupon.Type("threshold"), attrs.Type)
				s.True(decimal.NewFromInt(100).Equal(attrs.MinPrice))
				s.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), attrs.StartDate)
				s.True(attrs.IsActive)
				return &commands.CreateCouponResult{CouponID: 12}, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(12)).Return(builder.NewCouponBuilder().BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertCreatedAt(s.T(), rec, "/api/coupons/12")
	})

	s.Run("success: defaults is_active and min_price", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("is_active", nil), testutil.Field("min_price", nil))
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ commands.Actor, attrs coupon.Attributes) (*commands.CreateCouponResult, error) {
				s.True(attrs.IsActive)
				s.True(attrs.MinPrice.IsZero())
				return &commands.CreateCouponResult{CouponID: 1}, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).Return(builder.NewCouponBuilder().BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on invalid input", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing field: shop", mutate: testutil.Field("shop", nil)},
			{name: "missing field: coupon_type", mutate: testutil.Field("coupon_type", nil)},
			{name: "unknown coupon type", mutate: testutil.Field("coupon_type", "bogo")},
			{name: "malformed start date", mutate: testutil.Field("start_date", "06/01/2024")},
			{name: "non-numeric amount", mutate: testutil.Field("amount", "ten")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 400 Bad Request when the domain rejects the amount", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, coupon.ErrNonPositiveAmount)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, testutil.Field("amount", "0")), "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Create coupon failed")
		httptest.AssertErrorDetail(s.T(), rec, http.StatusBadRequest, "coupon amount must be positive")
	})

	s.Run("error: 403 Forbidden for another shop", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, commands.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *CouponHandlerTestSuite) TestUpdateDelete() {
	reqBody := builder.NewCouponBuilder().BuildRequestDTO()

	s.Run("success: update returns the stored coupon", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), sellerA, int64(3), gomock.Any()).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(3)).Return(builder.NewCouponBuilder().BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/coupons/3", reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: update 404 Not Found", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), int64(3), gomock.Any()).Return(commands.ErrCouponNotFoundWrite)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/coupons/3", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Update coupon failed")
	})

	s.Run("success: delete returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), sellerA, int64(3)).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/coupons/3", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: delete 404 Not Found", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(4)).Return(commands.ErrCouponNotFoundWrite)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/coupons/4", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Delete coupon failed")
	})
}
