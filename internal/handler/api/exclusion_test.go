//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"seller-catalog/internal/handler/api"
	reqdto "seller-catalog/internal/handler/dto/request"
	"seller-catalog/internal/usecase/commands"
	"seller-catalog/internal/usecase/queries"
	"seller-catalog/tests/common/httptest"
	commandsmock "seller-catalog/tests/mock/commands"
	queriesmock "seller-catalog/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ExclusionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockExclusionCommands
	mockQueries  *queriesmock.MockEligibilityQueries
}

func (s *ExclusionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockExclusionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockEligibilityQueries(s.mockCtrl)
	h := api.NewExclusionHandler(s.mockCommands, s.mockQueries)

	auth := fakeAuth(sellerA)
	s.router.GET("/api/exclusions", h.List)
	s.router.PUT("/api/exclusions/invalid-spec-ids", auth, h.ReplaceInvalidSpecIDs)
	s.router.PUT("/api/exclusions/enabled-skus", auth, h.ReplaceEnabledSKUs)
}

func (s *ExclusionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestExclusionHandlerSuite(t *testing.T) {
	suite.Run(t, new(ExclusionHandlerTestSuite))
}

func (s *ExclusionHandlerTestSuite) TestList() {
	s.Run("success: returns both lists", func() {
		s.mockQueries.EXPECT().Exclusions(gomock.Any()).Return(&queries.ExclusionsView{
			InvalidSpecIDs: []string{"spec-009"},
			EnabledSKUs:    []string{"SKU-001"},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/exclusions", nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq(`{"invalid_spec_ids":["spec-009"],"enabled_skus":["SKU-001"]}`, rec.Body.String())
	})

	s.Run("error: 500 Internal Server Error hides the cause", func() {
		s.mockQueries.EXPECT().Exclusions(gomock.Any()).Return(nil, errors.New("pool exhausted"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/exclusions", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "pool exhausted")
	})
}

func (s *ExclusionHandlerTestSuite) TestReplace() {
	s.Run("success: replaces invalid spec ids", func() {
		s.mockCommands.EXPECT().ReplaceInvalidSpecIDs(gomock.Any(), sellerA, []string{"spec-009", "SPEC-010"}).Return(int64(2), nil)

		body := reqdto.ExclusionListRequest{Values: []string{"spec-009", "SPEC-010"}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/exclusions/invalid-spec-ids", body, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq(`{"count":2}`, rec.Body.String())
	})

	s.Run("success: an empty list clears enabled skus", func() {
		s.mockCommands.EXPECT().ReplaceEnabledSKUs(gomock.Any(), sellerA, []string{}).Return(int64(0), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/exclusions/enabled-skus", map[string]any{"values": []string{}}, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq(`{"count":0}`, rec.Body.String())
	})

	s.Run("error: 400 Bad Request without values", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/exclusions/enabled-skus", map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 403 Forbidden for a shop-scoped token", func() {
		s.mockCommands.EXPECT().ReplaceEnabledSKUs(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), commands.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/exclusions/enabled-skus", map[string]any{"values": []string{"SKU-1"}}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Replace exclusions failed")
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/exclusions/invalid-spec-ids", map[string]any{"values": []string{}}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
