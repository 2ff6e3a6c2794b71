//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"seller-catalog/internal/handler/api"
	reqdto "seller-catalog/internal/handler/dto/request"
	"seller-catalog/internal/usecase/commands"
	"seller-catalog/tests/common/builder"
	"seller-catalog/tests/common/httptest"
	commandsmock "seller-catalog/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var admin = commands.Actor{Subject: "ops"}

type ImportHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockImportCommands
}

func (s *ImportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockImportCommands(s.mockCtrl)
	h := api.NewImportHandler(s.mockCommands)

	s.router.POST("/api/imports", fakeAuth(admin), h.Import)
}

func (s *ImportHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestImportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ImportHandlerTestSuite))
}

func (s *ImportHandlerTestSuite) TestImport() {
	url := "/api/imports"
	reqBody := reqdto.ImportRequest{
		Rows: []reqdto.ProductRequest{
			builder.NewProductBuilder().BuildRequestDTO(),
			builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
				b.SpecID, b.SKU = "spec-002", "SKU-002"
			}).BuildRequestDTO(),
		},
		InvalidSpecIDs: []string{"spec-002"},
		EnabledSKUs:    []string{},
		IncludeReport:  true,
	}

	s.Run("success: returns the import summary", func() {
		s.mockCommands.EXPECT().Import(gomock.Any(), admin, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ commands.Actor, req commands.ImportRequest) (*commands.ImportSummary, error) {
				s.Len(req.Rows, 2)
				s.Equal("spec-002", req.Rows[1].SpecID)
				s.Equal([]string{"spec-002"}, req.InvalidSpecIDs)
				s.True(req.IncludeReport)
				return &commands.ImportSummary{InvalidSpecIDs: 1, Total: 2, Filtered: 1, Imported: 1, Added: 1}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body commands.ImportSummary
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.Total)
		s.Equal(1, body.Filtered)
		s.Equal(1, body.Added)
	})

	s.Run("error: 400 Bad Request when a row misses its sku", func() {
		bad := reqBody
		row := builder.NewProductBuilder().BuildRequestDTO()
		row.SKU = ""
		bad.Rows = []reqdto.ProductRequest{row}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 Bad Request on oversized batch", func() {
		s.mockCommands.EXPECT().Import(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, commands.ErrBatchTooLarge)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Import failed")
	})

	s.Run("error: 403 Forbidden for a shop-scoped token", func() {
		s.mockCommands.EXPECT().Import(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, commands.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}
