//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"seller-catalog/internal/handler/middleware"
	"seller-catalog/internal/pkg/config"
	"seller-catalog/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := jwt.NewService("test-secret", time.Hour)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var requestID string
	router := gin.New()
	router.Use(middleware.RequestLogger(logger, config.LogConfig{TimeZone: "UTC"}))
	router.GET("/private", middleware.NewAuthMiddleware(svc).RequireAuth(), func(c *gin.Context) {
		requestID = middleware.GetRequestID(c)
		c.Status(http.StatusNoContent)
	})

	t.Run("success: completion line carries the request id and actor", func(t *testing.T) {
		buf.Reset()
		token, err := svc.GenerateToken("seller-a", []string{"shop-a", "shop-b"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(httptest.NewRecorder(), req)

		require.NotEmpty(t, requestID)
		out := buf.String()
		assert.Contains(t, out, "request_id="+requestID)
		assert.Contains(t, out, "subject=seller-a")
		assert.Contains(t, out, "shops=shop-a,shop-b")
		assert.Contains(t, out, "status_code=204")
	})

	t.Run("error: rejected request is logged at warn level without an actor", func(t *testing.T) {
		buf.Reset()
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/private", nil))

		out := buf.String()
		assert.Contains(t, out, "level=WARN")
		assert.Contains(t, out, "status_code=401")
		assert.NotContains(t, out, "subject=")
	})
}
