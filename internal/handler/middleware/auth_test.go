//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"seller-catalog/internal/handler/middleware"
	"seller-catalog/internal/pkg/jwt"
	"seller-catalog/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := jwt.NewService("test-secret", time.Hour)

	var got commands.Actor
	router := gin.New()
	router.GET("/private", middleware.NewAuthMiddleware(svc).RequireAuth(), func(c *gin.Context) {
		got, _ = middleware.GetActor(c)
		c.Status(http.StatusNoContent)
	})

	do := func(header string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("success: valid token sets the actor", func(t *testing.T) {
		token, err := svc.GenerateToken("seller-a", []string{"shop-a", "shop-b"})
		require.NoError(t, err)

		rec := do("Bearer " + token)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "seller-a", got.Subject)
		assert.Equal(t, []string{"shop-a", "shop-b"}, got.Shops)
	})

	t.Run("error: missing token", func(t *testing.T) {
		rec := do("")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Access token required")
	})

	t.Run("error: non-bearer scheme", func(t *testing.T) {
		rec := do("Basic abc")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("error: token signed with another key", func(t *testing.T) {
		other, err := jwt.NewService("other-secret", time.Hour).GenerateToken("seller-a", nil)
		require.NoError(t, err)

		rec := do("Bearer " + other)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid or expired token")
	})
}
