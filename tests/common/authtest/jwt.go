//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"seller-catalog/internal/pkg/config"
	"seller-catalog/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

// GenerateToken issues a token for subject; no shops means every shop.
func (h *JWTHelper) GenerateToken(t *testing.T, subject string, shops ...string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(subject, shops)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, subject string, shops ...string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(subject, shops)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
