//go:build unit

package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GenerateAndValidate(t *testing.T) {
	svc := NewService("secret", time.Hour)

	token, err := svc.GenerateToken("ops", []string{"shop-a"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
	assert.True(t, claims.CoversShop("shop-a"))
	assert.False(t, claims.CoversShop("shop-b"))
}

func TestService_ValidateToken_errors(t *testing.T) {
	svc := NewService("secret", time.Hour)

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewService("other", time.Hour).GenerateToken("ops", nil)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := NewService("secret", -time.Minute).GenerateToken("ops", nil)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestClaims_CoversShop_wildcard(t *testing.T) {
	c := &Claims{Shops: []string{AllShops}}
	assert.True(t, c.CoversShop("anything"))
}

func TestService_GenerateToken_noShops(t *testing.T) {
	svc := NewService("secret", time.Hour)

	token, err := svc.GenerateToken("ops", nil)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, []string{AllShops}, claims.Shops)
	assert.True(t, claims.CoversShop("shop-z"))
}
