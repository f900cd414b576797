package auth

import (
	"testing"
	"time"

	"foodbridge/config"

	"github.com/stretchr/testify/assert"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret", Expiry: time.Hour, Issuer: "foodbridge-test"}

	token, err := GenerateAccessToken(cfg, 3, "bella@example.com", "buyer")
	assert.NoError(t, err)

	claims, err := ParseAccessToken(cfg, token)
	assert.NoError(t, err)
	assert.Equal(t, uint(3), claims.UserID)
	assert.Equal(t, "bella@example.com", claims.Email)
	assert.Equal(t, "buyer", claims.Role)
	assert.Equal(t, "foodbridge-test", claims.Issuer)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret", Expiry: time.Hour, Issuer: "foodbridge-test"}
	token, err := GenerateAccessToken(cfg, 3, "bella@example.com", "buyer")
	assert.NoError(t, err)

	other := &config.JWTConfig{Secret: "different-secret"}
	_, err = ParseAccessToken(other, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret", Expiry: -time.Minute, Issuer: "foodbridge-test"}
	token, err := GenerateAccessToken(cfg, 3, "bella@example.com", "buyer")
	assert.NoError(t, err)

	_, err = ParseAccessToken(cfg, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret"}
	_, err := ParseAccessToken(cfg, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
