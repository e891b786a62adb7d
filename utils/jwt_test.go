package utils

import (
	"testing"
	"time"

	"goodrunss/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTripUsesConfiguredSecret(t *testing.T) {
	prev := config.AppConfig.JWTSecret
	defer func() { config.AppConfig.JWTSecret = prev }()

	config.AppConfig.JWTSecret = "round-trip-secret"
	token, err := GenerateToken("p1", "p1@example.com", time.Hour)
	require.NoError(t, err)

	id, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "p1", id)

	// A token signed under one secret must not validate under another.
	config.AppConfig.JWTSecret = "rotated-secret"
	_, err = ExtractIDFromToken(token)
	assert.Error(t, err)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	prev := config.AppConfig.JWTSecret
	defer func() { config.AppConfig.JWTSecret = prev }()
	config.AppConfig.JWTSecret = "round-trip-secret"

	token, err := GenerateToken("p1", "p1@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(token)
	assert.Error(t, err)
}

func TestHashTokenIsStableAndHex(t *testing.T) {
	a := HashToken("abc")
	b := HashToken("abc")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, HashToken("abd"))
}
