package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("test-secret", "507f1f77bcf86cd799439011", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := VerifySessionToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", userID)
}

func TestVerifySessionToken_WrongSecret(t *testing.T) {
	token, err := GenerateSessionToken("test-secret", "507f1f77bcf86cd799439011", time.Hour)
	require.NoError(t, err)

	_, err = VerifySessionToken("other-secret", token)
	assert.Error(t, err)
}

func TestVerifySessionToken_Expired(t *testing.T) {
	token, err := GenerateSessionToken("test-secret", "507f1f77bcf86cd799439011", -time.Minute)
	require.NoError(t, err)

	_, err = VerifySessionToken("test-secret", token)
	assert.Error(t, err)
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("a@b.co"))
	assert.True(t, IsValidEmail("user.name+tag@example.org"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("a@b"))
	assert.False(t, IsValidEmail("a b@c.de"))
	assert.False(t, IsValidEmail(""))
}
