package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestSignToken_RoundTrip(t *testing.T) {
	token, err := SignToken(testSecret, 42, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, token)

	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := SignToken(testSecret, 42, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)

	assert.Error(t, err)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := SignToken(testSecret, 42, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken([]byte("other-secret"), token)

	assert.Error(t, err)
}

func TestParseToken_Malformed(t *testing.T) {
	_, err := ParseToken(testSecret, "not-a-token")

	assert.Error(t, err)
}
