package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyJWT(t *testing.T) {
	require.NoError(t, InitJWT("test-secret", time.Hour))

	token, err := GenerateJWT("test_user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "test_user", claims.Subject)
	assert.Equal(t, "gameshelf", claims.Issuer)
}

func TestVerifyJWTExpired(t *testing.T) {
	require.NoError(t, InitJWT("test-secret", -time.Minute))

	token, err := GenerateJWT("test_user")
	require.NoError(t, err)

	_, err = VerifyJWT(token)
	assert.Error(t, err)
}

func TestVerifyJWTWrongKey(t *testing.T) {
	require.NoError(t, InitJWT("test-secret", time.Hour))

	token, err := GenerateJWT("test_user")
	require.NoError(t, err)

	require.NoError(t, InitJWT("another-secret", time.Hour))

	_, err = VerifyJWT(token)
	assert.Error(t, err)
}

func TestVerifyJWTGarbage(t *testing.T) {
	require.NoError(t, InitJWT("test-secret", time.Hour))

	_, err := VerifyJWT("not-a-token")
	assert.Error(t, err)
}

func TestInitJWTEmptySecret(t *testing.T) {
	assert.Error(t, InitJWT("", time.Hour))
}
