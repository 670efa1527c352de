package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndValidateJWT(t *testing.T) {
	tokenString, err := GenerateJWT(42, "admin", testSecret, 15)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := ValidateJWT(tokenString, testSecret)
	require.NoError(t, err)
	require.Equal(t, uint(42), claims.UserID)
	require.Equal(t, "admin", claims.Role)
	require.Equal(t, "turfbook", claims.Issuer)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	tokenString, err := GenerateJWT(42, "user", testSecret, 15)
	require.NoError(t, err)

	_, err = ValidateJWT(tokenString, "other-secret")
	require.Error(t, err)
}

func TestValidateJWTRejectsExpired(t *testing.T) {
	tokenString, err := GenerateJWT(42, "user", testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateJWT(tokenString, testSecret)
	require.ErrorContains(t, err, "expired")
}

func TestValidateJWTRejectsEmptyInput(t *testing.T) {
	_, err := ValidateJWT("", testSecret)
	require.Error(t, err)

	_, err = ValidateJWT("not-a-token", testSecret)
	require.Error(t, err)
}

func TestRefreshTokenCarriesOnlyUserID(t *testing.T) {
	tokenString, err := GenerateRefreshToken(42, testSecret, 7)
	require.NoError(t, err)

	claims, err := ValidateJWT(tokenString, testSecret)
	require.NoError(t, err)
	require.Equal(t, uint(42), claims.UserID)
	require.Empty(t, claims.Role)
}
