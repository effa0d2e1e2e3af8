package utils

import (
	"testing"
	"time"

	"github.com/Oisamaye1/myportfolio/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSignKey = "test-sign-key"

var testIdentity = models.Identity{Username: "admin", Role: models.RoleAdmin}

func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken(testIdentity, 24*time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	identity, err := ValidateAndParseJWTToken(token.SignedString, testSignKey)
	require.NoError(t, err)
	assert.Equal(t, testIdentity, identity)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	_, err := GenerateJWTToken(models.Identity{}, time.Hour, testSignKey)
	assert.Error(t, err)

	_, err = GenerateJWTToken(testIdentity, 0, testSignKey)
	assert.Error(t, err)

	_, err = GenerateJWTToken(testIdentity, time.Hour, "")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token, err := GenerateJWTToken(testIdentity, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "another-key")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	// token issued far in the past with the standard 24h window
	iat := time.Now().Add(-100000 * time.Second)
	claims := &models.TokenClaims{
		Username: testIdentity.Username,
		Role:     testIdentity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(iat),
			ExpiresAt: jwt.NewNumericDate(iat.Add(24 * time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, testSignKey)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	for _, raw := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := ValidateAndParseJWTToken(raw, testSignKey)
		assert.Error(t, err, "input %q", raw)
	}
}

func TestValidateAndParseJWTToken_TamperedPayload(t *testing.T) {
	token, err := GenerateJWTToken(testIdentity, time.Hour, testSignKey)
	require.NoError(t, err)

	tampered := []byte(token.SignedString)
	tampered[len(tampered)/2] ^= 0x01

	_, err = ValidateAndParseJWTToken(string(tampered), testSignKey)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_MissingUsername(t *testing.T) {
	claims := &models.TokenClaims{
		Role: models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, testSignKey)
	assert.Error(t, err)
}
