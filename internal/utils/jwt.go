package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/Oisamaye1/myportfolio/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT carrying the given
// identity.
//
// The token payload contains:
//   - username:  the authenticated admin login
//   - role:      the identity's role (always "admin" in this system)
//   - iat:       the current time
//   - exp:       the current time plus tokenDuration
//
// Returns an error if the identity has an empty username, the duration is
// zero, the sign key is empty, or signing fails.
func GenerateJWTToken(identity models.Identity, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if identity.Username == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.TokenClaims{
		Username: identity.Username,
		Role:     identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, Identity: identity}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and
// reconstructs the identity it carries.
//
// Validation includes:
//   - Signature verification using the provided sign key (HMAC only;
//     tokens signed with any other algorithm family are rejected)
//   - Expiration (exp) claim check against the current time
//   - Presence of a non-empty username claim
//
// Returns the reconstructed identity or an error on any validation failure.
func ValidateAndParseJWTToken(tokenString, tokenSignKey string) (models.Identity, error) {
	claims := &models.TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Identity{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Username == "" {
		return models.Identity{}, errors.New("empty username claim")
	}

	return claims.Identity(), nil
}
