package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims is the JWT payload carried inside the session cookie.
// Besides the registered iat/exp claims it embeds the identity fields so
// that the principal can be rebuilt on every request without any
// server-side session state.
type TokenClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Identity rebuilds the principal carried by the claims.
func (c *TokenClaims) Identity() Identity {
	return Identity{Username: c.Username, Role: c.Role}
}

// Token couples a compact signed JWT string with the identity it carries.
// A Token is created exactly once per successful login and is never
// mutated; expiry is enforced at verification time by comparing the "exp"
// claim against the current clock.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// Identity is the principal the token was issued for.
	Identity Identity `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
