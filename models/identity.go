// Package models defines the shared domain types of the portfolio
// application: the authenticated identity, the session token, the content
// entities managed through the CMS, and the request/response shapes of the
// HTTP API.
package models

// RoleAdmin is the only role the system knows. The CMS is a single-admin
// gate; every successfully authenticated identity carries this role.
const RoleAdmin = "admin"

// Identity is the authenticated principal reconstructed on every successful
// credential check or token verification. It is a pure value type with no
// lifecycle of its own; it is never persisted outside the token.
type Identity struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
