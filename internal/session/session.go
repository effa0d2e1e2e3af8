// Package session is the transport boundary of the session-credential
// subsystem. It moves the signed session token between the client and the
// server: reading it out of an inbound Cookie header and writing it into an
// outbound Set-Cookie header. The package never inspects the token itself;
// cryptographic verification belongs to the auth service.
package session

import (
	"fmt"
	"net/http"
	"strings"
)

// CookieName is the name of the session cookie carrying the signed token.
const CookieName = "auth-token"

// CookieMaxAge is the client-side lifetime of the session cookie: 7 days.
//
// Note that the token inside the cookie expires after 24 hours. The cookie
// deliberately outlives the token: the browser keeps presenting it, the
// token silently stops verifying, and the operator is forced back through
// login. The mismatch is preserved from the original design on purpose;
// do not "fix" it by aligning the two windows.
const CookieMaxAge = 7 * 24 * 60 * 60

// ExtractToken parses a raw Cookie header and returns the session token
// verbatim, without any further decoding. The second return value is false
// when the header is empty or carries no session cookie.
func ExtractToken(cookieHeader string) (string, bool) {
	if cookieHeader == "" {
		return "", false
	}

	for _, part := range strings.Split(cookieHeader, ";") {
		cookie := strings.TrimSpace(part)
		if value, found := strings.CutPrefix(cookie, CookieName+"="); found {
			return value, true
		}
	}

	return "", false
}

// BuildSetCookie constructs a Set-Cookie header value for the session
// cookie. The cookie is always HttpOnly, site-wide, and SameSite=Lax;
// Secure is appended only when secure is true (production deployments).
// An empty token with maxAge 0 clears the cookie.
func BuildSetCookie(token string, maxAge int, secure bool) string {
	value := fmt.Sprintf("%s=%s; HttpOnly; Path=/; Max-Age=%d; SameSite=Lax", CookieName, token, maxAge)
	if secure {
		value += "; Secure"
	}

	return value
}

// SetSessionCookie attaches a freshly issued token to the response with the
// full 7-day cookie lifetime.
func SetSessionCookie(w http.ResponseWriter, token string, secure bool) {
	w.Header().Set("Set-Cookie", BuildSetCookie(token, CookieMaxAge, secure))
}

// ClearSessionCookie empties the session cookie and expires it immediately.
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	w.Header().Set("Set-Cookie", BuildSetCookie("", 0, secure))
}

// TokenFromRequest extracts the session token from a request's Cookie
// header. It is the presence check used both by the route guard and by the
// handlers that go on to verify the token.
func TokenFromRequest(r *http.Request) (string, bool) {
	return ExtractToken(r.Header.Get("Cookie"))
}
