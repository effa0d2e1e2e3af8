package http

import (
	"net/http"
	"strings"

	"github.com/Oisamaye1/myportfolio/internal/session"
)

// guardCMS protects the CMS pages. It only checks that a session cookie
// exists; token verification is left to the management API every page
// calls. Login pages are excluded so an operator can always reach them,
// and an unauthenticated visitor is redirected there.
func (h *Handler) guardCMS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/login") {
			next.ServeHTTP(w, r)
			return
		}

		if token, ok := session.TokenFromRequest(r); !ok || token == "" {
			http.Redirect(w, r, "/cms/login", http.StatusTemporaryRedirect)
			return
		}

		next.ServeHTTP(w, r)
	})
}
