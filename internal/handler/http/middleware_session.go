package http

import (
	"context"
	"net/http"

	"github.com/Oisamaye1/myportfolio/internal/logger"
	"github.com/Oisamaye1/myportfolio/internal/session"
	"github.com/Oisamaye1/myportfolio/internal/utils"
	"github.com/Oisamaye1/myportfolio/models"
)

// withSession authenticates management API requests. Unlike the page
// guard it fully verifies the token and rejects the request with 401
// instead of redirecting.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, ok := session.TokenFromRequest(r)
		if !ok || tokenString == "" {
			utils.WriteJSON(w, models.LoginResponse{Message: "Authentication required"}, http.StatusUnauthorized)
			return
		}

		identity, err := h.services.AuthService.VerifyToken(r.Context(), tokenString)
		if err != nil {
			log.Warn().Msg("rejected management request with invalid session token")
			utils.WriteJSON(w, models.LoginResponse{Message: "Session expired or invalid"}, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.IdentityCtxKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withAudit records the acting user on management writes. It runs after
// withSession, so the verified identity is already in the request context.
func withAudit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			if identity, ok := utils.GetIdentityFromContext(r.Context()); ok {
				logger.FromRequest(r).Info().
					Str("user", identity.Username).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("management write")
			}
		}
		next.ServeHTTP(w, r)
	})
}
