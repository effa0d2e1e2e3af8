package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Oisamaye1/myportfolio/internal/logger"
	"github.com/Oisamaye1/myportfolio/internal/service"
	"github.com/Oisamaye1/myportfolio/internal/session"
	"github.com/Oisamaye1/myportfolio/internal/utils"
	"github.com/Oisamaye1/myportfolio/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.LoginResponse{Message: "Invalid request body"}, http.StatusBadRequest)
		return
	}

	identity, err := h.services.AuthService.Authenticate(ctx, request.Username, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			utils.WriteJSON(w, models.LoginResponse{Message: "Username and password are required"}, http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidCredentials):
			utils.WriteJSON(w, models.LoginResponse{Message: "Invalid credentials"}, http.StatusUnauthorized)
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			utils.WriteJSON(w, models.LoginResponse{Message: "Internal server error"}, http.StatusInternalServerError)
		}
		return
	}

	token, err := h.services.AuthService.IssueToken(ctx, identity)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.LoginResponse{Message: "Internal server error"}, http.StatusInternalServerError)
		return
	}

	session.SetSessionCookie(w, token.SignedString, h.server.IsProduction())
	utils.WriteJSON(w, models.LoginResponse{
		Success: true,
		Message: "Login successful",
		User:    &identity,
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	session.ClearSessionCookie(w, h.server.IsProduction())
	utils.WriteJSON(w, models.LoginResponse{
		Success: true,
		Message: "Logout successful",
	}, http.StatusOK)
}

// me reports the session state of the caller. An absent or invalid
// session answers 401 with authenticated=false rather than an error body;
// the frontend treats it as "not logged in", never as a failure.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	tokenString, ok := session.TokenFromRequest(r)
	if !ok {
		utils.WriteJSON(w, models.MeResponse{Message: "No active session"}, http.StatusUnauthorized)
		return
	}

	identity, err := h.services.AuthService.VerifyToken(r.Context(), tokenString)
	if err != nil {
		utils.WriteJSON(w, models.MeResponse{Message: "Session expired or invalid"}, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.MeResponse{
		Authenticated: true,
		User:          &identity,
	}, http.StatusOK)
}
