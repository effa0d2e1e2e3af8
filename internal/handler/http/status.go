package http

import (
	"net/http"

	"github.com/Oisamaye1/myportfolio/internal/utils"
)

func (h *Handler) databaseStatus(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.StatusService.DatabaseStatus(r.Context()), http.StatusOK)
}

func (h *Handler) emailStatus(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.StatusService.EmailStatus(r.Context()), http.StatusOK)
}
