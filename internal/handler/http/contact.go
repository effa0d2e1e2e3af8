package http

import (
	"net/http"

	"github.com/Oisamaye1/myportfolio/internal/utils"
	"github.com/Oisamaye1/myportfolio/models"
)

func (h *Handler) contact(w http.ResponseWriter, r *http.Request) {
	var request models.ContactRequest
	if !decodeBody(w, r, &request) {
		return
	}

	response, err := h.services.ContactService.Send(r.Context(), request)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
