package http

import (
	"errors"
	"net/http"

	"github.com/Oisamaye1/myportfolio/internal/logger"
	"github.com/Oisamaye1/myportfolio/internal/service"
	"github.com/Oisamaye1/myportfolio/internal/store"
	"github.com/Oisamaye1/myportfolio/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrMailDeliveryFailed:      http.StatusBadGateway,

	store.ErrNotFound:              http.StatusNotFound,
	store.ErrSlugAlreadyExists:     http.StatusConflict,
	store.ErrNoFieldsToUpdate:      http.StatusBadRequest,
	store.ErrDatabaseNotConfigured: http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// apiResponse is the uniform status body for API endpoints.
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
		message = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSON(w, apiResponse{Message: message}, status)
}
