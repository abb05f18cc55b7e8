package http

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"herramarket-frontdesk/internal/logger"
	"herramarket-frontdesk/internal/service"
	"herramarket-frontdesk/internal/upstream"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps the error taxonomy onto HTTP statuses: validation to 400,
// illegal lifecycle steps to 409, backend auth/missing to 401/404, and any
// other backend failure to 502 since this service is only a frontend for it.
func writeError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrReservationLocked), errors.Is(err, service.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, upstream.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, upstream.ErrNotFound):
		status = http.StatusNotFound
	default:
		status = http.StatusBadGateway
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
