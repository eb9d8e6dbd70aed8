package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"talenthub/internal/apperr"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeFailure maps the error taxonomy to HTTP status codes. Every store
// error has already been wrapped at the operation boundary, so nothing
// leaks as an uncaught 500 with a raw driver message.
func writeFailure(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrAuthRequired):
		status = http.StatusUnauthorized
	case errors.Is(err, apperr.ErrForbiddenTransition):
		status = http.StatusForbidden
	case errors.Is(err, apperr.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperr.ErrStore):
		status = http.StatusBadGateway
	}
	writeError(w, err.Error(), status)
}
