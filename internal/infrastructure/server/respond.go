package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/workbench/internal/domain/entities"
)

const maxBodyBytes = 16 << 20

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warnf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeFailure maps err onto a status code and a JSON error body.
func writeFailure(w http.ResponseWriter, err error) {
	status := statusFor(err)
	message := err.Error()
	switch {
	case errors.Is(err, entities.ErrNoCredential):
		message = "No token"
	case errors.Is(err, entities.ErrNotConfigured):
		message = "This feature is not configured on the server"
	}
	writeError(w, status, message)
}

func statusFor(err error) int {
	var (
		validationErr *entities.ValidationError
		authErr       *entities.AuthError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, entities.ErrNoCredential):
		return http.StatusUnauthorized
	case errors.Is(err, entities.ErrNotConfigured):
		return http.StatusServiceUnavailable
	case errors.As(err, &authErr):
		if authErr.StatusCode >= http.StatusBadRequest {
			return authErr.StatusCode
		}
		return http.StatusBadRequest
	case errors.Is(err, entities.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON reads a bounded JSON body into dst. An empty body leaves dst untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return entities.NewValidationError("body", "malformed JSON: %v", err)
	}
	return nil
}
