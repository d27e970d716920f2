package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ecorent-backend/internal/domain"
	"ecorent-backend/internal/logger"
)

// errorResponse mirrors the error payload the frontend consumes.
type errorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// writeError maps the domain error kinds onto HTTP statuses: not found 404,
// business-rule conflict 409, invalid input 400. Anything else is an
// unexpected failure and surfaces as a generic 500 without detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	title := "Internal Server Error"
	message := "an unexpected error occurred"

	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		title = "Resource Not Found"
		message = errorMessage(err)
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
		title = "Business Error"
		message = errorMessage(err)
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
		title = "Validation Error"
		message = errorMessage(err)
	default:
		logger.Error("request failed", "path", r.URL.Path, "error", err)
	}

	writeJSON(w, status, errorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Error:     title,
		Message:   message,
		Path:      r.URL.Path,
	})
}

// errorMessage strips the error-kind prefix so clients see only the rule
// that was violated.
func errorMessage(err error) string {
	msg := err.Error()
	for _, kind := range []error{domain.ErrNotFound, domain.ErrConflict, domain.ErrInvalidInput} {
		if prefix := kind.Error() + ": "; strings.HasPrefix(msg, prefix) {
			return strings.TrimPrefix(msg, prefix)
		}
	}
	return msg
}

// invalidInput builds a validation error for malformed request fields.
func invalidInput(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg)
}
