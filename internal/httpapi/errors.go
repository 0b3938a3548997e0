package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"houseprice/internal/manager"
	"houseprice/pkg/types"
)

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// badRequest is a client input error raised while decoding a request.
type badRequest struct{ msg string }

func (e badRequest) Error() string   { return e.msg }
func (e badRequest) StatusCode() int { return http.StatusBadRequest }

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	var he HTTPError
	switch {
	case manager.IsNotReady(err):
		return http.StatusServiceUnavailable
	case manager.IsInvalidInput(err):
		return http.StatusBadRequest
	case errors.As(err, &he):
		return he.StatusCode()
	default:
		return http.StatusInternalServerError
	}
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}
