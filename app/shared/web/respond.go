// Package web holds the HTTP plumbing shared by module handlers.
package web

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Black-And-White-Club/birdie-buddy/app/shared/attr"
)

// ErrorResponse is the body of every non-2xx JSON reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes err as JSON. Statuses below 500 echo the error text; server
// errors are logged and answered with a generic message.
func Error(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, err error) {
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "Request failed",
			attr.ExtractCorrelationID(r.Context()),
			attr.String("path", r.URL.Path),
			attr.Error(err),
		)
		JSON(w, status, ErrorResponse{Error: http.StatusText(status)})
		return
	}
	JSON(w, status, ErrorResponse{Error: err.Error()})
}

// Decode reads a JSON request body into v, rejecting unknown fields.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
