package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"travelplanner/internal/domain"
)

// Error codes exposed in the failure envelope. Clients switch on these, not
// on HTTP status alone.
const (
	codeValidation       = "VALIDATION_ERROR"
	codeNotFound         = "NOT_FOUND"
	codeDatabase         = "DATABASE_ERROR"
	codeServer           = "SERVER_ERROR"
	codeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)

// envelope is the uniform response shape for every endpoint:
// success carries data and a null error; failure carries null data and a
// typed error.
type envelope struct {
	Success bool         `json:"success"`
	Data    any          `json:"data"`
	Error   *errorDetail `json:"error"`
}

// errorDetail is the typed error object inside a failure envelope.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

// writeSuccess renders a success envelope with the given HTTP status.
func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

// writeError renders a failure envelope with the given HTTP status.
func writeError(w http.ResponseWriter, status int, code, message string, details any) {
	writeJSON(w, status, envelope{Error: &errorDetail{Code: code, Message: message, Details: details}})
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The envelope contains only values we control; an encode failure at this
	// point means the response is already half-written and unrecoverable.
	_ = json.NewEncoder(w).Encode(body)
}

// writeServiceError translates a service-layer error into the failure
// envelope. Expected outcomes (validation, not-found) become structured 4xx
// responses; anything else is logged with full context and surfaced as a
// generic DATABASE_ERROR without internal detail.
//
// resource names what was being operated on ("trip", "day", "activity") and
// genericMsg is the client-facing message for unexpected failures.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error, resource, genericMsg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, resource+" not found", nil)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, codeValidation, validationMessage(err), nil)
	default:
		s.log.ErrorContext(r.Context(), genericMsg,
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		writeError(w, http.StatusInternalServerError, codeDatabase, genericMsg, nil)
	}
}

// validationMessage extracts the human-readable part from a wrapped
// domain.ErrValidation, e.g.
// "service.TripService.Create: validation error: trip name is required"
// becomes "trip name is required".
func validationMessage(err error) string {
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

// badRequest renders a VALIDATION_ERROR for input rejected before reaching
// the service layer (malformed body, bad path ID, unparseable date).
func badRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, codeValidation, message, nil)
}
