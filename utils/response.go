package utils

import (
	"encoding/json"
	"net/http"

	"cookbook/apperr"

	"go.uber.org/zap"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

func RespondWithError(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, ErrorBody{StatusCode: code, Error: http.StatusText(code), Message: msg})
}

// Sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// RespondWithAppError renders a service error. Expected failures carry their
// own message; anything else is logged and answered with a generic 500.
func RespondWithAppError(w http.ResponseWriter, log *zap.Logger, err error, fields ...zap.Field) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindUnknown {
		log.Error("request failed", append(fields, zap.Error(err))...)
		RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	status := kind.Status()
	RespondWithJSON(w, status, ErrorBody{StatusCode: status, Error: kind.String(), Message: err.Error()})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
