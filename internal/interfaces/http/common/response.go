package common

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// WriteJSON serializes payload to JSON with status and logs on failure.
func WriteJSON(logger *zap.SugaredLogger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Errorw("failed to encode JSON response", "error", err)
	}
}

// WriteError emits the shared error envelope.
func WriteError(logger *zap.SugaredLogger, w http.ResponseWriter, status int, message string) {
	WriteJSON(logger, w, status, map[string]string{"error": message})
}
