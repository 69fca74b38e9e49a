package response

import (
	"encoding/json"
	"net/http"

	"partner-program/pkg/xerrors"
)

// JSON writes v as the response body with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a JSON error envelope.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"error": msg})
}

// ValidationFailed writes a 400 with the per-field detail of a
// ValidationError.
func ValidationFailed(w http.ResponseWriter, ve *xerrors.ValidationError) {
	JSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":  "validation failed",
		"fields": ve.Fields,
	})
}
