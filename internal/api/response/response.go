// Package response holds helpers for sending consistent JSON responses.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the shape of every error body returned by the API.
// Details is optional; validation failures put a field-to-message map there.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// RespondJSON writes data as JSON with the given status code. A nil data
// writes only the status, which suits 204 responses.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// RespondError writes a structured error body with the given status code.
//
//	response.RespondError(w, http.StatusNotFound, "fund not found", nil)
func RespondError(w http.ResponseWriter, status int, message string, details interface{}) {
	RespondJSON(w, status, ErrorResponse{Error: message, Details: details})
}
