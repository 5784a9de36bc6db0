package utils

import (
	"encoding/json"
	"log"
	"net/http"

	"kisekae_server/config"
	"kisekae_server/models"
)

// WriteJSON writes a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v\n", err)
	}
}

// WriteError writes the shared error shape.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, models.ErrorResponse{Error: message})
}

// WriteValidationError writes a 400 with per-field details.
func WriteValidationError(w http.ResponseWriter, details map[string][]models.FieldErrorDetail) {
	WriteJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request", Details: details})
}

// WriteInternalError masks the failure for clients. Outside production
// the underlying message is included to ease debugging.
func WriteInternalError(w http.ResponseWriter, err error) {
	body := models.ErrorResponse{Error: "Internal Server Error"}
	if err != nil && !config.IsProduction() {
		body.Detail = err.Error()
	}
	WriteJSON(w, http.StatusInternalServerError, body)
}
