// Package web holds the JSON response helpers shared by all HTTP
// handlers.
package web

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/apperr"
)

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteError maps err's kind to an HTTP status and writes the standard
// error payload. Internal errors are logged but not echoed to clients.
func WriteError(w http.ResponseWriter, err error) {
	status := apperr.HTTPStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
		msg = "internal error"
	}
	WriteJSON(w, status, map[string]string{"error": msg})
}
