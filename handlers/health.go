package handlers

import (
	"encoding/json"
	"net/http"
)

// Root serves the service banner.
func Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":         "Document Intelligence API",
		"version":         "1.0.0",
		"endpoints":       []string{"/process", "/health", "/documents"},
		"supported_types": []string{"invoice", "cv", "id_card", "receipt"},
	})
}

// Health serves the liveness check.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "document-intelligence",
	})
}
