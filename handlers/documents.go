package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DocumentsHandler lists the most recently processed documents from the
// structured store.
type DocumentsHandler struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewDocumentsHandler(db *pgxpool.Pool, logger *slog.Logger) *DocumentsHandler {
	return &DocumentsHandler{
		db:     db,
		logger: logger,
	}
}

type documentSummary struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	DocumentType string    `json:"document_type"`
	Confidence   float64   `json:"confidence"`
	CreatedAt    time.Time `json:"created_at"`
}

func (h *DocumentsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		writeJSONError(w, "No database configured", http.StatusServiceUnavailable)
		return
	}

	rows, err := h.db.Query(r.Context(), `
		SELECT id, filename, document_type, confidence, created_at
		FROM documents
		ORDER BY created_at DESC
		LIMIT 20`)
	if err != nil {
		h.logger.Error("Failed to query documents", slog.String("error", err.Error()))
		writeJSONError(w, "Failed to list documents", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	documents := []documentSummary{}
	for rows.Next() {
		var doc documentSummary
		if err := rows.Scan(&doc.ID, &doc.Filename, &doc.DocumentType, &doc.Confidence, &doc.CreatedAt); err != nil {
			h.logger.Error("Failed to scan document row", slog.String("error", err.Error()))
			writeJSONError(w, "Failed to list documents", http.StatusInternalServerError)
			return
		}
		documents = append(documents, doc)
	}
	if err := rows.Err(); err != nil {
		h.logger.Error("Failed to iterate document rows", slog.String("error", err.Error()))
		writeJSONError(w, "Failed to list documents", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"documents": documents,
	})
}
