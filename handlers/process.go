package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/serisow/docintel/objectstore"
	"github.com/serisow/docintel/pipeline"
)

// allowedExtensions gates uploads before any processing happens.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tiff": true,
	".bmp":  true,
}

// DocumentProcessor is the pipeline boundary the handler calls.
type DocumentProcessor interface {
	Process(ctx context.Context, upload pipeline.Upload) (*pipeline.Result, error)
}

// ProcessHandler accepts a multipart document upload, runs it through the
// pipeline and returns the classification and extraction result.
type ProcessHandler struct {
	processor DocumentProcessor
	objects   objectstore.ObjectStore
	maxSize   int64
	logger    *slog.Logger
}

// NewProcessHandler builds the upload endpoint. objects may be nil when no
// object store is configured.
func NewProcessHandler(processor DocumentProcessor, objects objectstore.ObjectStore, maxSize int64, logger *slog.Logger) *ProcessHandler {
	return &ProcessHandler{
		processor: processor,
		objects:   objects,
		maxSize:   maxSize,
		logger:    logger,
	}
}

func (h *ProcessHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("Received document processing request")

	if err := r.ParseMultipartForm(h.maxSize); err != nil {
		writeJSONError(w, "Failed to parse multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSONError(w, "Failed to get file from form", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		h.logger.Warn("Rejected unsupported file type",
			slog.String("filename", header.Filename),
			slog.String("extension", ext))
		writeJSONError(w, "File type "+ext+" not allowed", http.StatusBadRequest)
		return
	}

	if header.Size > h.maxSize {
		writeJSONError(w, "File too large", http.StatusBadRequest)
		return
	}

	content, err := io.ReadAll(io.LimitReader(file, h.maxSize+1))
	if err != nil {
		writeJSONError(w, "Failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(content)) > h.maxSize {
		writeJSONError(w, "File too large", http.StatusBadRequest)
		return
	}

	// The uploaded bytes live in a temp file for the duration of this
	// invocation; every exit path below removes it.
	tmp, err := os.CreateTemp("", "docintel-upload-*"+ext)
	if err != nil {
		h.logger.Error("Failed to create temp file", slog.String("error", err.Error()))
		writeJSONError(w, "Processing error", http.StatusInternalServerError)
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		h.logger.Error("Failed to write temp file", slog.String("error", err.Error()))
		writeJSONError(w, "Processing error", http.StatusInternalServerError)
		return
	}
	tmp.Close()

	// Object-store upload is best effort: a warning, never a failure.
	var fileURL string
	if h.objects != nil {
		fileURL, err = h.objects.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), content)
		if err != nil {
			h.logger.Warn("Object store upload failed",
				slog.String("filename", header.Filename),
				slog.String("error", err.Error()))
			fileURL = ""
		}
	}

	result, err := h.processor.Process(r.Context(), pipeline.Upload{
		Path:        tmpPath,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		FileURL:     fileURL,
	})
	if err != nil {
		if errors.Is(err, pipeline.ErrInsufficientText) {
			writeJSONError(w, "Could not extract text from document", http.StatusBadRequest)
			return
		}
		h.logger.Error("Pipeline failed",
			slog.String("filename", header.Filename),
			slog.String("error", err.Error()))
		writeJSONError(w, "Processing error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.logger.Error("Failed to write response", slog.String("error", err.Error()))
	}
}

func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
