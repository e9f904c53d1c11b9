// Package pipeline runs the document processing chain: OCR with fallback,
// text normalization, type classification, structured field extraction and
// tiered persistence. One invocation per uploaded document, synchronous,
// no shared mutable state besides the injected read-only classifier model.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/serisow/docintel/extractor"
	"github.com/serisow/docintel/ocr"
	"github.com/serisow/docintel/storage"
	"github.com/serisow/docintel/textproc"
)

// minTextLength is the gate in front of the classifier: anything shorter is
// an input-rejection failure, not a classification candidate.
const minTextLength = 10

// rawTextPreviewLimit caps the raw_text preview in the caller-visible result.
const rawTextPreviewLimit = 500

// ErrInsufficientText marks a document whose OCR output is too thin to
// classify. Handlers translate it into a client-side failure.
var ErrInsufficientText = errors.New("could not extract text from document")

// TextExtractor is the OCR stage boundary.
type TextExtractor interface {
	ExtractText(ctx context.Context, path, ext string) string
}

// Classifier is the document-type stage boundary.
type Classifier interface {
	Classify(text string) (label string, confidence float64)
}

// ResultStore is the persistence stage boundary.
type ResultStore interface {
	Persist(ctx context.Context, record *storage.Record) storage.Outcome
}

// Notifier delivers operator alerts on persistence exhaustion.
type Notifier interface {
	Notify(message string) error
}

// Upload is one document handed to the pipeline: the temp file the transport
// layer saved plus the declared filename. The transport layer owns the temp
// file and removes it when Process returns.
type Upload struct {
	Path        string
	Filename    string
	ContentType string
	FileURL     string
}

// Result is the caller-visible outcome of one pipeline run.
type Result struct {
	Success       bool             `json:"success"`
	Filename      string           `json:"filename"`
	DocumentType  string           `json:"document_type"`
	Confidence    float64          `json:"confidence"`
	ExtractedData extractor.Fields `json:"extracted_data"`
	RawText       string           `json:"raw_text"`
	FileURL       string           `json:"file_url,omitempty"`
}

type Pipeline struct {
	extractor  TextExtractor
	classifier Classifier
	store      ResultStore
	notifier   Notifier
	logger     *slog.Logger
}

// New wires the pipeline stages together. notifier may be nil when no
// alerting is configured.
func New(textExtractor TextExtractor, documentClassifier Classifier, store ResultStore, notifier Notifier, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		extractor:  textExtractor,
		classifier: documentClassifier,
		store:      store,
		notifier:   notifier,
		logger:     logger,
	}
}

// Process runs the full chain on one uploaded document. The classification
// and extraction result is returned even when every persistence tier failed.
func (p *Pipeline) Process(ctx context.Context, upload Upload) (*Result, error) {
	ext := strings.ToLower(filepath.Ext(upload.Filename))

	start := time.Now()
	rawText := p.extractor.ExtractText(ctx, upload.Path, ext)
	p.logger.Debug("OCR stage finished",
		slog.String("filename", upload.Filename),
		slog.Int("text_length", len(rawText)),
		slog.Float64("extraction_seconds", time.Since(start).Seconds()))

	if ocr.IsSentinel(rawText) {
		p.logger.Warn("OCR produced no usable text",
			slog.String("filename", upload.Filename),
			slog.String("payload", rawText))
		return nil, ErrInsufficientText
	}

	normalized := textproc.Normalize(rawText)
	if len(normalized) < minTextLength {
		p.logger.Warn("Extracted text below minimum length",
			slog.String("filename", upload.Filename),
			slog.Int("length", len(normalized)))
		return nil, ErrInsufficientText
	}

	label, confidence := p.classifier.Classify(normalized)
	p.logger.Info("Document classified",
		slog.String("filename", upload.Filename),
		slog.String("document_type", label),
		slog.Float64("confidence", confidence))

	fields := extractor.ExtractFields(label, normalized)

	record := &storage.Record{
		ID:           uuid.NewString(),
		Filename:     upload.Filename,
		DocumentType: label,
		Confidence:   confidence,
		Text:         normalized,
		Fields:       fields,
		FileURL:      upload.FileURL,
		CreatedAt:    time.Now().UTC(),
	}

	outcome := p.store.Persist(ctx, record)
	if !outcome.Persisted && p.notifier != nil {
		msg := fmt.Sprintf("docintel: all persistence tiers failed for %s (record %s)",
			upload.Filename, record.ID)
		if err := p.notifier.Notify(msg); err != nil {
			p.logger.Error("Alert delivery failed",
				slog.String("record_id", record.ID),
				slog.String("error", err.Error()))
		}
	}

	preview := textproc.Truncate(normalized, rawTextPreviewLimit)

	return &Result{
		Success:       true,
		Filename:      upload.Filename,
		DocumentType:  label,
		Confidence:    confidence,
		ExtractedData: fields,
		RawText:       preview,
		FileURL:       upload.FileURL,
	}, nil
}
