package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Sentinel payloads returned in place of text when extraction fails outright.
// They are deliberately short: the pipeline's minimum-length gate rejects
// them before classification.
const (
	pdfNoTextSentinel = "Could not extract text from PDF"
)

// IsSentinel reports whether text is one of the failure payloads ExtractText
// returns in place of recognized text.
func IsSentinel(text string) bool {
	return text == pdfNoTextSentinel ||
		strings.HasPrefix(text, "Error extracting text:") ||
		strings.HasPrefix(text, "Error processing PDF:")
}

// Selector extracts text from an image or a multi-page PDF by trying each
// recognizer in priority order. It never returns an error: every failure
// degrades to a sentinel string so the caller can fail gracefully on "too
// little text".
type Selector struct {
	recognizers []TextRecognizer
	renderer    Renderer
	logger      *slog.Logger
}

func NewSelector(recognizers []TextRecognizer, renderer Renderer, logger *slog.Logger) *Selector {
	return &Selector{
		recognizers: recognizers,
		renderer:    renderer,
		logger:      logger,
	}
}

// ExtractText recognizes text from the file at path. ext is the declared file
// extension, lower-cased, including the leading dot.
func (s *Selector) ExtractText(ctx context.Context, path, ext string) string {
	if ext == ".pdf" {
		return s.extractFromPDF(ctx, path)
	}
	return s.extractFromImage(ctx, path)
}

func (s *Selector) extractFromPDF(ctx context.Context, path string) string {
	pageDir, pages, err := s.renderer.RenderPages(ctx, path)
	if err != nil {
		s.logger.Error("PDF rendering failed",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return fmt.Sprintf("Error processing PDF: %s", err)
	}
	defer os.RemoveAll(pageDir)

	var pageTexts []string
	for i, page := range pages {
		text, ok := s.recognizePage(ctx, page, i+1)
		if ok {
			pageTexts = append(pageTexts, text)
		}
	}

	if len(pageTexts) == 0 {
		return pdfNoTextSentinel
	}
	return strings.Join(pageTexts, "\n\n")
}

// recognizePage runs the recognizer chain over a single rendered page.
// Page-level fallback is independent: a failure here never affects the other
// pages.
func (s *Selector) recognizePage(ctx context.Context, page string, pageNumber int) (string, bool) {
	for _, recognizer := range s.recognizers {
		text, err := recognizer.Recognize(ctx, page)
		if err != nil {
			s.logger.Warn("Recognizer failed on page",
				slog.String("recognizer", recognizer.Name()),
				slog.Int("page_number", pageNumber),
				slog.String("error", err.Error()))
			continue
		}
		if strings.TrimSpace(text) != "" {
			return text, true
		}
	}
	return "", false
}

func (s *Selector) extractFromImage(ctx context.Context, path string) string {
	var lastErr error
	for _, recognizer := range s.recognizers {
		text, err := recognizer.Recognize(ctx, path)
		if err != nil {
			s.logger.Warn("Recognizer failed on image",
				slog.String("recognizer", recognizer.Name()),
				slog.String("error", err.Error()))
			lastErr = err
			continue
		}
		if strings.TrimSpace(text) != "" {
			return text
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no recognizer produced text")
	}
	return fmt.Sprintf("Error extracting text: %s", lastErr)
}
