package ocr

import "context"

// TextRecognizer is one OCR engine. Implementations are tried in a fixed
// priority order per page; a failure or whitespace-only result falls through
// to the next recognizer.
type TextRecognizer interface {
	Name() string
	Recognize(ctx context.Context, imagePath string) (string, error)
}
