package ocr

import (
	"context"
	"fmt"
	"os"

	"code.sajari.com/docconv/v2"
)

// DocconvRecognizer is the secondary OCR engine. docconv drives its own
// Tesseract invocation with different preprocessing, which recovers pages the
// primary engine mangles (skew, small fonts, unusual layouts).
type DocconvRecognizer struct{}

func NewDocconvRecognizer() *DocconvRecognizer {
	return &DocconvRecognizer{}
}

func (r *DocconvRecognizer) Name() string { return "docconv" }

func (r *DocconvRecognizer) Recognize(ctx context.Context, imagePath string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	f, err := os.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	res, err := docconv.Convert(f, docconv.MimeTypeByExtension(imagePath), true)
	if err != nil {
		return "", fmt.Errorf("convert image: %w", err)
	}
	return res.Body, nil
}
