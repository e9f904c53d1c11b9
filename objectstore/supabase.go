// Package objectstore uploads original document files to an external object
// store so the persisted record can carry a public URL. Upload is best
// effort: failures are reported to the caller, who logs and moves on.
package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// ObjectStore is the storage-upload boundary the pipeline calls.
type ObjectStore interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (string, error)
}

// SupabaseStore talks to the Supabase storage REST API.
type SupabaseStore struct {
	baseURL string
	apiKey  string
	bucket  string
	client  *http.Client
	logger  *slog.Logger
}

func NewSupabaseStore(baseURL, apiKey, bucket string, logger *slog.Logger) *SupabaseStore {
	return &SupabaseStore{
		baseURL: baseURL,
		apiKey:  apiKey,
		bucket:  bucket,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

// Upload stores the file in the configured bucket and returns its public URL.
func (s *SupabaseStore) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s",
		s.baseURL, s.bucket, url.PathEscape(filename))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("error creating upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error uploading object: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("unexpected status code %d uploading object: %s", resp.StatusCode, string(body))
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		s.baseURL, s.bucket, url.PathEscape(filename))

	s.logger.Info("Uploaded original document to object store",
		slog.String("filename", filename),
		slog.String("bucket", s.bucket))

	return publicURL, nil
}
