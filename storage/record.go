// Package storage persists pipeline results through an ordered chain of
// sinks: the structured store first, a reduced-shape retry second, a locally
// durable append-only log last. A classified document is never silently
// dropped because one tier is down.
package storage

import (
	"time"

	"github.com/serisow/docintel/extractor"
	"github.com/serisow/docintel/textproc"
)

// storedTextLimit caps the normalized text kept in the structured store.
const storedTextLimit = 1000

// Record is the final artifact of one pipeline run. Immutable after
// creation; exactly one sink ends up owning it.
type Record struct {
	ID           string           `json:"id"`
	Filename     string           `json:"filename"`
	DocumentType string           `json:"document_type"`
	Confidence   float64          `json:"confidence"`
	Text         string           `json:"extracted_text"`
	Fields       extractor.Fields `json:"extracted_json"`
	FileURL      string           `json:"file_url,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

// StoredText returns the normalized text truncated for the structured store.
func (r *Record) StoredText() string {
	return textproc.Truncate(r.Text, storedTextLimit)
}
