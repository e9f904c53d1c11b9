package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// FallbackLogSink appends each record as one line of JSON to a locally
// durable log file. Last tier in the chain; it is also the only tier when no
// database is configured. The file is never truncated or rotated here.
type FallbackLogSink struct {
	path  string
	mutex sync.Mutex
}

func NewFallbackLogSink(path string) *FallbackLogSink {
	return &FallbackLogSink{path: path}
}

func (s *FallbackLogSink) Name() string { return "fallback-log" }

func (s *FallbackLogSink) Persist(ctx context.Context, record *Record) error {
	line, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open fallback log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append to fallback log: %w", err)
	}
	return nil
}
