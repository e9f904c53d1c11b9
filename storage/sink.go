package storage

import (
	"context"
	"log/slog"
)

// Sink is one persistence tier.
type Sink interface {
	Name() string
	Persist(ctx context.Context, record *Record) error
}

// Outcome reports which tier, if any, accepted the record.
type Outcome struct {
	Persisted bool
	Tier      string
}

// Store tries each sink in strict order until one accepts the record. Tier
// failures are logged and swallowed; only total exhaustion is surfaced, and
// even that never aborts the pipeline response.
type Store struct {
	sinks  []Sink
	logger *slog.Logger
}

func NewStore(sinks []Sink, logger *slog.Logger) *Store {
	return &Store{
		sinks:  sinks,
		logger: logger,
	}
}

func (s *Store) Persist(ctx context.Context, record *Record) Outcome {
	for _, sink := range s.sinks {
		err := sink.Persist(ctx, record)
		if err == nil {
			s.logger.Info("Record persisted",
				slog.String("tier", sink.Name()),
				slog.String("record_id", record.ID),
				slog.String("document_type", record.DocumentType))
			return Outcome{Persisted: true, Tier: sink.Name()}
		}
		s.logger.Warn("Persistence tier failed, falling through",
			slog.String("tier", sink.Name()),
			slog.String("record_id", record.ID),
			slog.String("error", err.Error()))
	}

	s.logger.Warn("All persistence tiers failed, record lost",
		slog.String("record_id", record.ID),
		slog.String("filename", record.Filename))
	return Outcome{}
}
