package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSink inserts the full record shape into the documents table.
type PostgresSink struct {
	db *pgxpool.Pool
}

func NewPostgresSink(db *pgxpool.Pool) *PostgresSink {
	return &PostgresSink{db: db}
}

func (s *PostgresSink) Name() string { return "postgres" }

func (s *PostgresSink) Persist(ctx context.Context, record *Record) error {
	fields, err := json.Marshal(record.Fields)
	if err != nil {
		return fmt.Errorf("marshal extracted fields: %w", err)
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO documents (id, filename, document_type, confidence, extracted_text, extracted_json, file_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		record.ID, record.Filename, record.DocumentType, record.Confidence,
		record.StoredText(), fields, record.FileURL, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// PostgresCompatSink retries with a reduced record shape, omitting the
// columns a lagging schema may not have yet (confidence, file_url, explicit
// id/timestamp).
type PostgresCompatSink struct {
	db *pgxpool.Pool
}

func NewPostgresCompatSink(db *pgxpool.Pool) *PostgresCompatSink {
	return &PostgresCompatSink{db: db}
}

func (s *PostgresCompatSink) Name() string { return "postgres-compat" }

func (s *PostgresCompatSink) Persist(ctx context.Context, record *Record) error {
	fields, err := json.Marshal(record.Fields)
	if err != nil {
		return fmt.Errorf("marshal extracted fields: %w", err)
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO documents (filename, document_type, extracted_text, extracted_json)
		VALUES ($1, $2, $3, $4)`,
		record.Filename, record.DocumentType, record.StoredText(), fields)
	if err != nil {
		return fmt.Errorf("insert reduced document: %w", err)
	}
	return nil
}
