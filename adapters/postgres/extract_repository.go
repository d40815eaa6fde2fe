package postgres

import (
	"context"
	"fmt"

	"censusboard/domain/registry"
	"censusboard/ports"

	"github.com/jmoiron/sqlx"
)

// extractRepository implements the ExtractRepository interface
type extractRepository struct {
	db *sqlx.DB
}

// NewExtractRepository creates a new extract repository
func NewExtractRepository(db *sqlx.DB) ports.ExtractRepository {
	return &extractRepository{db: db}
}

// Migrate creates the extract registry schema when it does not exist.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	schema := `CREATE TABLE IF NOT EXISTS extracts (
		id            UUID PRIMARY KEY,
		page          TEXT NOT NULL,
		path          TEXT NOT NULL,
		file_hash     TEXT NOT NULL DEFAULT '',
		row_count     INTEGER NOT NULL DEFAULT 0,
		age_key_count INTEGER NOT NULL DEFAULT 0,
		status        TEXT NOT NULL,
		error_message TEXT NOT NULL DEFAULT '',
		loaded_at     TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_extracts_page ON extracts (page, loaded_at DESC);`

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate extracts schema: %w", err)
	}
	return nil
}

// Create inserts a new load record into the registry
func (r *extractRepository) Create(ctx context.Context, record *registry.Record) error {
	query := `INSERT INTO extracts (
		id, page, path, file_hash, row_count, age_key_count, status, error_message, loaded_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9
	)`

	_, err := r.db.ExecContext(ctx, query,
		record.ID, record.Page, record.Path, record.FileHash, record.RowCount,
		record.AgeKeyCount, record.Status, record.ErrorMessage, record.LoadedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create extract record: %w", err)
	}
	return nil
}

// ListRecent retrieves the most recent load records across all pages
func (r *extractRepository) ListRecent(ctx context.Context, limit int) ([]*registry.Record, error) {
	query := `SELECT id, page, path, file_hash, row_count, age_key_count, status, error_message, loaded_at
	FROM extracts
	ORDER BY loaded_at DESC
	LIMIT $1`

	var records []*registry.Record
	if err := r.db.SelectContext(ctx, &records, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list extract records: %w", err)
	}
	return records, nil
}

// ListByPage retrieves the most recent load records for one page
func (r *extractRepository) ListByPage(ctx context.Context, page string, limit int) ([]*registry.Record, error) {
	query := `SELECT id, page, path, file_hash, row_count, age_key_count, status, error_message, loaded_at
	FROM extracts
	WHERE page = $1
	ORDER BY loaded_at DESC
	LIMIT $2`

	var records []*registry.Record
	if err := r.db.SelectContext(ctx, &records, query, page, limit); err != nil {
		return nil, fmt.Errorf("failed to list extract records for page %s: %w", page, err)
	}
	return records, nil
}
