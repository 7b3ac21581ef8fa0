package repository

import (
	"context"
	"database/sql"
)

// SequenceRepository issues monotonic per-entity counters for human-readable
// reference numbers.
type SequenceRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}

type sequenceRepo struct {
	db *sql.DB
}

func NewSequenceRepository(db *sql.DB) SequenceRepository {
	return &sequenceRepo{db: db}
}

func (r *sequenceRepo) Next(ctx context.Context, name string) (int64, error) {
	query := `INSERT INTO sequences (name, value) VALUES ($1, 1)
			  ON CONFLICT (name) DO UPDATE SET value = sequences.value + 1
			  RETURNING value`
	var value int64
	err := r.db.QueryRowContext(ctx, query, name).Scan(&value)
	return value, err
}
