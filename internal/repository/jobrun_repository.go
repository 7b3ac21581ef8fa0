package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/a2sh3r/investcore/internal/apperrors"
	"github.com/a2sh3r/investcore/internal/logger"
	"github.com/a2sh3r/investcore/internal/models"
	"go.uber.org/zap"
)

type JobRunRepository interface {
	Create(ctx context.Context, run *models.JobRun) error
	Finish(ctx context.Context, run *models.JobRun) error
	GetRunningOlderThan(ctx context.Context, cutoff time.Time) ([]models.JobRun, error)
	GetByID(ctx context.Context, id string) (*models.JobRun, error)
}

type jobRunRepo struct {
	db *sql.DB
}

func NewJobRunRepository(db *sql.DB) JobRunRepository {
	return &jobRunRepo{db: db}
}

// Create inserts a new running record. The partial unique index on job_name
// WHERE status = 'running' makes the single-flight check atomic: a second
// concurrent start loses the insert race and gets ErrAlreadyRunning.
func (r *jobRunRepo) Create(ctx context.Context, run *models.JobRun) error {
	query := `INSERT INTO job_runs (id, job_name, status, triggered_by, started_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID, run.JobName, run.Status, run.TriggeredBy, run.StartedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrAlreadyRunning
		}
		logger.Log.Error("failed to create job run", zap.Error(err))
		return err
	}
	return nil
}

func (r *jobRunRepo) Finish(ctx context.Context, run *models.JobRun) error {
	details, err := json.Marshal(run.Errors)
	if err != nil {
		return err
	}

	query := `UPDATE job_runs
			  SET status = $1, finished_at = $2, duration_ms = $3,
			      processed_count = $4, total_amount = $5, error_count = $6, error_details = $7
			  WHERE id = $8 AND status = $9`
	res, err := r.db.ExecContext(ctx, query,
		run.Status, run.FinishedAt, run.DurationMs,
		run.ProcessedCount, run.TotalAmount, run.ErrorCount, details,
		run.ID, models.JobRunRunning)
	if err != nil {
		logger.Log.Error("failed to finish job run", zap.Error(err))
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrAlreadyProcessed
	}
	return nil
}

func (r *jobRunRepo) GetRunningOlderThan(ctx context.Context, cutoff time.Time) ([]models.JobRun, error) {
	query := `SELECT id, job_name, status, triggered_by, started_at, finished_at,
			  duration_ms, processed_count, total_amount, error_count, error_details
			  FROM job_runs
			  WHERE status = $1 AND started_at < $2
			  ORDER BY started_at`

	rows, err := r.db.QueryContext(ctx, query, models.JobRunRunning, cutoff)
	if err != nil {
		logger.Log.Error("failed to query running job runs", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var runs []models.JobRun
	for rows.Next() {
		run, err := scanJobRun(rows)
		if err != nil {
			logger.Log.Error("failed to scan job run", zap.Error(err))
			return nil, err
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

func (r *jobRunRepo) GetByID(ctx context.Context, id string) (*models.JobRun, error) {
	query := `SELECT id, job_name, status, triggered_by, started_at, finished_at,
			  duration_ms, processed_count, total_amount, error_count, error_details
			  FROM job_runs WHERE id = $1`
	return scanJobRun(r.db.QueryRowContext(ctx, query, id))
}

func scanJobRun(row rowScanner) (*models.JobRun, error) {
	var (
		run     models.JobRun
		details []byte
	)
	err := row.Scan(&run.ID, &run.JobName, &run.Status, &run.TriggeredBy,
		&run.StartedAt, &run.FinishedAt, &run.DurationMs,
		&run.ProcessedCount, &run.TotalAmount, &run.ErrorCount, &details)
	if err != nil {
		return nil, err
	}
	if len(details) > 0 {
		if err := json.Unmarshal(details, &run.Errors); err != nil {
			return nil, err
		}
	}
	return &run, nil
}
