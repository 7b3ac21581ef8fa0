package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/a2sh3r/investcore/internal/apperrors"
	"github.com/a2sh3r/investcore/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobRunRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewJobRunRepository(db)
	ctx := context.Background()
	started := time.Now().UTC()

	run := &models.JobRun{
		ID:          "run-1",
		JobName:     models.JobDailyProfit,
		Status:      models.JobRunRunning,
		TriggeredBy: models.TriggerAutomatic,
		StartedAt:   started,
		TotalAmount: decimal.Zero,
	}

	t.Run("first start wins", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO job_runs").
			WithArgs("run-1", "daily_profit", "running", "automatic", started).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, run)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent start loses the insert race", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO job_runs").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_job_runs_running"})

		err := repo.Create(ctx, run)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyRunning)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestJobRunRepo_Finish(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewJobRunRepository(db)
	ctx := context.Background()

	finished := time.Now().UTC()
	run := &models.JobRun{
		ID:             "run-1",
		JobName:        models.JobDailyProfit,
		Status:         models.JobRunPartialSuccess,
		FinishedAt:     &finished,
		DurationMs:     1500,
		ProcessedCount: 10,
		TotalAmount:    decimal.NewFromInt(40),
		ErrorCount:     3,
		Errors: []models.JobRunError{
			{UserID: 3, Message: "unknown rank \"GHOST\""},
		},
	}

	t.Run("running record is closed once", func(t *testing.T) {
		mock.ExpectExec("UPDATE job_runs").
			WithArgs("partial_success", &finished, int64(1500), 10, run.TotalAmount, 3,
				[]byte(`[{"user_id":3,"message":"unknown rank \"GHOST\""}]`),
				"run-1", "running").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Finish(ctx, run)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second finish hits no running row", func(t *testing.T) {
		mock.ExpectExec("UPDATE job_runs").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Finish(ctx, run)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyProcessed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestJobRunRepo_GetRunningOlderThan(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewJobRunRepository(db)
	ctx := context.Background()

	cutoff := time.Now().UTC().Add(-2 * time.Hour)
	started := cutoff.Add(-time.Hour)

	rows := sqlmock.NewRows([]string{"id", "job_name", "status", "triggered_by", "started_at",
		"finished_at", "duration_ms", "processed_count", "total_amount", "error_count", "error_details"}).
		AddRow("run-1", "daily_profit", "running", "automatic", started,
			nil, int64(0), 0, "0", 0, []byte(`[]`))

	mock.ExpectQuery("SELECT id, job_name, status").
		WithArgs("running", cutoff).
		WillReturnRows(rows)

	runs, err := repo.GetRunningOlderThan(ctx, cutoff)
	assert.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-1", runs[0].ID)
	assert.Equal(t, models.JobRunRunning, runs[0].Status)
	assert.Nil(t, runs[0].FinishedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRunRepo_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewJobRunRepository(db)
	ctx := context.Background()

	started := time.Now().UTC().Add(-time.Minute)
	finished := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "job_name", "status", "triggered_by", "started_at",
		"finished_at", "duration_ms", "processed_count", "total_amount", "error_count", "error_details"}).
		AddRow("run-9", "referral_bonus", "partial_success", "manual", started,
			finished, int64(60000), 10, "70", 3, []byte(`[{"user_id":1,"message":"boom"}]`))

	mock.ExpectQuery("SELECT id, job_name, status").
		WithArgs("run-9").
		WillReturnRows(rows)

	run, err := repo.GetByID(ctx, "run-9")
	assert.NoError(t, err)
	assert.Equal(t, models.JobRunPartialSuccess, run.Status)
	assert.Equal(t, 10, run.ProcessedCount)
	require.Len(t, run.Errors, 1)
	assert.Equal(t, int64(1), run.Errors[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
