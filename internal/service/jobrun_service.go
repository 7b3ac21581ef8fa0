package service

import (
	"context"
	"time"

	"github.com/a2sh3r/investcore/internal/logger"
	"github.com/a2sh3r/investcore/internal/models"
	"github.com/a2sh3r/investcore/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// JobRunService tracks the lifecycle of every batch execution and enforces
// single-flight per job name.
type JobRunService interface {
	Start(ctx context.Context, job models.JobName, trigger models.TriggerSource) (*models.JobRun, error)
	Finish(ctx context.Context, run *models.JobRun, res models.BatchResult) error
	RecoverStaleRuns(ctx context.Context, olderThan time.Duration) (int, error)
}

type jobRunService struct {
	repo repository.JobRunRepository
}

func NewJobRunService(repo repository.JobRunRepository) JobRunService {
	return &jobRunService{repo: repo}
}

// Start opens a run record. A still-running record for the same job makes
// the insert fail with ErrAlreadyRunning and nothing is created; the second
// trigger is rejected, not queued.
func (s *jobRunService) Start(ctx context.Context, job models.JobName, trigger models.TriggerSource) (*models.JobRun, error) {
	run := &models.JobRun{
		ID:          uuid.NewString(),
		JobName:     job,
		Status:      models.JobRunRunning,
		TriggeredBy: trigger,
		StartedAt:   time.Now().UTC(),
		TotalAmount: decimal.Zero,
	}
	if err := s.repo.Create(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

// Finish closes the run with a terminal status derived purely from counts:
// no errors means completed, everything errored means failed, a mix is
// partial_success.
func (s *jobRunService) Finish(ctx context.Context, run *models.JobRun, res models.BatchResult) error {
	now := time.Now().UTC()
	run.FinishedAt = &now
	run.DurationMs = now.Sub(run.StartedAt).Milliseconds()
	run.ProcessedCount = res.Processed
	run.TotalAmount = res.TotalAmount
	run.ErrorCount = len(res.Errors)
	run.Errors = res.Errors
	run.Status = DeriveRunStatus(res.Processed, len(res.Errors))

	if err := s.repo.Finish(ctx, run); err != nil {
		return err
	}

	logger.Log.Info("job run finished",
		zap.String("job", string(run.JobName)),
		zap.String("status", string(run.Status)),
		zap.Int("processed", run.ProcessedCount),
		zap.Int("skipped", res.Skipped),
		zap.Int("errors", run.ErrorCount),
		zap.String("total", run.TotalAmount.String()))
	return nil
}

// RecoverStaleRuns force-closes running records older than the threshold as
// failed with a synthetic error. The batch itself is not resumed here: the
// next trigger restarts it and per-pair/per-period dedup makes the
// recomputation idempotent.
func (s *jobRunService) RecoverStaleRuns(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-olderThan)
	stale, err := s.repo.GetRunningOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	closed := 0
	for _, run := range stale {
		run := run
		now := time.Now().UTC()
		run.Status = models.JobRunFailed
		run.FinishedAt = &now
		run.DurationMs = now.Sub(run.StartedAt).Milliseconds()
		run.ErrorCount = len(run.Errors) + 1
		run.Errors = append(run.Errors, models.JobRunError{
			Message: "run did not finish within " + olderThan.String() + ", closed by recovery",
		})
		if err := s.repo.Finish(ctx, &run); err != nil {
			logger.Log.Error("failed to close stale run",
				zap.String("job", string(run.JobName)), zap.String("id", run.ID), zap.Error(err))
			continue
		}
		closed++
		logger.Log.Warn("closed stale job run",
			zap.String("job", string(run.JobName)), zap.String("id", run.ID),
			zap.Time("started_at", run.StartedAt))
	}
	return closed, nil
}

// DeriveRunStatus maps processed/error counts to the terminal status.
func DeriveRunStatus(processed, errored int) models.JobRunStatus {
	switch {
	case errored == 0:
		return models.JobRunCompleted
	case errored >= processed:
		return models.JobRunFailed
	default:
		return models.JobRunPartialSuccess
	}
}
