package scheduler

import (
	"context"
	"time"

	"github.com/a2sh3r/investcore/internal/apperrors"
	"github.com/a2sh3r/investcore/internal/logger"
	"github.com/a2sh3r/investcore/internal/models"
	"github.com/a2sh3r/investcore/internal/service"
	"go.uber.org/zap"
)

// Runner executes one named job under the execution tracker: open the run
// record, run the batch, close the record with the aggregated counts. A
// fatal batch error is recorded on the run and closes it as failed; it is
// never silently dropped.
type Runner struct {
	tracker      service.JobRunService
	distribution service.DistributionService
	ranks        service.RankService
	users        service.UserService
}

func NewRunner(tracker service.JobRunService, distribution service.DistributionService,
	ranks service.RankService, users service.UserService) *Runner {
	return &Runner{tracker: tracker, distribution: distribution, ranks: ranks, users: users}
}

func (r *Runner) Run(ctx context.Context, job models.JobName, trigger models.TriggerSource) error {
	if !job.Valid() {
		return apperrors.ErrUnknownJob
	}

	run, err := r.tracker.Start(ctx, job, trigger)
	if err != nil {
		return err
	}

	logger.Log.Info("job run started",
		zap.String("job", string(job)), zap.String("triggered_by", string(trigger)))

	res, batchErr := r.dispatch(ctx, job)
	if batchErr != nil {
		res.AddError(0, batchErr)
	}

	if err := r.tracker.Finish(ctx, run, res); err != nil {
		logger.Log.Error("failed to close job run",
			zap.String("job", string(job)), zap.Error(err))
		return err
	}
	return batchErr
}

func (r *Runner) dispatch(ctx context.Context, job models.JobName) (models.BatchResult, error) {
	period := time.Now().UTC()
	switch job {
	case models.JobReferralBonus:
		return r.distribution.RunReferralBonus(ctx, period)
	case models.JobDailyProfit:
		return r.distribution.RunDailyProfit(ctx, period)
	case models.JobLevelCommission:
		return r.distribution.RunLevelCommission(ctx, period)
	case models.JobTeamReward:
		return r.distribution.RunTeamReward(ctx, period)
	case models.JobRankUpdate:
		return r.ranks.RecalculateRanks(ctx)
	case models.JobLoginStreakReset:
		return r.users.ResetLoginStreaks(ctx, period)
	}
	return models.BatchResult{}, apperrors.ErrUnknownJob
}

// Recover closes stale running records left behind by a crashed process.
func (r *Runner) Recover(ctx context.Context, olderThan time.Duration) (int, error) {
	return r.tracker.RecoverStaleRuns(ctx, olderThan)
}
