package scheduler

import (
	"context"
	"errors"

	"github.com/a2sh3r/investcore/internal/apperrors"
	"github.com/a2sh3r/investcore/internal/logger"
	"github.com/a2sh3r/investcore/internal/models"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// distributionOrder is the nightly sequence: bonuses and profit first,
// commission and rewards on top of them, then maintenance.
var distributionOrder = []models.JobName{
	models.JobReferralBonus,
	models.JobDailyProfit,
	models.JobLevelCommission,
	models.JobTeamReward,
	models.JobRankUpdate,
	models.JobLoginStreakReset,
}

// Scheduler triggers the distribution jobs on a cron spec with
// triggeredBy=automatic. Overlap protection lives in the tracker, not here:
// a trigger that finds a job still running is rejected and logged.
type Scheduler struct {
	cron   *cron.Cron
	runner *Runner
}

func New(runner *Runner) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		runner: runner,
	}
}

func (s *Scheduler) Start(ctx context.Context, spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.runAll(ctx)
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	logger.Log.Info("scheduler started", zap.String("spec", spec))
	return nil
}

func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runAll(ctx context.Context) {
	for _, job := range distributionOrder {
		if err := s.runner.Run(ctx, job, models.TriggerAutomatic); err != nil {
			if errors.Is(err, apperrors.ErrAlreadyRunning) {
				logger.Log.Warn("skipping job, previous run still in progress",
					zap.String("job", string(job)))
				continue
			}
			logger.Log.Error("job run ended with error",
				zap.String("job", string(job)), zap.Error(err))
		}
	}
}
