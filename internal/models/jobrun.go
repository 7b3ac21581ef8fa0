package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type JobName string

const (
	JobReferralBonus    JobName = "referral_bonus"
	JobDailyProfit      JobName = "daily_profit"
	JobLevelCommission  JobName = "level_commission"
	JobTeamReward       JobName = "team_reward"
	JobRankUpdate       JobName = "rank_update"
	JobLoginStreakReset JobName = "login_streak_reset"
)

func (j JobName) Valid() bool {
	switch j {
	case JobReferralBonus, JobDailyProfit, JobLevelCommission,
		JobTeamReward, JobRankUpdate, JobLoginStreakReset:
		return true
	}
	return false
}

type TriggerSource string

const (
	TriggerAutomatic TriggerSource = "automatic"
	TriggerManual    TriggerSource = "manual"
	TriggerBackup    TriggerSource = "backup"
	TriggerRecovery  TriggerSource = "recovery"
)

type JobRunStatus string

const (
	JobRunRunning        JobRunStatus = "running"
	JobRunCompleted      JobRunStatus = "completed"
	JobRunFailed         JobRunStatus = "failed"
	JobRunPartialSuccess JobRunStatus = "partial_success"
)

func (s JobRunStatus) Terminal() bool {
	return s != JobRunRunning
}

// JobRunError is one captured per-item failure inside a batch.
type JobRunError struct {
	UserID  int64  `json:"user_id,omitempty"`
	Message string `json:"message"`
}

// JobRun records the lifecycle of a single batch execution. Start fields are
// immutable after creation; terminal fields are written once by Finish.
type JobRun struct {
	ID             string          `json:"id" db:"id"`
	JobName        JobName         `json:"job_name" db:"job_name"`
	Status         JobRunStatus    `json:"status" db:"status"`
	TriggeredBy    TriggerSource   `json:"triggered_by" db:"triggered_by"`
	StartedAt      time.Time       `json:"started_at" db:"started_at"`
	FinishedAt     *time.Time      `json:"finished_at,omitempty" db:"finished_at"`
	DurationMs     int64           `json:"duration_ms" db:"duration_ms"`
	ProcessedCount int             `json:"processed_count" db:"processed_count"`
	TotalAmount    decimal.Decimal `json:"total_amount" db:"total_amount"`
	ErrorCount     int             `json:"error_count" db:"error_count"`
	Errors         []JobRunError   `json:"errors" db:"error_details"`
}

// BatchResult aggregates what a batch did; the tracker derives the terminal
// status from its counts alone.
type BatchResult struct {
	Processed   int
	Skipped     int
	TotalAmount decimal.Decimal
	Errors      []JobRunError
}

func (r *BatchResult) AddError(userID int64, err error) {
	r.Errors = append(r.Errors, JobRunError{UserID: userID, Message: err.Error()})
}
