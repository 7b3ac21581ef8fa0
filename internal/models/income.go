package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type IncomeType string

const (
	IncomeReferralBonus   IncomeType = "referral_bonus"
	IncomeLevelROI        IncomeType = "level_roi"
	IncomeLevelCommission IncomeType = "level_commission"
	IncomeTeamReward      IncomeType = "team_reward"
)

// Recurring reports whether the type is paid at most once per (user, period).
// Non-recurring types are unique per (user, source) for all time.
func (t IncomeType) Recurring() bool {
	return t != IncomeReferralBonus
}

type IncomeEntry struct {
	ID           int64           `json:"-" db:"id"`
	UserID       int64           `json:"-" db:"user_id"`
	SourceUserID *int64          `json:"source_user_id,omitempty" db:"source_user_id"`
	Type         IncomeType      `json:"type" db:"income_type"`
	Amount       decimal.Decimal `json:"amount" db:"amount"`
	Period       time.Time       `json:"period" db:"period"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}

// Period normalizes a timestamp to the calendar-day uniqueness scope.
func Period(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
