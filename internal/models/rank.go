package models

import "github.com/shopspring/decimal"

// Rank is reference data: an ordered tier with its qualification thresholds
// and reward parameters. Position 0 is the floor rank.
type Rank struct {
	ID              int64           `json:"-" db:"id"`
	Name            string          `json:"name" db:"name"`
	MinTradeBalance decimal.Decimal `json:"min_trade_balance" db:"min_trade_balance"`
	MinActiveTeam   int             `json:"min_active_team" db:"min_active_team"`
	DailyROIPercent decimal.Decimal `json:"daily_roi_percent" db:"daily_roi_percent"`
	TeamReward      decimal.Decimal `json:"team_reward" db:"team_reward"`
	Position        int             `json:"position" db:"position"`
}
