package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int64           `json:"-" db:"id"`
	Login        string          `json:"login" db:"login"`
	Password     string          `json:"password,omitempty" db:"password_hash"`
	ReferrerID   *int64          `json:"-" db:"referrer_id"`
	RankName     string          `json:"rank" db:"rank_name"`
	TradeBalance decimal.Decimal `json:"trade_balance" db:"trade_balance"`
	ActiveTeam   int             `json:"active_team" db:"active_team"`
	LoginStreak  int             `json:"login_streak" db:"login_streak"`
	LastLoginAt  *time.Time      `json:"-" db:"last_login_at"`
	IsActive     bool            `json:"-" db:"is_active"`
	CreatedAt    time.Time       `json:"-" db:"created_at"`
}
