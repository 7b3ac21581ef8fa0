package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/a2sh3r/investcore/internal/logger"
	"github.com/a2sh3r/investcore/internal/models"
	"go.uber.org/zap"
)

type UserRepository interface {
	GetActiveInvestors(ctx context.Context) ([]models.User, error)
	GetActiveUsers(ctx context.Context) ([]models.User, error)
	GetReferredActiveUsers(ctx context.Context) ([]models.User, error)
	GetUplines(ctx context.Context, userID int64, maxLevels int) ([]models.User, error)
	UpdateRank(ctx context.Context, userID int64, rankName string) error
	ResetLoginStreaks(ctx context.Context, lastLoginBefore time.Time) (int64, error)
}

type userRepo struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepo{db: db}
}

const userColumns = `id, login, referrer_id, rank_name, trade_balance, active_team, login_streak, last_login_at, is_active`

// GetActiveInvestors returns active users with a positive trade balance,
// the population eligible for daily profit and level commission.
func (r *userRepo) GetActiveInvestors(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
			  WHERE is_active AND trade_balance > 0
			  ORDER BY id`
	return r.queryUsers(ctx, query)
}

func (r *userRepo) GetActiveUsers(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE is_active ORDER BY id`
	return r.queryUsers(ctx, query)
}

// GetReferredActiveUsers returns active users that were brought in by a
// referrer; each is a potential referral-bonus source.
func (r *userRepo) GetReferredActiveUsers(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
			  WHERE is_active AND referrer_id IS NOT NULL
			  ORDER BY id`
	return r.queryUsers(ctx, query)
}

// GetUplines walks the referrer chain up to maxLevels, nearest first.
func (r *userRepo) GetUplines(ctx context.Context, userID int64, maxLevels int) ([]models.User, error) {
	query := `WITH RECURSIVE upline AS (
				SELECT u.*, 1 AS level FROM users u
				WHERE u.id = (SELECT referrer_id FROM users WHERE id = $1)
				UNION ALL
				SELECT u.*, upline.level + 1 FROM users u
				JOIN upline ON u.id = upline.referrer_id
				WHERE upline.level < $2
			  )
			  SELECT ` + userColumns + ` FROM upline ORDER BY level`
	return r.queryUsers(ctx, query, userID, maxLevels)
}

func (r *userRepo) UpdateRank(ctx context.Context, userID int64, rankName string) error {
	query := `UPDATE users SET rank_name = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, rankName, userID)
	return err
}

// ResetLoginStreaks zeroes the streak of users who have not logged in since
// the cutoff and reports how many rows changed.
func (r *userRepo) ResetLoginStreaks(ctx context.Context, lastLoginBefore time.Time) (int64, error) {
	query := `UPDATE users SET login_streak = 0
			  WHERE login_streak > 0 AND (last_login_at IS NULL OR last_login_at < $1)`
	res, err := r.db.ExecContext(ctx, query, lastLoginBefore)
	if err != nil {
		logger.Log.Error("failed to reset login streaks", zap.Error(err))
		return 0, err
	}
	return res.RowsAffected()
}

func (r *userRepo) queryUsers(ctx context.Context, query string, args ...any) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query users", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Login, &u.ReferrerID, &u.RankName, &u.TradeBalance,
			&u.ActiveTeam, &u.LoginStreak, &u.LastLoginAt, &u.IsActive); err != nil {
			logger.Log.Error("failed to scan user", zap.Error(err))
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
