package repository

import (
	"context"
	"database/sql"

	"github.com/a2sh3r/investcore/internal/logger"
	"github.com/a2sh3r/investcore/internal/models"
	"go.uber.org/zap"
)

type RankRepository interface {
	GetAll(ctx context.Context) ([]models.Rank, error)
}

type rankRepo struct {
	db *sql.DB
}

func NewRankRepository(db *sql.DB) RankRepository {
	return &rankRepo{db: db}
}

// GetAll returns ranks ordered from the floor rank upwards.
func (r *rankRepo) GetAll(ctx context.Context) ([]models.Rank, error) {
	query := `SELECT id, name, min_trade_balance, min_active_team, daily_roi_percent, team_reward, position
			  FROM ranks ORDER BY position`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Log.Error("failed to query ranks", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var ranks []models.Rank
	for rows.Next() {
		var rank models.Rank
		if err := rows.Scan(&rank.ID, &rank.Name, &rank.MinTradeBalance, &rank.MinActiveTeam,
			&rank.DailyROIPercent, &rank.TeamReward, &rank.Position); err != nil {
			logger.Log.Error("failed to scan rank", zap.Error(err))
			return nil, err
		}
		ranks = append(ranks, rank)
	}
	return ranks, rows.Err()
}
