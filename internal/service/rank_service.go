package service

import (
	"context"

	"github.com/a2sh3r/investcore/internal/models"
	"github.com/a2sh3r/investcore/internal/repository"
	"github.com/shopspring/decimal"
)

// EvaluateRank scans ranks from the highest tier down and returns the first
// whose trade-balance and team thresholds are both met. The floor rank
// (lowest position) is returned when nothing higher matches. Pure function:
// the caller persists the result if it changed.
func EvaluateRank(ranks []models.Rank, tradeBalance decimal.Decimal, activeTeam int) models.Rank {
	var floor models.Rank
	for i, rank := range ranks {
		if i == 0 || rank.Position < floor.Position {
			floor = rank
		}
	}

	best := floor
	for _, rank := range ranks {
		if rank.Position <= best.Position {
			continue
		}
		if tradeBalance.GreaterThanOrEqual(rank.MinTradeBalance) && activeTeam >= rank.MinActiveTeam {
			best = rank
		}
	}
	return best
}

type RankService interface {
	RecalculateRanks(ctx context.Context) (models.BatchResult, error)
}

type rankService struct {
	ranks repository.RankRepository
	users repository.UserRepository
}

func NewRankService(ranks repository.RankRepository, users repository.UserRepository) RankService {
	return &rankService{ranks: ranks, users: users}
}

// RecalculateRanks re-evaluates every active user and persists only actual
// changes. Skipped counts users whose rank was already correct.
func (s *rankService) RecalculateRanks(ctx context.Context) (models.BatchResult, error) {
	res := models.BatchResult{TotalAmount: decimal.Zero}

	ranks, err := s.ranks.GetAll(ctx)
	if err != nil {
		return res, err
	}
	if len(ranks) == 0 {
		return res, nil
	}

	users, err := s.users.GetActiveUsers(ctx)
	if err != nil {
		return res, err
	}

	for _, u := range users {
		res.Processed++
		rank := EvaluateRank(ranks, u.TradeBalance, u.ActiveTeam)
		if rank.Name == u.RankName {
			res.Skipped++
			continue
		}
		if err := s.users.UpdateRank(ctx, u.ID, rank.Name); err != nil {
			res.AddError(u.ID, err)
		}
	}
	return res, nil
}
