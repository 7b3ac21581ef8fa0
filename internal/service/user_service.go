package service

import (
	"context"
	"time"

	"github.com/a2sh3r/investcore/internal/models"
	"github.com/a2sh3r/investcore/internal/repository"
	"github.com/shopspring/decimal"
)

type UserService interface {
	ResetLoginStreaks(ctx context.Context, period time.Time) (models.BatchResult, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// ResetLoginStreaks zeroes the streak of every user who did not log in
// during the day before the period. Re-running is harmless: already-zeroed
// streaks are not matched again.
func (s *userService) ResetLoginStreaks(ctx context.Context, period time.Time) (models.BatchResult, error) {
	res := models.BatchResult{TotalAmount: decimal.Zero}

	cutoff := models.Period(period).AddDate(0, 0, -1)
	affected, err := s.repo.ResetLoginStreaks(ctx, cutoff)
	if err != nil {
		return res, err
	}
	res.Processed = int(affected)
	return res, nil
}
