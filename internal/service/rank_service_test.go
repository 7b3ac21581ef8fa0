package service

import (
	"context"
	"errors"
	"testing"

	"github.com/a2sh3r/investcore/internal/mocks/repository_mocks"
	"github.com/a2sh3r/investcore/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateRank(t *testing.T) {
	ranks := testRanks()

	tests := []struct {
		name         string
		tradeBalance decimal.Decimal
		activeTeam   int
		want         string
	}{
		{name: "meets middle tier only", tradeBalance: decimal.NewFromInt(5000), activeTeam: 12, want: "PRIME"},
		{name: "meets nothing", tradeBalance: decimal.NewFromInt(500), activeTeam: 0, want: "ACTIVE"},
		{name: "balance without team stays on floor", tradeBalance: decimal.NewFromInt(20000), activeTeam: 2, want: "ACTIVE"},
		{name: "meets top tier", tradeBalance: decimal.NewFromInt(10000), activeTeam: 50, want: "ROYAL"},
		{name: "exact thresholds qualify", tradeBalance: decimal.NewFromInt(1000), activeTeam: 5, want: "PRIME"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateRank(ranks, tt.tradeBalance, tt.activeTeam)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestEvaluateRank_OrderIndependent(t *testing.T) {
	shuffled := []models.Rank{testRanks()[2], testRanks()[0], testRanks()[1]}
	got := EvaluateRank(shuffled, decimal.NewFromInt(5000), 12)
	assert.Equal(t, "PRIME", got.Name)
}

func TestRankService_RecalculateRanks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("persists only changes", func(t *testing.T) {
		mockRanks := repository_mocks.NewMockRankRepository(ctrl)
		mockUsers := repository_mocks.NewMockUserRepository(ctrl)

		mockRanks.EXPECT().GetAll(ctx).Return(testRanks(), nil).Times(1)
		mockUsers.EXPECT().GetActiveUsers(ctx).Return([]models.User{
			{ID: 1, RankName: "ACTIVE", TradeBalance: decimal.NewFromInt(5000), ActiveTeam: 12},
			{ID: 2, RankName: "PRIME", TradeBalance: decimal.NewFromInt(5000), ActiveTeam: 12},
			{ID: 3, RankName: "PRIME", TradeBalance: decimal.NewFromInt(100), ActiveTeam: 0},
		}, nil).Times(1)
		mockUsers.EXPECT().UpdateRank(ctx, int64(1), "PRIME").Return(nil).Times(1)
		mockUsers.EXPECT().UpdateRank(ctx, int64(3), "ACTIVE").Return(nil).Times(1)

		svc := NewRankService(mockRanks, mockUsers)
		res, err := svc.RecalculateRanks(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 3, res.Processed)
		assert.Equal(t, 1, res.Skipped)
		assert.Empty(t, res.Errors)
	})

	t.Run("update failure is recorded per user", func(t *testing.T) {
		mockRanks := repository_mocks.NewMockRankRepository(ctrl)
		mockUsers := repository_mocks.NewMockUserRepository(ctrl)

		mockRanks.EXPECT().GetAll(ctx).Return(testRanks(), nil).Times(1)
		mockUsers.EXPECT().GetActiveUsers(ctx).Return([]models.User{
			{ID: 1, RankName: "ACTIVE", TradeBalance: decimal.NewFromInt(5000), ActiveTeam: 12},
		}, nil).Times(1)
		mockUsers.EXPECT().UpdateRank(ctx, int64(1), "PRIME").Return(errors.New("db error")).Times(1)

		svc := NewRankService(mockRanks, mockUsers)
		res, err := svc.RecalculateRanks(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Processed)
		assert.Len(t, res.Errors, 1)
		assert.Equal(t, int64(1), res.Errors[0].UserID)
	})

	t.Run("no ranks configured", func(t *testing.T) {
		mockRanks := repository_mocks.NewMockRankRepository(ctrl)
		mockUsers := repository_mocks.NewMockUserRepository(ctrl)

		mockRanks.EXPECT().GetAll(ctx).Return(nil, nil).Times(1)

		svc := NewRankService(mockRanks, mockUsers)
		res, err := svc.RecalculateRanks(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 0, res.Processed)
	})
}
