package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/a2sh3r/investcore/internal/apperrors"
	"github.com/a2sh3r/investcore/internal/mocks/repository_mocks"
	"github.com/a2sh3r/investcore/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testRanks() []models.Rank {
	return []models.Rank{
		{Name: "ACTIVE", MinTradeBalance: decimal.Zero, MinActiveTeam: 0,
			DailyROIPercent: decimal.RequireFromString("0.3"), TeamReward: decimal.Zero, Position: 0},
		{Name: "PRIME", MinTradeBalance: decimal.NewFromInt(1000), MinActiveTeam: 5,
			DailyROIPercent: decimal.RequireFromString("0.4"), TeamReward: decimal.NewFromInt(50), Position: 1},
		{Name: "ROYAL", MinTradeBalance: decimal.NewFromInt(10000), MinActiveTeam: 50,
			DailyROIPercent: decimal.RequireFromString("0.5"), TeamReward: decimal.NewFromInt(500), Position: 2},
	}
}

func TestDistributionService_RunReferralBonus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	period := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	ref1, ref2, ref3 := int64(100), int64(100), int64(200)

	mockIncomes := repository_mocks.NewMockIncomeRepository(ctrl)
	mockUsers := repository_mocks.NewMockUserRepository(ctrl)
	mockRanks := repository_mocks.NewMockRankRepository(ctrl)
	mockSeq := repository_mocks.NewMockSequenceRepository(ctrl)

	mockUsers.EXPECT().GetReferredActiveUsers(ctx).Return([]models.User{
		{ID: 1, ReferrerID: &ref1},
		{ID: 2, ReferrerID: &ref2},
		{ID: 3, ReferrerID: &ref3},
	}, nil).Times(1)

	mockSeq.EXPECT().Next(ctx, "ledger").Return(int64(1), nil).Times(3)

	// user 1 pays out, user 2 was already paid, user 3 hits a storage error
	mockIncomes.EXPECT().Insert(ctx, gomock.AssignableToTypeOf(&models.IncomeEntry{}),
		gomock.AssignableToTypeOf(&models.LedgerEntry{})).DoAndReturn(
		func(_ context.Context, e *models.IncomeEntry, credit *models.LedgerEntry) error {
			switch *e.SourceUserID {
			case 1:
				assert.Equal(t, int64(100), e.UserID)
				assert.Equal(t, models.IncomeReferralBonus, e.Type)
				assert.True(t, e.Amount.Equal(decimal.NewFromInt(10)))
				assert.Equal(t, models.Period(period), e.Period)
				assert.Equal(t, int64(100), credit.UserID)
				assert.Equal(t, models.MovementIncome, credit.Type)
				assert.Equal(t, models.WalletAdmin, credit.FromWallet)
				assert.Equal(t, models.WalletMain, credit.ToWallet)
				assert.True(t, credit.Amount.Equal(decimal.NewFromInt(10)))
				return nil
			case 2:
				return apperrors.ErrDuplicateEntry
			default:
				return errors.New("insert failed")
			}
		}).Times(3)

	svc := NewDistributionService(mockIncomes, mockUsers, mockRanks, mockSeq)
	res, err := svc.RunReferralBonus(ctx, period)

	assert.NoError(t, err)
	assert.Equal(t, 3, res.Processed)
	assert.Equal(t, 1, res.Skipped)
	assert.Len(t, res.Errors, 1)
	assert.Equal(t, int64(200), res.Errors[0].UserID)
	assert.True(t, res.TotalAmount.Equal(decimal.NewFromInt(10)))
}

func TestDistributionService_RunDailyProfit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	period := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	mockIncomes := repository_mocks.NewMockIncomeRepository(ctrl)
	mockUsers := repository_mocks.NewMockUserRepository(ctrl)
	mockRanks := repository_mocks.NewMockRankRepository(ctrl)
	mockSeq := repository_mocks.NewMockSequenceRepository(ctrl)

	mockRanks.EXPECT().GetAll(ctx).Return(testRanks(), nil).Times(1)
	mockUsers.EXPECT().GetActiveInvestors(ctx).Return([]models.User{
		{ID: 1, RankName: "PRIME", TradeBalance: decimal.NewFromInt(1000)},
		{ID: 2, RankName: "ACTIVE", TradeBalance: decimal.NewFromInt(500)},
		{ID: 3, RankName: "GHOST", TradeBalance: decimal.NewFromInt(100)},
	}, nil).Times(1)

	mockIncomes.EXPECT().ExistsForPeriod(ctx, int64(1), models.IncomeLevelROI, models.Period(period)).
		Return(false, nil).Times(1)
	mockIncomes.EXPECT().ExistsForPeriod(ctx, int64(2), models.IncomeLevelROI, models.Period(period)).
		Return(true, nil).Times(1)
	mockIncomes.EXPECT().ExistsForPeriod(ctx, int64(3), models.IncomeLevelROI, models.Period(period)).
		Return(false, nil).Times(1)

	mockSeq.EXPECT().Next(ctx, "ledger").Return(int64(2), nil).Times(1)

	// 1000 * 0.4% = 4
	mockIncomes.EXPECT().Insert(ctx, gomock.AssignableToTypeOf(&models.IncomeEntry{}),
		gomock.AssignableToTypeOf(&models.LedgerEntry{})).DoAndReturn(
		func(_ context.Context, e *models.IncomeEntry, credit *models.LedgerEntry) error {
			assert.Equal(t, int64(1), e.UserID)
			assert.True(t, e.Amount.Equal(decimal.NewFromInt(4)), "amount = %s", e.Amount)
			assert.Equal(t, "TXN-000002", credit.Ref)
			assert.True(t, credit.Amount.Equal(decimal.NewFromInt(4)))
			return nil
		}).Times(1)

	svc := NewDistributionService(mockIncomes, mockUsers, mockRanks, mockSeq)
	res, err := svc.RunDailyProfit(ctx, period)

	assert.NoError(t, err)
	assert.Equal(t, 3, res.Processed)
	assert.Equal(t, 1, res.Skipped)
	assert.Len(t, res.Errors, 1)
	assert.Equal(t, int64(3), res.Errors[0].UserID)
	assert.True(t, res.TotalAmount.Equal(decimal.NewFromInt(4)))
}

func TestDistributionService_RunLevelCommission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	period := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	mockIncomes := repository_mocks.NewMockIncomeRepository(ctrl)
	mockUsers := repository_mocks.NewMockUserRepository(ctrl)
	mockRanks := repository_mocks.NewMockRankRepository(ctrl)
	mockSeq := repository_mocks.NewMockSequenceRepository(ctrl)

	mockRanks.EXPECT().GetAll(ctx).Return(testRanks(), nil).Times(1)
	mockUsers.EXPECT().GetActiveInvestors(ctx).Return([]models.User{
		{ID: 1, RankName: "PRIME", TradeBalance: decimal.NewFromInt(1000)},
	}, nil).Times(1)

	// profit is 4; level 1 takes 10%, level 2 is inactive and earns nothing
	mockUsers.EXPECT().GetUplines(ctx, int64(1), 3).Return([]models.User{
		{ID: 10, IsActive: true},
		{ID: 20, IsActive: false},
	}, nil).Times(1)

	mockSeq.EXPECT().Next(ctx, "ledger").Return(int64(3), nil).Times(1)

	mockIncomes.EXPECT().Insert(ctx, gomock.AssignableToTypeOf(&models.IncomeEntry{}),
		gomock.AssignableToTypeOf(&models.LedgerEntry{})).DoAndReturn(
		func(_ context.Context, e *models.IncomeEntry, credit *models.LedgerEntry) error {
			assert.Equal(t, int64(10), e.UserID)
			assert.Equal(t, models.IncomeLevelCommission, e.Type)
			assert.True(t, e.Amount.Equal(decimal.RequireFromString("0.4")), "amount = %s", e.Amount)
			assert.Equal(t, int64(10), credit.UserID)
			assert.Nil(t, credit.SourceUserID)
			return nil
		}).Times(1)

	svc := NewDistributionService(mockIncomes, mockUsers, mockRanks, mockSeq)
	res, err := svc.RunLevelCommission(ctx, period)

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Processed)
	assert.Empty(t, res.Errors)
	assert.True(t, res.TotalAmount.Equal(decimal.RequireFromString("0.4")))
}

func TestDistributionService_RunTeamReward(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	period := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	mockIncomes := repository_mocks.NewMockIncomeRepository(ctrl)
	mockUsers := repository_mocks.NewMockUserRepository(ctrl)
	mockRanks := repository_mocks.NewMockRankRepository(ctrl)
	mockSeq := repository_mocks.NewMockSequenceRepository(ctrl)

	mockRanks.EXPECT().GetAll(ctx).Return(testRanks(), nil).Times(1)
	mockUsers.EXPECT().GetActiveUsers(ctx).Return([]models.User{
		{ID: 1, RankName: "PRIME", ActiveTeam: 6},
		{ID: 2, RankName: "PRIME", ActiveTeam: 3},
		{ID: 3, RankName: "ACTIVE", ActiveTeam: 10},
	}, nil).Times(1)

	mockSeq.EXPECT().Next(ctx, "ledger").Return(int64(4), nil).Times(1)

	// only user 1 still qualifies; ACTIVE has no reward at all
	mockIncomes.EXPECT().Insert(ctx, gomock.AssignableToTypeOf(&models.IncomeEntry{}),
		gomock.AssignableToTypeOf(&models.LedgerEntry{})).DoAndReturn(
		func(_ context.Context, e *models.IncomeEntry, credit *models.LedgerEntry) error {
			assert.Equal(t, int64(1), e.UserID)
			assert.Equal(t, models.IncomeTeamReward, e.Type)
			assert.True(t, e.Amount.Equal(decimal.NewFromInt(50)))
			assert.True(t, credit.Amount.Equal(decimal.NewFromInt(50)))
			return nil
		}).Times(1)

	svc := NewDistributionService(mockIncomes, mockUsers, mockRanks, mockSeq)
	res, err := svc.RunTeamReward(ctx, period)

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Processed)
	assert.Empty(t, res.Errors)
	assert.True(t, res.TotalAmount.Equal(decimal.NewFromInt(50)))
}

func TestDistributionService_RunDailyProfit_RanksFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockIncomes := repository_mocks.NewMockIncomeRepository(ctrl)
	mockUsers := repository_mocks.NewMockUserRepository(ctrl)
	mockRanks := repository_mocks.NewMockRankRepository(ctrl)
	mockSeq := repository_mocks.NewMockSequenceRepository(ctrl)

	mockRanks.EXPECT().GetAll(ctx).Return(nil, errors.New("db down")).Times(1)

	svc := NewDistributionService(mockIncomes, mockUsers, mockRanks, mockSeq)
	_, err := svc.RunDailyProfit(ctx, time.Now())
	assert.EqualError(t, err, "db down")
}
