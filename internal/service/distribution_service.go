package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/a2sh3r/investcore/internal/apperrors"
	"github.com/a2sh3r/investcore/internal/logger"
	"github.com/a2sh3r/investcore/internal/models"
	"github.com/a2sh3r/investcore/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// commissionLevels holds the upline commission percentages, level 1 first.
var commissionLevels = []decimal.Decimal{
	decimal.NewFromInt(10),
	decimal.NewFromInt(5),
	decimal.NewFromInt(2),
}

var referralBonusAmount = decimal.NewFromInt(10)

// DistributionService computes and posts recurring income entries. Every
// batch is re-runnable: uniqueness of the underlying income entries is
// enforced at the storage layer, duplicates are counted as skips, and a
// single bad user never aborts the run.
type DistributionService interface {
	RunReferralBonus(ctx context.Context, period time.Time) (models.BatchResult, error)
	RunDailyProfit(ctx context.Context, period time.Time) (models.BatchResult, error)
	RunLevelCommission(ctx context.Context, period time.Time) (models.BatchResult, error)
	RunTeamReward(ctx context.Context, period time.Time) (models.BatchResult, error)
}

type distributionService struct {
	incomes repository.IncomeRepository
	users   repository.UserRepository
	ranks   repository.RankRepository
	seq     repository.SequenceRepository
}

func NewDistributionService(incomes repository.IncomeRepository, users repository.UserRepository,
	ranks repository.RankRepository, seq repository.SequenceRepository) DistributionService {
	return &distributionService{incomes: incomes, users: users, ranks: ranks, seq: seq}
}

// RunReferralBonus pays each referrer once per referred user, ever. The
// (beneficiary, source) unique index rejects repeats, so a half-completed
// batch simply re-attempts and skips what was already paid.
func (s *distributionService) RunReferralBonus(ctx context.Context, period time.Time) (models.BatchResult, error) {
	res := models.BatchResult{TotalAmount: decimal.Zero}

	referred, err := s.users.GetReferredActiveUsers(ctx)
	if err != nil {
		return res, err
	}

	for _, u := range referred {
		res.Processed++
		sourceID := u.ID
		entry := &models.IncomeEntry{
			UserID:       *u.ReferrerID,
			SourceUserID: &sourceID,
			Type:         models.IncomeReferralBonus,
			Amount:       referralBonusAmount,
			Period:       models.Period(period),
		}
		if err := s.post(ctx, entry, fmt.Sprintf("referral bonus for user %d", u.ID)); err != nil {
			if errors.Is(err, apperrors.ErrDuplicateEntry) {
				res.Skipped++
				continue
			}
			res.AddError(*u.ReferrerID, err)
			continue
		}
		res.TotalAmount = res.TotalAmount.Add(entry.Amount)
	}
	return res, nil
}

// RunDailyProfit posts each investor's daily ROI once per period.
func (s *distributionService) RunDailyProfit(ctx context.Context, period time.Time) (models.BatchResult, error) {
	res := models.BatchResult{TotalAmount: decimal.Zero}

	ranks, err := s.ranks.GetAll(ctx)
	if err != nil {
		return res, err
	}
	roiByRank := make(map[string]decimal.Decimal, len(ranks))
	for _, rank := range ranks {
		roiByRank[rank.Name] = rank.DailyROIPercent
	}

	investors, err := s.users.GetActiveInvestors(ctx)
	if err != nil {
		return res, err
	}

	for _, u := range investors {
		res.Processed++

		exists, err := s.incomes.ExistsForPeriod(ctx, u.ID, models.IncomeLevelROI, models.Period(period))
		if err != nil {
			res.AddError(u.ID, err)
			continue
		}
		if exists {
			res.Skipped++
			continue
		}

		roi, ok := roiByRank[u.RankName]
		if !ok {
			res.AddError(u.ID, fmt.Errorf("unknown rank %q", u.RankName))
			continue
		}

		amount := u.TradeBalance.Mul(roi).Div(decimal.NewFromInt(100))
		entry := &models.IncomeEntry{
			UserID: u.ID,
			Type:   models.IncomeLevelROI,
			Amount: amount,
			Period: models.Period(period),
		}
		if err := s.post(ctx, entry, "daily profit"); err != nil {
			if errors.Is(err, apperrors.ErrDuplicateEntry) {
				res.Skipped++
				continue
			}
			res.AddError(u.ID, err)
			continue
		}
		res.TotalAmount = res.TotalAmount.Add(amount)
	}
	return res, nil
}

// RunLevelCommission accumulates each upline's share of their downlines'
// daily profit and posts one entry per beneficiary per period.
func (s *distributionService) RunLevelCommission(ctx context.Context, period time.Time) (models.BatchResult, error) {
	res := models.BatchResult{TotalAmount: decimal.Zero}

	ranks, err := s.ranks.GetAll(ctx)
	if err != nil {
		return res, err
	}
	roiByRank := make(map[string]decimal.Decimal, len(ranks))
	for _, rank := range ranks {
		roiByRank[rank.Name] = rank.DailyROIPercent
	}

	investors, err := s.users.GetActiveInvestors(ctx)
	if err != nil {
		return res, err
	}

	earned := make(map[int64]decimal.Decimal)
	for _, u := range investors {
		roi, ok := roiByRank[u.RankName]
		if !ok {
			res.AddError(u.ID, fmt.Errorf("unknown rank %q", u.RankName))
			continue
		}
		profit := u.TradeBalance.Mul(roi).Div(decimal.NewFromInt(100))

		uplines, err := s.users.GetUplines(ctx, u.ID, len(commissionLevels))
		if err != nil {
			res.AddError(u.ID, err)
			continue
		}
		for level, upline := range uplines {
			if !upline.IsActive {
				continue
			}
			share := profit.Mul(commissionLevels[level]).Div(decimal.NewFromInt(100))
			earned[upline.ID] = earned[upline.ID].Add(share)
		}
	}

	for beneficiary, amount := range earned {
		res.Processed++
		entry := &models.IncomeEntry{
			UserID: beneficiary,
			Type:   models.IncomeLevelCommission,
			Amount: amount,
			Period: models.Period(period),
		}
		if err := s.post(ctx, entry, "level commission"); err != nil {
			if errors.Is(err, apperrors.ErrDuplicateEntry) {
				res.Skipped++
				continue
			}
			res.AddError(beneficiary, err)
			continue
		}
		res.TotalAmount = res.TotalAmount.Add(amount)
	}
	return res, nil
}

// RunTeamReward pays the rank's team reward to users whose active team still
// qualifies, once per period.
func (s *distributionService) RunTeamReward(ctx context.Context, period time.Time) (models.BatchResult, error) {
	res := models.BatchResult{TotalAmount: decimal.Zero}

	ranks, err := s.ranks.GetAll(ctx)
	if err != nil {
		return res, err
	}
	rankByName := make(map[string]models.Rank, len(ranks))
	for _, rank := range ranks {
		rankByName[rank.Name] = rank
	}

	users, err := s.users.GetActiveUsers(ctx)
	if err != nil {
		return res, err
	}

	for _, u := range users {
		rank, ok := rankByName[u.RankName]
		if !ok || !rank.TeamReward.IsPositive() || u.ActiveTeam < rank.MinActiveTeam {
			continue
		}
		res.Processed++

		entry := &models.IncomeEntry{
			UserID: u.ID,
			Type:   models.IncomeTeamReward,
			Amount: rank.TeamReward,
			Period: models.Period(period),
		}
		if err := s.post(ctx, entry, "team reward "+rank.Name); err != nil {
			if errors.Is(err, apperrors.ErrDuplicateEntry) {
				res.Skipped++
				continue
			}
			res.AddError(u.ID, err)
			continue
		}
		res.TotalAmount = res.TotalAmount.Add(rank.TeamReward)
	}
	return res, nil
}

// post writes the income entry and the ledger credit for the beneficiary's
// main wallet in one repository transaction. The income insert is the dedup
// gate; when it rejects a duplicate nothing is credited, and a failed credit
// rolls the income entry back so a re-run attempts the pair again.
func (s *distributionService) post(ctx context.Context, entry *models.IncomeEntry, remark string) error {
	ref, err := nextLedgerRef(ctx, s.seq)
	if err != nil {
		return err
	}
	credit := &models.LedgerEntry{
		Ref:          ref,
		UserID:       entry.UserID,
		SourceUserID: entry.SourceUserID,
		Amount:       entry.Amount,
		Fee:          decimal.Zero,
		Type:         models.MovementIncome,
		FromWallet:   models.WalletAdmin,
		ToWallet:     models.WalletMain,
		Remark:       remark,
	}

	if err := s.incomes.Insert(ctx, entry, credit); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicateEntry) {
			logger.Log.Error("failed to post income entry",
				zap.Int64("user", entry.UserID), zap.String("type", string(entry.Type)), zap.Error(err))
		}
		return err
	}
	return nil
}
