package service

import (
	"context"
	"fmt"
	"time"

	"github.com/a2sh3r/investcore/internal/apperrors"
	"github.com/a2sh3r/investcore/internal/models"
	"github.com/a2sh3r/investcore/internal/repository"
	"github.com/shopspring/decimal"
)

const coinAmountScale = 8

type WithdrawalService interface {
	Request(ctx context.Context, userID int64, req models.WithdrawalRequest) (*models.Withdrawal, error)
	Approve(ctx context.Context, id, adminID int64, txID string) error
	Reject(ctx context.Context, id, adminID int64, reason string) error
	GetForUser(ctx context.Context, userID int64) ([]models.Withdrawal, error)
}

type withdrawalService struct {
	repo       repository.WithdrawalRepository
	seq        repository.SequenceRepository
	ledger     LedgerService
	feePercent decimal.Decimal
}

func NewWithdrawalService(repo repository.WithdrawalRepository, seq repository.SequenceRepository,
	ledger LedgerService, feePercent decimal.Decimal) WithdrawalService {
	return &withdrawalService{repo: repo, seq: seq, ledger: ledger, feePercent: feePercent}
}

// Request validates the amount against the currently derived balance,
// freezes amount, fee, net and coin amounts, and persists a PENDING
// withdrawal together with the ledger debit. The debit keeps a second
// request from spending the same funds; a later reject posts a compensating
// refund entry.
func (s *withdrawalService) Request(ctx context.Context, userID int64, req models.WithdrawalRequest) (*models.Withdrawal, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}
	if !req.Rate.IsPositive() {
		return nil, apperrors.ErrInvalidRate
	}

	balance, err := s.ledger.GetBalance(ctx, userID, models.WalletMain)
	if err != nil {
		return nil, err
	}
	if balance.LessThan(req.Amount) {
		return nil, apperrors.ErrInsufficientFunds
	}

	fee := req.Amount.Mul(s.feePercent).Div(decimal.NewFromInt(100))
	net := req.Amount.Sub(fee)

	n, err := s.seq.Next(ctx, "withdrawal")
	if err != nil {
		return nil, err
	}

	w := &models.Withdrawal{
		Ref:        fmt.Sprintf("WD-%06d", n),
		UserID:     userID,
		Amount:     req.Amount,
		Fee:        fee,
		NetAmount:  net,
		CoinAmount: net.DivRound(req.Rate, coinAmountScale),
		Rate:       req.Rate,
		Currency:   req.Currency,
		Status:     models.WithdrawalPending,
	}
	if req.Address != "" {
		w.Address = &req.Address
	}

	debitRef, err := nextLedgerRef(ctx, s.seq)
	if err != nil {
		return nil, err
	}
	debit := &models.LedgerEntry{
		Ref:          debitRef,
		UserID:       userID,
		SourceUserID: &userID,
		Amount:       net,
		Fee:          fee,
		Type:         models.MovementWithdrawal,
		FromWallet:   models.WalletMain,
		ToWallet:     models.WalletAdmin,
		Remark:       "withdrawal " + w.Ref,
	}

	id, err := s.repo.Insert(ctx, w, debit)
	if err != nil {
		return nil, err
	}
	w.ID = id

	return w, nil
}

// Approve performs the PENDING -> APPROVED transition. Calling it on an
// already terminal withdrawal returns ErrAlreadyProcessed and changes
// nothing, so retries and racing admins are safe.
func (s *withdrawalService) Approve(ctx context.Context, id, adminID int64, txID string) error {
	return s.repo.Approve(ctx, id, adminID, txID, time.Now())
}

// Reject compensates the debit posted at request time with a new refund
// entry rather than touching the original. The status flip and the refund
// commit together or not at all.
func (s *withdrawalService) Reject(ctx context.Context, id, adminID int64, reason string) error {
	w, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	ref, err := nextLedgerRef(ctx, s.seq)
	if err != nil {
		return err
	}
	refund := &models.LedgerEntry{
		Ref:        ref,
		UserID:     w.UserID,
		Amount:     w.Amount,
		Fee:        decimal.Zero,
		Type:       models.MovementRefund,
		FromWallet: models.WalletAdmin,
		ToWallet:   models.WalletMain,
		Remark:     "withdrawal " + w.Ref + " rejected",
	}

	return s.repo.Reject(ctx, id, adminID, reason, time.Now(), refund)
}

func (s *withdrawalService) GetForUser(ctx context.Context, userID int64) ([]models.Withdrawal, error) {
	return s.repo.GetByUser(ctx, userID)
}
