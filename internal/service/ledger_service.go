package service

import (
	"context"
	"fmt"

	"github.com/a2sh3r/investcore/internal/apperrors"
	"github.com/a2sh3r/investcore/internal/models"
	"github.com/a2sh3r/investcore/internal/repository"
	"github.com/shopspring/decimal"
)

// LedgerService is the only way ledger entries come into existence. It
// exposes no update or delete: the ledger is append-only and balances are
// derived by summing entries at read time, so concurrent appends need no
// coordination.
type LedgerService interface {
	RecordTransfer(ctx context.Context, fromUserID *int64, toUserID int64, amount, fee decimal.Decimal,
		fromWallet, toWallet models.Wallet, movementType models.MovementType, remark string) (string, error)
	RecordUserTransfer(ctx context.Context, fromUserID, toUserID int64, amount decimal.Decimal,
		fromWallet, toWallet models.Wallet, remark string) (string, error)
	RecordDeduction(ctx context.Context, userID int64, amount decimal.Decimal, remark string, movementType models.MovementType) (string, error)
	GetBalance(ctx context.Context, userID int64, wallet models.Wallet) (decimal.Decimal, error)
	GetEntries(ctx context.Context, userID int64) ([]models.LedgerEntry, error)
}

type ledgerService struct {
	repo repository.LedgerRepository
	seq  repository.SequenceRepository
}

func NewLedgerService(repo repository.LedgerRepository, seq repository.SequenceRepository) LedgerService {
	return &ledgerService{repo: repo, seq: seq}
}

func (s *ledgerService) RecordTransfer(ctx context.Context, fromUserID *int64, toUserID int64, amount, fee decimal.Decimal,
	fromWallet, toWallet models.Wallet, movementType models.MovementType, remark string) (string, error) {
	if amount.IsNegative() || fee.IsNegative() {
		return "", apperrors.ErrInvalidAmount
	}
	if !fromWallet.Valid() || !toWallet.Valid() {
		return "", apperrors.ErrInvalidWallet
	}

	ref, err := nextLedgerRef(ctx, s.seq)
	if err != nil {
		return "", err
	}

	entry := &models.LedgerEntry{
		Ref:          ref,
		UserID:       toUserID,
		SourceUserID: fromUserID,
		Amount:       amount,
		Fee:          fee,
		Type:         movementType,
		FromWallet:   fromWallet,
		ToWallet:     toWallet,
		Remark:       remark,
	}

	if _, err := s.repo.Insert(ctx, entry); err != nil {
		return "", err
	}
	return ref, nil
}

// RecordUserTransfer is the only movement reachable from the authenticated
// user surface. Exactly two shapes are allowed: main to main toward another
// user, and topup to main within the caller's own wallets. The fee is always
// zero and the sending wallet must cover the amount; everything else,
// admin-sourced movements included, is rejected before any write.
func (s *ledgerService) RecordUserTransfer(ctx context.Context, fromUserID, toUserID int64, amount decimal.Decimal,
	fromWallet, toWallet models.Wallet, remark string) (string, error) {
	if !amount.IsPositive() {
		return "", apperrors.ErrInvalidAmount
	}
	if !fromWallet.Valid() || !toWallet.Valid() {
		return "", apperrors.ErrInvalidWallet
	}

	switch {
	case fromWallet == models.WalletMain && toWallet == models.WalletMain && toUserID != fromUserID:
	case fromWallet == models.WalletTopup && toWallet == models.WalletMain && toUserID == fromUserID:
	default:
		return "", apperrors.ErrTransferNotAllowed
	}

	balance, err := s.repo.GetBalance(ctx, fromUserID, fromWallet)
	if err != nil {
		return "", err
	}
	if balance.LessThan(amount) {
		return "", apperrors.ErrInsufficientFunds
	}

	return s.RecordTransfer(ctx, &fromUserID, toUserID, amount, decimal.Zero,
		fromWallet, toWallet, models.MovementTransfer, remark)
}

// RecordDeduction debits the user's main wallet toward the platform. The
// movement type distinguishes plain deductions from withdrawal debits in the
// derived balance.
func (s *ledgerService) RecordDeduction(ctx context.Context, userID int64, amount decimal.Decimal, remark string, movementType models.MovementType) (string, error) {
	if amount.IsNegative() {
		return "", apperrors.ErrInvalidAmount
	}
	if movementType != models.MovementDeduction && movementType != models.MovementWithdrawal {
		return "", apperrors.ErrInvalidMovement
	}

	ref, err := nextLedgerRef(ctx, s.seq)
	if err != nil {
		return "", err
	}

	entry := &models.LedgerEntry{
		Ref:        ref,
		UserID:     userID,
		Amount:     amount,
		Type:       movementType,
		FromWallet: models.WalletMain,
		ToWallet:   models.WalletAdmin,
		Remark:     remark,
	}

	if _, err := s.repo.Insert(ctx, entry); err != nil {
		return "", err
	}
	return ref, nil
}

func (s *ledgerService) GetBalance(ctx context.Context, userID int64, wallet models.Wallet) (decimal.Decimal, error) {
	if !wallet.Valid() {
		return decimal.Zero, apperrors.ErrInvalidWallet
	}
	return s.repo.GetBalance(ctx, userID, wallet)
}

func (s *ledgerService) GetEntries(ctx context.Context, userID int64) ([]models.LedgerEntry, error) {
	return s.repo.GetEntriesByUser(ctx, userID)
}

// nextLedgerRef draws the next TXN reference. Services that build ledger
// entries for their own transactional writes share it.
func nextLedgerRef(ctx context.Context, seq repository.SequenceRepository) (string, error) {
	n, err := seq.Next(ctx, "ledger")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("TXN-%06d", n), nil
}
