package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/a2sh3r/investcore/internal/apperrors"
	"github.com/a2sh3r/investcore/internal/logger"
	"github.com/a2sh3r/investcore/internal/models"
	"go.uber.org/zap"
)

type WithdrawalRepository interface {
	Insert(ctx context.Context, w *models.Withdrawal, debit *models.LedgerEntry) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Withdrawal, error)
	GetByUser(ctx context.Context, userID int64) ([]models.Withdrawal, error)
	Approve(ctx context.Context, id, adminID int64, txID string, at time.Time) error
	Reject(ctx context.Context, id, adminID int64, reason string, at time.Time, refund *models.LedgerEntry) error
}

type withdrawalRepo struct {
	db *sql.DB
}

func NewWithdrawalRepository(db *sql.DB) WithdrawalRepository {
	return &withdrawalRepo{db: db}
}

const withdrawalColumns = `id, ref, user_id, amount, fee, net_amount, coin_amount, rate, currency,
			  address, tx_id, status, approved_by, approved_at, reject_reason, created_at`

// Insert persists the withdrawal and its ledger debit in one transaction, so
// a stored request is always backed by the debit that freezes its funds.
func (r *withdrawalRepo) Insert(ctx context.Context, w *models.Withdrawal, debit *models.LedgerEntry) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Log.Error("rollback error", zap.Error(rbErr))
			}
		}
	}()

	query := `INSERT INTO withdrawals
			  (ref, user_id, amount, fee, net_amount, coin_amount, rate, currency, address, status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING id`
	var id int64
	err = tx.QueryRowContext(ctx, query,
		w.Ref, w.UserID, w.Amount, w.Fee, w.NetAmount, w.CoinAmount,
		w.Rate, w.Currency, w.Address, w.Status).Scan(&id)
	if err != nil {
		logger.Log.Error("failed to insert withdrawal", zap.Error(err))
		return 0, err
	}

	if _, err = insertLedgerEntry(ctx, tx, debit); err != nil {
		return 0, err
	}

	err = tx.Commit()
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *withdrawalRepo) GetByID(ctx context.Context, id int64) (*models.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE id = $1`
	w, err := scanWithdrawal(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrWithdrawalNotFound
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (r *withdrawalRepo) GetByUser(ctx context.Context, userID int64) ([]models.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		logger.Log.Error("failed to query withdrawals", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var withdrawals []models.Withdrawal
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			logger.Log.Error("failed to scan withdrawal", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, *w)
	}
	return withdrawals, rows.Err()
}

// Approve flips PENDING to APPROVED with a single guarded UPDATE. The status
// check in the WHERE clause is the compare-and-set: concurrent admin actions
// race on it and exactly one wins.
func (r *withdrawalRepo) Approve(ctx context.Context, id, adminID int64, txID string, at time.Time) error {
	query := `UPDATE withdrawals
			  SET status = $1, approved_by = $2, approved_at = $3, tx_id = NULLIF($4, '')
			  WHERE id = $5 AND status = $6`
	res, err := r.db.ExecContext(ctx, query,
		models.WithdrawalApproved, adminID, at, txID, id, models.WithdrawalPending)
	if err != nil {
		return err
	}
	return r.transitionOutcome(ctx, res, id)
}

// Reject flips the status and posts the compensating refund in one
// transaction. A lost compare-and-set rolls back without touching the ledger,
// and a failed refund leaves the withdrawal PENDING so the action can be
// retried.
func (r *withdrawalRepo) Reject(ctx context.Context, id, adminID int64, reason string, at time.Time, refund *models.LedgerEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Log.Error("rollback error", zap.Error(rbErr))
			}
		}
	}()

	query := `UPDATE withdrawals
			  SET status = $1, approved_by = $2, approved_at = $3, reject_reason = $4
			  WHERE id = $5 AND status = $6`
	res, err := tx.ExecContext(ctx, query,
		models.WithdrawalRejected, adminID, at, reason, id, models.WithdrawalPending)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		err = r.missedTransition(ctx, id)
		return err
	}

	if _, err = insertLedgerEntry(ctx, tx, refund); err != nil {
		return err
	}

	err = tx.Commit()
	return err
}

func (r *withdrawalRepo) transitionOutcome(ctx context.Context, res sql.Result, id int64) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}
	return r.missedTransition(ctx, id)
}

func (r *withdrawalRepo) missedTransition(ctx context.Context, id int64) error {
	var exists bool
	if err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM withdrawals WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrWithdrawalNotFound
	}
	return apperrors.ErrAlreadyProcessed
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWithdrawal(row rowScanner) (*models.Withdrawal, error) {
	var w models.Withdrawal
	err := row.Scan(&w.ID, &w.Ref, &w.UserID, &w.Amount, &w.Fee, &w.NetAmount,
		&w.CoinAmount, &w.Rate, &w.Currency, &w.Address, &w.TxID, &w.Status,
		&w.ApprovedBy, &w.ApprovedAt, &w.RejectReason, &w.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
