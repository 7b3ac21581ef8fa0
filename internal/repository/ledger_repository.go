package repository

import (
	"context"
	"database/sql"

	"github.com/a2sh3r/investcore/internal/logger"
	"github.com/a2sh3r/investcore/internal/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type LedgerRepository interface {
	Insert(ctx context.Context, entry *models.LedgerEntry) (int64, error)
	GetBalance(ctx context.Context, userID int64, wallet models.Wallet) (decimal.Decimal, error)
	GetEntriesByUser(ctx context.Context, userID int64) ([]models.LedgerEntry, error)
}

type ledgerRepo struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) LedgerRepository {
	return &ledgerRepo{db: db}
}

// Insert appends one entry. There is deliberately no update or delete query
// in this repository; corrections are new compensating entries.
func (r *ledgerRepo) Insert(ctx context.Context, entry *models.LedgerEntry) (int64, error) {
	return insertLedgerEntry(ctx, r.db, entry)
}

// queryRower is satisfied by both *sql.DB and *sql.Tx, so repositories that
// pair a ledger write with their own writes can reuse the same insert inside
// their transaction.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insertLedgerEntry(ctx context.Context, q queryRower, entry *models.LedgerEntry) (int64, error) {
	query := `INSERT INTO ledger_entries
			  (ref, user_id, source_user_id, amount, fee, movement_type, from_wallet, to_wallet, remark, active)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE)
			  RETURNING id`
	var id int64
	err := q.QueryRowContext(ctx, query,
		entry.Ref, entry.UserID, entry.SourceUserID, entry.Amount, entry.Fee,
		entry.Type, entry.FromWallet, entry.ToWallet, entry.Remark).Scan(&id)
	if err != nil {
		logger.Log.Error("failed to insert ledger entry", zap.Error(err))
		return 0, err
	}
	return id, nil
}

// GetBalance derives the wallet balance by summing entries at read time.
// Credits are entries paying into the wallet for the beneficiary; debits are
// deductions and withdrawals from it, plus transfers where the user is the
// paying side.
func (r *ledgerRepo) GetBalance(ctx context.Context, userID int64, wallet models.Wallet) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(
			CASE
				WHEN user_id = $1 AND movement_type IN ('deduction', 'withdrawal') AND from_wallet = $2 THEN -(amount + fee)
				WHEN user_id = $1 AND to_wallet = $2 THEN amount
				WHEN source_user_id = $1 AND from_wallet = $2 THEN -(amount + fee)
				ELSE 0
			END), 0)
		FROM ledger_entries
		WHERE active AND (user_id = $1 OR source_user_id = $1)
	`
	var balance decimal.Decimal
	err := r.db.QueryRowContext(ctx, query, userID, wallet).Scan(&balance)
	if err != nil {
		logger.Log.Error("failed to get balance", zap.Error(err))
		return decimal.Zero, err
	}
	return balance, nil
}

func (r *ledgerRepo) GetEntriesByUser(ctx context.Context, userID int64) ([]models.LedgerEntry, error) {
	query := `SELECT id, ref, user_id, source_user_id, amount, fee, movement_type, from_wallet, to_wallet, remark, active, created_at
			  FROM ledger_entries
			  WHERE user_id = $1 OR source_user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		logger.Log.Error("failed to query ledger entries", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var entries []models.LedgerEntry
	for rows.Next() {
		var e models.LedgerEntry
		if err := rows.Scan(&e.ID, &e.Ref, &e.UserID, &e.SourceUserID, &e.Amount, &e.Fee,
			&e.Type, &e.FromWallet, &e.ToWallet, &e.Remark, &e.Active, &e.CreatedAt); err != nil {
			logger.Log.Error("failed to scan ledger entry", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
