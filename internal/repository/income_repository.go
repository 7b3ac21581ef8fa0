package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/a2sh3r/investcore/internal/apperrors"
	"github.com/a2sh3r/investcore/internal/logger"
	"github.com/a2sh3r/investcore/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type IncomeRepository interface {
	Insert(ctx context.Context, entry *models.IncomeEntry, credit *models.LedgerEntry) error
	ExistsForPeriod(ctx context.Context, userID int64, incomeType models.IncomeType, period time.Time) (bool, error)
	ExistsForPair(ctx context.Context, userID, sourceUserID int64) (bool, error)
	GetByUser(ctx context.Context, userID int64) ([]models.IncomeEntry, error)
}

type incomeRepo struct {
	db *sql.DB
}

func NewIncomeRepository(db *sql.DB) IncomeRepository {
	return &incomeRepo{db: db}
}

// Insert is insert-or-reject: the partial unique indexes on
// (user, source) for referral_bonus and (user, type, period) for recurring
// types are the dedup authority. A violation maps to ErrDuplicateEntry. The
// income entry and its ledger credit land in one transaction, so a re-run
// after a crash either finds both or neither.
func (r *incomeRepo) Insert(ctx context.Context, entry *models.IncomeEntry, credit *models.LedgerEntry) error {
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

	query := `INSERT INTO income_entries (user_id, source_user_id, income_type, amount, period)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	err = tx.QueryRowContext(ctx, query,
		entry.UserID, entry.SourceUserID, entry.Type, entry.Amount, entry.Period).Scan(&entry.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicateEntry
		}
		logger.Log.Error("failed to insert income entry", zap.Error(err))
		return err
	}

	if _, err = insertLedgerEntry(ctx, tx, credit); err != nil {
		return err
	}

	err = tx.Commit()
	return err
}

func (r *incomeRepo) ExistsForPeriod(ctx context.Context, userID int64, incomeType models.IncomeType, period time.Time) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM income_entries
				WHERE user_id = $1 AND income_type = $2 AND period = $3
			  )`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, userID, incomeType, period).Scan(&exists)
	return exists, err
}

func (r *incomeRepo) ExistsForPair(ctx context.Context, userID, sourceUserID int64) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM income_entries
				WHERE user_id = $1 AND source_user_id = $2 AND income_type = $3
			  )`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, userID, sourceUserID, models.IncomeReferralBonus).Scan(&exists)
	return exists, err
}

func (r *incomeRepo) GetByUser(ctx context.Context, userID int64) ([]models.IncomeEntry, error) {
	query := `SELECT id, user_id, source_user_id, income_type, amount, period, created_at
			  FROM income_entries
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		logger.Log.Error("failed to query income entries", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var entries []models.IncomeEntry
	for rows.Next() {
		var e models.IncomeEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.SourceUserID, &e.Type, &e.Amount, &e.Period, &e.CreatedAt); err != nil {
			logger.Log.Error("failed to scan income entry", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "23505"
}
