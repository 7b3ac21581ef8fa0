package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/a2sh3r/investcore/internal/apperrors"
	"github.com/a2sh3r/investcore/internal/mocks/repository_mocks"
	"github.com/a2sh3r/investcore/internal/mocks/service_mocks"
	"github.com/a2sh3r/investcore/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWithdrawalService_Request(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	feePercent := decimal.NewFromInt(5)

	tests := []struct {
		name      string
		userID    int64
		req       models.WithdrawalRequest
		mockSetup func(repo *repository_mocks.MockWithdrawalRepository,
			seq *repository_mocks.MockSequenceRepository, ledger *service_mocks.MockLedgerService)
		check   func(t *testing.T, w *models.Withdrawal)
		wantErr error
	}{
		{
			name:   "successful request freezes amounts",
			userID: 1,
			req: models.WithdrawalRequest{
				Amount:   decimal.NewFromInt(100),
				Currency: "USDT",
				Rate:     decimal.NewFromInt(2),
				Address:  "TXabc",
			},
			mockSetup: func(repo *repository_mocks.MockWithdrawalRepository,
				seq *repository_mocks.MockSequenceRepository, ledger *service_mocks.MockLedgerService) {
				ledger.EXPECT().GetBalance(ctx, int64(1), models.WalletMain).
					Return(decimal.NewFromInt(500), nil).Times(1)
				seq.EXPECT().Next(ctx, "withdrawal").Return(int64(7), nil).Times(1)
				seq.EXPECT().Next(ctx, "ledger").Return(int64(1), nil).Times(1)
				repo.EXPECT().Insert(ctx, gomock.AssignableToTypeOf(&models.Withdrawal{}),
					gomock.AssignableToTypeOf(&models.LedgerEntry{})).DoAndReturn(
					func(_ context.Context, _ *models.Withdrawal, debit *models.LedgerEntry) (int64, error) {
						assert.Equal(t, "TXN-000001", debit.Ref)
						assert.Equal(t, models.MovementWithdrawal, debit.Type)
						assert.Equal(t, models.WalletMain, debit.FromWallet)
						assert.Equal(t, models.WalletAdmin, debit.ToWallet)
						assert.True(t, debit.Amount.Equal(decimal.NewFromInt(95)), "debit amount = %s", debit.Amount)
						assert.True(t, debit.Fee.Equal(decimal.NewFromInt(5)), "debit fee = %s", debit.Fee)
						return 11, nil
					}).Times(1)
			},
			check: func(t *testing.T, w *models.Withdrawal) {
				assert.Equal(t, "WD-000007", w.Ref)
				assert.Equal(t, int64(11), w.ID)
				assert.Equal(t, models.WithdrawalPending, w.Status)
				assert.True(t, w.Fee.Equal(decimal.NewFromInt(5)), "fee = %s", w.Fee)
				assert.True(t, w.NetAmount.Equal(decimal.NewFromInt(95)), "net = %s", w.NetAmount)
				assert.True(t, w.CoinAmount.Equal(decimal.RequireFromString("47.5")), "coin = %s", w.CoinAmount)
			},
			wantErr: nil,
		},
		{
			name:   "non-positive amount",
			userID: 1,
			req: models.WithdrawalRequest{
				Amount: decimal.Zero,
				Rate:   decimal.NewFromInt(1),
			},
			mockSetup: func(repo *repository_mocks.MockWithdrawalRepository,
				seq *repository_mocks.MockSequenceRepository, ledger *service_mocks.MockLedgerService) {
			},
			wantErr: apperrors.ErrInvalidAmount,
		},
		{
			name:   "non-positive rate",
			userID: 1,
			req: models.WithdrawalRequest{
				Amount: decimal.NewFromInt(10),
				Rate:   decimal.Zero,
			},
			mockSetup: func(repo *repository_mocks.MockWithdrawalRepository,
				seq *repository_mocks.MockSequenceRepository, ledger *service_mocks.MockLedgerService) {
			},
			wantErr: apperrors.ErrInvalidRate,
		},
		{
			name:   "insufficient funds",
			userID: 2,
			req: models.WithdrawalRequest{
				Amount: decimal.NewFromInt(1000),
				Rate:   decimal.NewFromInt(1),
			},
			mockSetup: func(repo *repository_mocks.MockWithdrawalRepository,
				seq *repository_mocks.MockSequenceRepository, ledger *service_mocks.MockLedgerService) {
				ledger.EXPECT().GetBalance(ctx, int64(2), models.WalletMain).
					Return(decimal.NewFromInt(100), nil).Times(1)
			},
			wantErr: apperrors.ErrInsufficientFunds,
		},
		{
			name:   "failed insert persists nothing",
			userID: 4,
			req: models.WithdrawalRequest{
				Amount: decimal.NewFromInt(100),
				Rate:   decimal.NewFromInt(1),
			},
			mockSetup: func(repo *repository_mocks.MockWithdrawalRepository,
				seq *repository_mocks.MockSequenceRepository, ledger *service_mocks.MockLedgerService) {
				ledger.EXPECT().GetBalance(ctx, int64(4), models.WalletMain).
					Return(decimal.NewFromInt(500), nil).Times(1)
				seq.EXPECT().Next(ctx, "withdrawal").Return(int64(8), nil).Times(1)
				seq.EXPECT().Next(ctx, "ledger").Return(int64(2), nil).Times(1)
				repo.EXPECT().Insert(ctx, gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("db error")).Times(1)
			},
			wantErr: errors.New("db error"),
		},
		{
			name:   "balance lookup failure",
			userID: 3,
			req: models.WithdrawalRequest{
				Amount: decimal.NewFromInt(10),
				Rate:   decimal.NewFromInt(1),
			},
			mockSetup: func(repo *repository_mocks.MockWithdrawalRepository,
				seq *repository_mocks.MockSequenceRepository, ledger *service_mocks.MockLedgerService) {
				ledger.EXPECT().GetBalance(ctx, int64(3), models.WalletMain).
					Return(decimal.Zero, errors.New("db error")).Times(1)
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := repository_mocks.NewMockWithdrawalRepository(ctrl)
			mockSeq := repository_mocks.NewMockSequenceRepository(ctrl)
			mockLedger := service_mocks.NewMockLedgerService(ctrl)
			tt.mockSetup(mockRepo, mockSeq, mockLedger)

			svc := NewWithdrawalService(mockRepo, mockSeq, mockLedger, feePercent)
			w, err := svc.Request(ctx, tt.userID, tt.req)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				tt.check(t, w)
			} else {
				assert.EqualError(t, err, tt.wantErr.Error())
			}
		})
	}
}

func TestWithdrawalService_Approve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name      string
		mockSetup func(repo *repository_mocks.MockWithdrawalRepository)
		wantErr   error
	}{
		{
			name: "successful approve",
			mockSetup: func(repo *repository_mocks.MockWithdrawalRepository) {
				repo.EXPECT().Approve(ctx, int64(1), int64(9), "0xdead", gomock.Any()).Return(nil).Times(1)
			},
			wantErr: nil,
		},
		{
			name: "second approve is a no-op error",
			mockSetup: func(repo *repository_mocks.MockWithdrawalRepository) {
				repo.EXPECT().Approve(ctx, int64(1), int64(9), "0xdead", gomock.Any()).
					Return(apperrors.ErrAlreadyProcessed).Times(1)
			},
			wantErr: apperrors.ErrAlreadyProcessed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := repository_mocks.NewMockWithdrawalRepository(ctrl)
			mockSeq := repository_mocks.NewMockSequenceRepository(ctrl)
			mockLedger := service_mocks.NewMockLedgerService(ctrl)
			tt.mockSetup(mockRepo)

			svc := NewWithdrawalService(mockRepo, mockSeq, mockLedger, decimal.NewFromInt(5))
			err := svc.Approve(ctx, 1, 9, "0xdead")

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestWithdrawalService_Reject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("reject refunds with a compensating entry", func(t *testing.T) {
		mockRepo := repository_mocks.NewMockWithdrawalRepository(ctrl)
		mockSeq := repository_mocks.NewMockSequenceRepository(ctrl)
		mockLedger := service_mocks.NewMockLedgerService(ctrl)

		mockRepo.EXPECT().GetByID(ctx, int64(4)).Return(&models.Withdrawal{
			ID:     4,
			Ref:    "WD-000004",
			UserID: 2,
			Amount: decimal.NewFromInt(50),
			Status: models.WithdrawalPending,
		}, nil).Times(1)
		mockSeq.EXPECT().Next(ctx, "ledger").Return(int64(9), nil).Times(1)
		mockRepo.EXPECT().Reject(ctx, int64(4), int64(9), "bad address", gomock.Any(),
			gomock.AssignableToTypeOf(&models.LedgerEntry{})).DoAndReturn(
			func(_ context.Context, _, _ int64, _ string, _ time.Time, refund *models.LedgerEntry) error {
				assert.Equal(t, "TXN-000009", refund.Ref)
				assert.Equal(t, int64(2), refund.UserID)
				assert.Nil(t, refund.SourceUserID)
				assert.True(t, refund.Amount.Equal(decimal.NewFromInt(50)), "refund = %s", refund.Amount)
				assert.Equal(t, models.MovementRefund, refund.Type)
				assert.Equal(t, models.WalletAdmin, refund.FromWallet)
				assert.Equal(t, models.WalletMain, refund.ToWallet)
				return nil
			}).Times(1)

		svc := NewWithdrawalService(mockRepo, mockSeq, mockLedger, decimal.NewFromInt(5))
		err := svc.Reject(ctx, 4, 9, "bad address")
		assert.NoError(t, err)
	})

	t.Run("reject on terminal withdrawal changes nothing", func(t *testing.T) {
		mockRepo := repository_mocks.NewMockWithdrawalRepository(ctrl)
		mockSeq := repository_mocks.NewMockSequenceRepository(ctrl)
		mockLedger := service_mocks.NewMockLedgerService(ctrl)

		mockRepo.EXPECT().GetByID(ctx, int64(4)).Return(&models.Withdrawal{
			ID:     4,
			Ref:    "WD-000004",
			UserID: 2,
			Amount: decimal.NewFromInt(50),
			Status: models.WithdrawalRejected,
		}, nil).Times(1)
		mockSeq.EXPECT().Next(ctx, "ledger").Return(int64(10), nil).Times(1)
		mockRepo.EXPECT().Reject(ctx, int64(4), int64(9), "dup", gomock.Any(), gomock.Any()).
			Return(apperrors.ErrAlreadyProcessed).Times(1)

		svc := NewWithdrawalService(mockRepo, mockSeq, mockLedger, decimal.NewFromInt(5))
		err := svc.Reject(ctx, 4, 9, "dup")
		assert.ErrorIs(t, err, apperrors.ErrAlreadyProcessed)
	})

	t.Run("reject on missing withdrawal stops at the lookup", func(t *testing.T) {
		mockRepo := repository_mocks.NewMockWithdrawalRepository(ctrl)
		mockSeq := repository_mocks.NewMockSequenceRepository(ctrl)
		mockLedger := service_mocks.NewMockLedgerService(ctrl)

		mockRepo.EXPECT().GetByID(ctx, int64(99)).
			Return(nil, apperrors.ErrWithdrawalNotFound).Times(1)

		svc := NewWithdrawalService(mockRepo, mockSeq, mockLedger, decimal.NewFromInt(5))
		err := svc.Reject(ctx, 99, 9, "gone")
		assert.ErrorIs(t, err, apperrors.ErrWithdrawalNotFound)
	})
}
