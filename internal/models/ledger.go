package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is a named fund bucket owned by a user or the platform.
type Wallet string

const (
	WalletMain  Wallet = "main"
	WalletTopup Wallet = "topup"
	WalletAdmin Wallet = "admin"
)

func (w Wallet) Valid() bool {
	switch w {
	case WalletMain, WalletTopup, WalletAdmin:
		return true
	}
	return false
}

type MovementType string

const (
	MovementTransfer   MovementType = "transfer"
	MovementDeduction  MovementType = "deduction"
	MovementIncome     MovementType = "income"
	MovementWithdrawal MovementType = "withdrawal"
	MovementRefund     MovementType = "refund"
)

// LedgerEntry is an immutable record of a fund movement. Entries are never
// updated or deleted; corrections are posted as new compensating entries.
type LedgerEntry struct {
	ID           int64           `json:"-" db:"id"`
	Ref          string          `json:"ref" db:"ref"`
	UserID       int64           `json:"-" db:"user_id"`
	SourceUserID *int64          `json:"source_user_id,omitempty" db:"source_user_id"`
	Amount       decimal.Decimal `json:"amount" db:"amount"`
	Fee          decimal.Decimal `json:"fee" db:"fee"`
	Type         MovementType    `json:"type" db:"movement_type"`
	FromWallet   Wallet          `json:"from_wallet" db:"from_wallet"`
	ToWallet     Wallet          `json:"to_wallet" db:"to_wallet"`
	Remark       string          `json:"remark" db:"remark"`
	Active       bool            `json:"-" db:"active"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}
