package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "PENDING"
	WithdrawalApproved WithdrawalStatus = "APPROVED"
	WithdrawalRejected WithdrawalStatus = "REJECTED"
)

// Terminal reports whether no further transition is allowed from the status.
func (s WithdrawalStatus) Terminal() bool {
	return s == WithdrawalApproved || s == WithdrawalRejected
}

// Withdrawal amounts are frozen at creation; only status, tx id and the
// approval fields change, exactly once, on approve or reject.
type Withdrawal struct {
	ID           int64            `json:"-" db:"id"`
	Ref          string           `json:"ref" db:"ref"`
	UserID       int64            `json:"-" db:"user_id"`
	Amount       decimal.Decimal  `json:"amount" db:"amount"`
	Fee          decimal.Decimal  `json:"fee" db:"fee"`
	NetAmount    decimal.Decimal  `json:"net_amount" db:"net_amount"`
	CoinAmount   decimal.Decimal  `json:"coin_amount" db:"coin_amount"`
	Rate         decimal.Decimal  `json:"rate" db:"rate"`
	Currency     string           `json:"currency" db:"currency"`
	Address      *string          `json:"address,omitempty" db:"address"`
	TxID         *string          `json:"tx_id,omitempty" db:"tx_id"`
	Status       WithdrawalStatus `json:"status" db:"status"`
	ApprovedBy   *int64           `json:"-" db:"approved_by"`
	ApprovedAt   *time.Time       `json:"approved_at,omitempty" db:"approved_at"`
	RejectReason *string          `json:"reject_reason,omitempty" db:"reject_reason"`
	CreatedAt    time.Time        `json:"created_at" db:"created_at"`
}

type WithdrawalRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Rate     decimal.Decimal `json:"rate"`
	Address  string          `json:"address"`
}
