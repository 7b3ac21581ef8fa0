package apperrors

import "errors"

var (
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInvalidRate        = errors.New("rate must be positive")
	ErrInvalidWallet      = errors.New("unknown wallet")
	ErrInvalidMovement    = errors.New("unknown movement type")
	ErrTransferNotAllowed = errors.New("transfer not allowed")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrDuplicateEntry     = errors.New("income entry already exists")
	ErrAlreadyProcessed   = errors.New("withdrawal already processed")
	ErrWithdrawalNotFound = errors.New("withdrawal not found")
	ErrAlreadyRunning     = errors.New("job is already running")
	ErrUnknownJob         = errors.New("unknown job name")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidAuthHeader  = errors.New("invalid or missing Authorization header")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInternalServer     = errors.New("internal server error")
)
