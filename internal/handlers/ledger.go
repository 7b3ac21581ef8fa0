package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/a2sh3r/investcore/internal/apperrors"
	"github.com/a2sh3r/investcore/internal/logger"
	"github.com/a2sh3r/investcore/internal/middleware"
	"github.com/a2sh3r/investcore/internal/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type transferRequest struct {
	ToUserID   int64           `json:"to_user_id"`
	Amount     decimal.Decimal `json:"amount"`
	FromWallet models.Wallet   `json:"from_wallet"`
	ToWallet   models.Wallet   `json:"to_wallet"`
	Remark     string          `json:"remark"`
}

func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	wallet := models.Wallet(r.URL.Query().Get("wallet"))
	if wallet == "" {
		wallet = models.WalletMain
	}

	balance, err := h.ledgerService.GetBalance(r.Context(), userID, wallet)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidWallet) {
			http.Error(w, "unknown wallet", http.StatusBadRequest)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to get balance", zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]decimal.Decimal{"balance": balance})
}

func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.ToUserID == 0 {
		req.ToUserID = userID
	}
	if req.FromWallet == "" {
		req.FromWallet = models.WalletMain
	}
	if req.ToWallet == "" {
		req.ToWallet = models.WalletMain
	}

	ref, err := h.ledgerService.RecordUserTransfer(r.Context(), userID, req.ToUserID,
		req.Amount, req.FromWallet, req.ToWallet, req.Remark)
	switch {
	case err == nil:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"ref": ref})
	case errors.Is(err, apperrors.ErrInvalidAmount):
		http.Error(w, "invalid amount", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrInvalidWallet):
		http.Error(w, "unknown wallet", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrTransferNotAllowed):
		http.Error(w, "transfer not allowed", http.StatusForbidden)
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		http.Error(w, "insufficient funds", http.StatusPaymentRequired)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("transfer error", zap.Error(err))
	}
}

func (h *Handler) GetLedgerEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	entries, err := h.ledgerService.GetEntries(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to get ledger entries", zap.Error(err))
		return
	}

	if len(entries) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		logger.Log.Error("failed to encode ledger entries json", zap.Error(err))
	}
}
