package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/a2sh3r/investcore/internal/apperrors"
	"github.com/a2sh3r/investcore/internal/logger"
	"github.com/a2sh3r/investcore/internal/middleware"
	"github.com/a2sh3r/investcore/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (h *Handler) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.WithdrawalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	withdrawal, err := h.withdrawalService.Request(r.Context(), userID, req)
	switch {
	case err == nil:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(withdrawal)
	case errors.Is(err, apperrors.ErrInvalidAmount):
		http.Error(w, "invalid withdrawal amount", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrInvalidRate):
		http.Error(w, "invalid rate", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		http.Error(w, "insufficient funds", http.StatusPaymentRequired)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("withdrawal request error", zap.Error(err))
	}
}

func (h *Handler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	withdrawals, err := h.withdrawalService.GetForUser(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to get withdrawals", zap.Error(err))
		return
	}

	if len(withdrawals) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(withdrawals); err != nil {
		logger.Log.Error("failed to encode withdrawals json", zap.Error(err))
	}
}

type approveRequest struct {
	TxID string `json:"tx_id"`
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) ApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid withdrawal id", http.StatusBadRequest)
		return
	}

	var req approveRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid input", http.StatusBadRequest)
			return
		}
	}

	err = h.withdrawalService.Approve(r.Context(), id, adminID, req.TxID)
	h.writeTransitionResult(w, err, "approve")
}

func (h *Handler) RejectWithdrawal(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid withdrawal id", http.StatusBadRequest)
		return
	}

	var req rejectRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid input", http.StatusBadRequest)
			return
		}
	}

	err = h.withdrawalService.Reject(r.Context(), id, adminID, req.Reason)
	h.writeTransitionResult(w, err, "reject")
}

func (h *Handler) writeTransitionResult(w http.ResponseWriter, err error, action string) {
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, apperrors.ErrWithdrawalNotFound):
		http.Error(w, "withdrawal not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrAlreadyProcessed):
		http.Error(w, "withdrawal already processed", http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("withdrawal "+action+" error", zap.Error(err))
	}
}
