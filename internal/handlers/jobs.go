package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/a2sh3r/investcore/internal/apperrors"
	"github.com/a2sh3r/investcore/internal/logger"
	"github.com/a2sh3r/investcore/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RunJob triggers one named job with triggeredBy=manual. The caller is
// already authorized by the trigger-token middleware.
func (h *Handler) RunJob(w http.ResponseWriter, r *http.Request) {
	job := models.JobName(chi.URLParam(r, "name"))

	err := h.runner.Run(r.Context(), job, models.TriggerManual)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, apperrors.ErrUnknownJob):
		http.Error(w, "unknown job name", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrAlreadyRunning):
		http.Error(w, "job is already running", http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("manual job run error", zap.String("job", string(job)), zap.Error(err))
	}
}

// RecoverJobs force-closes stale running records left by a crashed process.
func (h *Handler) RecoverJobs(w http.ResponseWriter, r *http.Request) {
	closed, err := h.runner.Recover(r.Context(), h.staleRunThreshold)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("stale run recovery error", zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]int{"closed": closed})
}
