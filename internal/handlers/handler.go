package handlers

import (
	"time"

	"github.com/a2sh3r/investcore/internal/scheduler"
	"github.com/a2sh3r/investcore/internal/service"
)

type Handler struct {
	ledgerService     service.LedgerService
	withdrawalService service.WithdrawalService
	runner            *scheduler.Runner
	staleRunThreshold time.Duration
}

func NewHandler(ledgerService service.LedgerService, withdrawalService service.WithdrawalService,
	runner *scheduler.Runner, staleRunThreshold time.Duration) *Handler {
	return &Handler{
		ledgerService:     ledgerService,
		withdrawalService: withdrawalService,
		runner:            runner,
		staleRunThreshold: staleRunThreshold,
	}
}
