package handlers

import (
	"net/http"

	"github.com/a2sh3r/investcore/internal/middleware"
	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

func NewRouter(handler *Handler, secretKey, triggerTokenHash string) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.WithLogging())
	r.Use(middleware.WithGzip())
	r.Use(middleware.RateLimit(middleware.NewClientLimiter(rate.Limit(20), 40)))

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid URL format", http.StatusNotFound)
	})

	r.Route("/api/user", func(r chi.Router) {
		r.Use(middleware.JWTMiddleware(secretKey))
		r.Get("/balance", handler.GetBalance)
		r.Get("/ledger", handler.GetLedgerEntries)
		r.Post("/transfer", handler.Transfer)
		r.Post("/withdrawals", handler.RequestWithdrawal)
		r.Get("/withdrawals", handler.GetWithdrawals)
	})

	r.Route("/api/admin/withdrawals", func(r chi.Router) {
		r.Use(middleware.JWTMiddleware(secretKey))
		r.Use(middleware.RequireAdmin)
		r.Post("/{id}/approve", handler.ApproveWithdrawal)
		r.Post("/{id}/reject", handler.RejectWithdrawal)
	})

	r.Route("/api/jobs", func(r chi.Router) {
		r.Use(middleware.TriggerAuth(triggerTokenHash))
		r.Post("/{name}/run", handler.RunJob)
		r.Post("/recover", handler.RecoverJobs)
	})

	return r
}
