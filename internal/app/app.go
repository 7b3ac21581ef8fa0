package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/a2sh3r/investcore/internal/config"
	"github.com/a2sh3r/investcore/internal/database"
	"github.com/a2sh3r/investcore/internal/handlers"
	"github.com/a2sh3r/investcore/internal/logger"
	"github.com/a2sh3r/investcore/internal/repository"
	"github.com/a2sh3r/investcore/internal/scheduler"
	"github.com/a2sh3r/investcore/internal/service"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type App struct {
	server    *http.Server
	db        *sql.DB
	scheduler *scheduler.Scheduler
	cronSpec  string
}

func NewApp() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ParseFlags()

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	feePercent, err := decimal.NewFromString(cfg.WithdrawalFeePercent)
	if err != nil {
		return nil, fmt.Errorf("invalid withdrawal fee percent: %w", err)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Error("Database connection failed", zap.Error(err))
		return nil, err
	}

	seqRepo := repository.NewSequenceRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	withdrawalRepo := repository.NewWithdrawalRepository(db)
	incomeRepo := repository.NewIncomeRepository(db)
	jobRunRepo := repository.NewJobRunRepository(db)
	rankRepo := repository.NewRankRepository(db)
	userRepo := repository.NewUserRepository(db)

	ledgerService := service.NewLedgerService(ledgerRepo, seqRepo)
	withdrawalService := service.NewWithdrawalService(withdrawalRepo, seqRepo, ledgerService, feePercent)
	distributionService := service.NewDistributionService(incomeRepo, userRepo, rankRepo, seqRepo)
	jobRunService := service.NewJobRunService(jobRunRepo)
	rankService := service.NewRankService(rankRepo, userRepo)
	userService := service.NewUserService(userRepo)

	runner := scheduler.NewRunner(jobRunService, distributionService, rankService, userService)
	sched := scheduler.New(runner)

	handler := handlers.NewHandler(ledgerService, withdrawalService, runner, cfg.StaleRunThreshold)
	r := handlers.NewRouter(handler, cfg.SecretKey, cfg.TriggerTokenHash)

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	return &App{
		server:    server,
		db:        db,
		scheduler: sched,
		cronSpec:  cfg.DistributionCron,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	if err := a.scheduler.Start(ctx, a.cronSpec); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}

	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	logger.Log.Info("stopping scheduler...")
	a.scheduler.Stop()

	logger.Log.Info("shutting down server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("server shutdown failed", zap.Error(err))
		return err
	}

	logger.Log.Info("closing database connection...")
	if err := a.db.Close(); err != nil {
		logger.Log.Error("failed to close database", zap.Error(err))
		return err
	}

	return nil
}
