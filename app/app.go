// File: app/app.go
package app

import (
	"context"
	"go-ledger-api/config"
	"go-ledger-api/handler"
	"go-ledger-api/ledger"
	"go-ledger-api/logger"
	"go-ledger-api/router"
	"go-ledger-api/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
)

// newLedger builds the branch ledger from the loaded configuration.
func newLedger() *ledger.Ledger {
	cfg := config.AppConfig.Bank
	return ledger.New(cfg.Branch, ledger.Limits{
		WithdrawalLimit:      decimal.NewFromFloat(cfg.WithdrawalLimit),
		MaxDailyWithdrawals:  cfg.MaxDailyWithdrawals,
		MaxDailyTransactions: cfg.MaxDailyTransactions,
	})
}

func buildRouter(l *ledger.Ledger) http.Handler {
	customerService := service.NewCustomerService(l)
	customerHandler := handler.NewCustomerHandler(customerService)

	accountService := service.NewAccountService(l)
	accountHandler := handler.NewAccountHandler(accountService)

	transactionService := service.NewTransactionService(l)
	transactionHandler := handler.NewTransactionHandler(transactionService)

	return router.NewRouter(customerHandler, accountHandler, transactionHandler)
}

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	l := newLedger()
	logger.Log.WithField("branch", config.AppConfig.Bank.Branch).Info("Ledger initialized")

	r := buildRouter(l)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}

// TestApp bundles a ledger and its router for integration tests.
type TestApp struct {
	Ledger *ledger.Ledger
	Router http.Handler
}

// NewTestApp wires the full stack around the given ledger.
func NewTestApp(l *ledger.Ledger) *TestApp {
	return &TestApp{
		Ledger: l,
		Router: buildRouter(l),
	}
}
