package router

import (
	"go-ledger-api/handler"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "go-ledger-api/docs"
)

func NewRouter(customerHandler *handler.CustomerHandler, accountHandler *handler.AccountHandler, transactionHandler *handler.TransactionHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	mux.Handle("POST /api/customers", handler.ErrorHandlingMiddleware(customerHandler.RegisterCustomer))

	mux.Handle("POST /api/accounts", handler.ErrorHandlingMiddleware(accountHandler.OpenAccount))
	mux.Handle("GET /api/accounts", handler.ErrorHandlingMiddleware(accountHandler.ListAccounts))
	mux.Handle("GET /api/accounts/{accountNumber}", handler.ErrorHandlingMiddleware(accountHandler.GetAccount))
	mux.Handle("GET /api/accounts/{accountNumber}/statement", handler.ErrorHandlingMiddleware(accountHandler.GetStatement))

	mux.Handle("POST /api/accounts/{accountNumber}/deposits", handler.ErrorHandlingMiddleware(transactionHandler.CreateDeposit))
	mux.Handle("POST /api/accounts/{accountNumber}/withdrawals", handler.ErrorHandlingMiddleware(transactionHandler.CreateWithdrawal))
	mux.Handle("GET /api/accounts/{accountNumber}/transactions", handler.ErrorHandlingMiddleware(transactionHandler.ListTransactions))

	return mux
}
