package main

import (
	"net/http"

	httphandlers "bankd/internal/interfaces/http"
	"bankd/internal/shared/config"
	"bankd/internal/shared/middleware"
)

// SetupRoutes configures all HTTP routes and returns the final handler with middleware.
func SetupRoutes(deps *Dependencies, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", httphandlers.HandleHealth)

	// Banks
	mux.HandleFunc("GET /api/banks", deps.BankHandler.HandleListBanks)
	mux.HandleFunc("POST /api/banks", deps.BankHandler.HandleCreateBank)
	mux.HandleFunc("GET /api/banks/accounts", deps.BankHandler.HandleBankAccounts)
	mux.HandleFunc("GET /api/banks/total-transaction-fees", deps.BankHandler.HandleTotalTransactionFees)
	mux.HandleFunc("GET /api/banks/total-transfer-amount", deps.BankHandler.HandleTotalTransferAmount)
	mux.HandleFunc("GET /api/banks/{id}", deps.BankHandler.HandleGetBank)
	mux.HandleFunc("PUT /api/banks/{id}", deps.BankHandler.HandleUpdateBank)
	mux.HandleFunc("DELETE /api/banks/{id}", deps.BankHandler.HandleDeleteBank)

	// Accounts
	mux.HandleFunc("GET /api/accounts", deps.AccountHandler.HandleListAccounts)
	mux.HandleFunc("POST /api/accounts", deps.AccountHandler.HandleCreateAccount)
	mux.HandleFunc("GET /api/accounts/{id}", deps.AccountHandler.HandleGetAccount)
	mux.HandleFunc("PUT /api/accounts/{id}", deps.AccountHandler.HandleUpdateAccount)
	mux.HandleFunc("DELETE /api/accounts/{id}", deps.AccountHandler.HandleDeleteAccount)

	// Transactions: money movement first, then CRUD
	mux.HandleFunc("POST /api/transactions/deposit", deps.TransactionHandler.HandleDeposit)
	mux.HandleFunc("POST /api/transactions/withdrawal", deps.TransactionHandler.HandleWithdrawal)
	mux.HandleFunc("POST /api/transactions/transfer", deps.TransactionHandler.HandleTransfer)
	mux.HandleFunc("GET /api/transactions", deps.TransactionHandler.HandleListTransactions)
	mux.HandleFunc("POST /api/transactions", deps.TransactionHandler.HandleCreateTransaction)
	mux.HandleFunc("GET /api/transactions/{id}", deps.TransactionHandler.HandleGetTransaction)
	mux.HandleFunc("PUT /api/transactions/{id}", deps.TransactionHandler.HandleUpdateTransaction)
	mux.HandleFunc("DELETE /api/transactions/{id}", deps.TransactionHandler.HandleDeleteTransaction)

	// Apply global middleware
	handler := middleware.RequestID(middleware.Logging(middleware.CORS(mux)))
	if cfg.Telemetry.Enabled {
		handler = middleware.Telemetry(middleware.Tracing(handler))
	}

	return handler
}
