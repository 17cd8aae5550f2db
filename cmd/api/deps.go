package main

import (
	"fmt"

	"bankd/internal/domain/account"
	"bankd/internal/domain/bank"
	"bankd/internal/domain/transaction"
	"bankd/internal/infrastructure/postgres"
	httphandlers "bankd/internal/interfaces/http"
	"bankd/internal/shared/config"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	BankHandler        *httphandlers.BankHandler
	AccountHandler     *httphandlers.AccountHandler
	TransactionHandler *httphandlers.TransactionHandler
}

// NewDependencies wires repositories, services and handlers over the database.
func NewDependencies(db *postgres.DB, cfg *config.Config) (*Dependencies, error) {
	bankRepo := postgres.NewBankRepository(db)
	accountRepo := postgres.NewAccountRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)

	feePolicy, err := transaction.PolicyFromName(cfg.Fees.Strategy)
	if err != nil {
		return nil, fmt.Errorf("invalid fee configuration: %w", err)
	}

	bankService := bank.NewService(bankRepo, accountRepo, transactionRepo)
	accountService := account.NewService(accountRepo)
	transactionService := transaction.NewService(transactionRepo, accountRepo, feePolicy)

	return &Dependencies{
		BankHandler:        httphandlers.NewBankHandler(bankService),
		AccountHandler:     httphandlers.NewAccountHandler(accountService),
		TransactionHandler: httphandlers.NewTransactionHandler(transactionService),
	}, nil
}
