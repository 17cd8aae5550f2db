package postgres

import (
	"context"
	"fmt"
)

// schema carries the cascade rules the domain relies on: deleting a bank
// removes its accounts, deleting an account removes the transactions that
// reference it from either side.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS banks (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		total_transaction_fee_amount NUMERIC(19,4) NOT NULL DEFAULT 0,
		total_transfer_amount NUMERIC(19,4) NOT NULL DEFAULT 0,
		transaction_flat_fee_amount NUMERIC(19,4) NOT NULL DEFAULT 0,
		transaction_percent_fee_value NUMERIC(19,4) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS accounts (
		id BIGSERIAL PRIMARY KEY,
		user_name TEXT NOT NULL,
		balance NUMERIC(19,4) NOT NULL DEFAULT 0,
		bank_id BIGINT NOT NULL REFERENCES banks(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id BIGSERIAL PRIMARY KEY,
		amount NUMERIC(19,4) NOT NULL,
		originating_account_id BIGINT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
		resulting_account_id BIGINT REFERENCES accounts(id) ON DELETE CASCADE,
		reason TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_accounts_bank_id ON accounts(bank_id)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_originating ON transactions(originating_account_id)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_resulting ON transactions(resulting_account_id)`,
}

// Migrate creates the tables and indexes if they do not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
