package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bankd/internal/domain/account"
	"bankd/internal/domain/transaction"
)

// TransactionRepository implements the transaction.Repository interface for PostgreSQL
type TransactionRepository struct {
	db *DB
}

// NewTransactionRepository creates a new PostgreSQL transaction repository
func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `id, amount, originating_account_id, resulting_account_id, reason, created_at`

const insertTransactionQuery = `
	INSERT INTO transactions (amount, originating_account_id, resulting_account_id, reason)
	VALUES ($1, $2, $3, $4)
	RETURNING ` + transactionColumns

func scanTransaction(scan func(dest ...any) error) (*transaction.Transaction, error) {
	var tx transaction.Transaction
	var resultingID sql.NullInt64

	err := scan(&tx.ID, &tx.Amount, &tx.OriginatingAccountID, &resultingID, &tx.Reason, &tx.CreatedAt)
	if err != nil {
		return nil, err
	}

	if resultingID.Valid {
		tx.ResultingAccountID = &resultingID.Int64
	}
	return &tx, nil
}

func nullInt64(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

// GetByID retrieves a transaction by its ID
func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (*transaction.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	tx, err := scanTransaction(r.db.QueryRowContext(ctx, query, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, transaction.ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return tx, nil
}

// List retrieves all transactions
func (r *TransactionRepository) List(ctx context.Context) ([]*transaction.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return txs, nil
}

// Create inserts a transaction row without touching any balance
func (r *TransactionRepository) Create(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error) {
	tx, err := scanTransaction(r.db.QueryRowContext(
		ctx, insertTransactionQuery,
		params.Amount, params.OriginatingAccountID, nullInt64(params.ResultingAccountID), params.Reason,
	).Scan)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return tx, nil
}

// Update overwrites all mutable fields of an existing transaction
func (r *TransactionRepository) Update(ctx context.Context, id int64, params transaction.UpdateParams) (*transaction.Transaction, error) {
	query := `
		UPDATE transactions
		SET amount = $1, originating_account_id = $2, resulting_account_id = $3, reason = $4
		WHERE id = $5
		RETURNING ` + transactionColumns

	tx, err := scanTransaction(r.db.QueryRowContext(
		ctx, query,
		params.Amount, params.OriginatingAccountID, nullInt64(params.ResultingAccountID), params.Reason, id,
	).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, transaction.ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return tx, nil
}

// Delete removes a transaction
func (r *TransactionRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return transaction.ErrTransactionNotFound
	}

	return nil
}

// Exists checks if a transaction with the given ID exists
func (r *TransactionRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM transactions WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check transaction existence: %w", err)
	}
	return exists, nil
}

// RecordMovement applies the balance writes and inserts the ledger row in one
// database transaction. If any statement fails, nothing commits.
func (r *TransactionRepository) RecordMovement(ctx context.Context, changes []transaction.BalanceChange, params transaction.CreateParams) (*transaction.Transaction, error) {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	for _, change := range changes {
		result, err := dbTx.ExecContext(ctx,
			`UPDATE accounts SET balance = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
			change.NewBalance, change.AccountID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to update balance for account %d: %w", change.AccountID, err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("failed to get affected rows: %w", err)
		}
		if rows == 0 {
			return nil, account.ErrAccountNotFound
		}
	}

	tx, err := scanTransaction(dbTx.QueryRowContext(
		ctx, insertTransactionQuery,
		params.Amount, params.OriginatingAccountID, nullInt64(params.ResultingAccountID), params.Reason,
	).Scan)
	if err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit movement: %w", err)
	}

	return tx, nil
}
