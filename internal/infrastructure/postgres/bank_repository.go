package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bankd/internal/domain/bank"
)

// BankRepository implements the bank.Repository interface for PostgreSQL
type BankRepository struct {
	db *DB
}

// NewBankRepository creates a new PostgreSQL bank repository
func NewBankRepository(db *DB) *BankRepository {
	return &BankRepository{db: db}
}

const bankColumns = `id, name, total_transaction_fee_amount, total_transfer_amount,
	transaction_flat_fee_amount, transaction_percent_fee_value, created_at, updated_at`

// Create creates a new bank
func (r *BankRepository) Create(ctx context.Context, params bank.CreateParams) (*bank.Bank, error) {
	query := `
		INSERT INTO banks (name, total_transaction_fee_amount, total_transfer_amount,
			transaction_flat_fee_amount, transaction_percent_fee_value)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + bankColumns

	var b bank.Bank
	err := r.db.QueryRowContext(
		ctx, query,
		params.Name, params.TotalTransactionFeeAmount, params.TotalTransferAmount,
		params.TransactionFlatFeeAmount, params.TransactionPercentFeeValue,
	).Scan(
		&b.ID, &b.Name, &b.TotalTransactionFeeAmount, &b.TotalTransferAmount,
		&b.TransactionFlatFeeAmount, &b.TransactionPercentFeeValue,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create bank: %w", err)
	}

	return &b, nil
}

// GetByID retrieves a bank by its ID
func (r *BankRepository) GetByID(ctx context.Context, id int64) (*bank.Bank, error) {
	query := `SELECT ` + bankColumns + ` FROM banks WHERE id = $1`

	var b bank.Bank
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.Name, &b.TotalTransactionFeeAmount, &b.TotalTransferAmount,
		&b.TransactionFlatFeeAmount, &b.TransactionPercentFeeValue,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, bank.ErrBankNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bank: %w", err)
	}

	return &b, nil
}

// List retrieves all banks
func (r *BankRepository) List(ctx context.Context) ([]*bank.Bank, error) {
	query := `SELECT ` + bankColumns + ` FROM banks ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list banks: %w", err)
	}
	defer rows.Close()

	var banks []*bank.Bank
	for rows.Next() {
		var b bank.Bank
		err := rows.Scan(
			&b.ID, &b.Name, &b.TotalTransactionFeeAmount, &b.TotalTransferAmount,
			&b.TransactionFlatFeeAmount, &b.TransactionPercentFeeValue,
			&b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank: %w", err)
		}
		banks = append(banks, &b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating banks: %w", err)
	}

	return banks, nil
}

// Update overwrites the mutable fields of an existing bank
func (r *BankRepository) Update(ctx context.Context, id int64, params bank.UpdateParams) (*bank.Bank, error) {
	query := `
		UPDATE banks
		SET name = $1,
		    total_transaction_fee_amount = $2,
		    total_transfer_amount = $3,
		    transaction_flat_fee_amount = $4,
		    transaction_percent_fee_value = $5,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
		RETURNING ` + bankColumns

	var b bank.Bank
	err := r.db.QueryRowContext(
		ctx, query,
		params.Name, params.TotalTransactionFeeAmount, params.TotalTransferAmount,
		params.TransactionFlatFeeAmount, params.TransactionPercentFeeValue, id,
	).Scan(
		&b.ID, &b.Name, &b.TotalTransactionFeeAmount, &b.TotalTransferAmount,
		&b.TransactionFlatFeeAmount, &b.TransactionPercentFeeValue,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, bank.ErrBankNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update bank: %w", err)
	}

	return &b, nil
}

// Delete removes a bank. Dependent accounts are removed by the schema's
// cascade rule.
func (r *BankRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM banks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bank: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return bank.ErrBankNotFound
	}

	return nil
}

// Exists checks if a bank with the given ID exists
func (r *BankRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM banks WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check bank existence: %w", err)
	}
	return exists, nil
}
