package bank

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Domain errors
var (
	ErrBankNotFound = errors.New("bank not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Bank represents a bank domain entity. The running-total and per-bank fee
// columns are stored and editable but the fee calculation itself reads the
// shared constants, not these fields.
type Bank struct {
	ID                         int64           `json:"bankId"`
	Name                       string          `json:"bankName"`
	TotalTransactionFeeAmount  decimal.Decimal `json:"totalTransactionFeeAmount"`
	TotalTransferAmount        decimal.Decimal `json:"totalTransferAmount"`
	TransactionFlatFeeAmount   decimal.Decimal `json:"transactionFlatFeeAmount"`
	TransactionPercentFeeValue decimal.Decimal `json:"transactionPercentFeeValue"`
	CreatedAt                  time.Time       `json:"createdAt"`
	UpdatedAt                  time.Time       `json:"updatedAt"`
}

// CreateParams contains parameters for creating a new bank
type CreateParams struct {
	Name                       string
	TotalTransactionFeeAmount  decimal.Decimal
	TotalTransferAmount        decimal.Decimal
	TransactionFlatFeeAmount   decimal.Decimal
	TransactionPercentFeeValue decimal.Decimal
}

// Validate validates the create parameters
func (p CreateParams) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: bank name is required", ErrInvalidInput)
	}
	return nil
}

// UpdateParams contains parameters for updating a bank. Updates overwrite all
// five mutable fields.
type UpdateParams struct {
	Name                       string
	TotalTransactionFeeAmount  decimal.Decimal
	TotalTransferAmount        decimal.Decimal
	TransactionFlatFeeAmount   decimal.Decimal
	TransactionPercentFeeValue decimal.Decimal
}

// Validate validates the update parameters
func (p UpdateParams) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: bank name is required", ErrInvalidInput)
	}
	return nil
}
