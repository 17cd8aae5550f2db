package transaction

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Reason tags why a transaction row exists. System-generated rows use one of
// the three constants; manual create/update calls may carry arbitrary text.
// Transfer reporting matches the Transfer constant exactly.
type Reason string

const (
	ReasonDeposit    Reason = "Deposit"
	ReasonWithdrawal Reason = "Withdrawal"
	ReasonTransfer   Reason = "Transfer"
)

// Domain errors
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrInvalidInput        = errors.New("invalid input")
)

// Transaction represents a single ledger row. Amount is signed: positive for
// deposits, negated for withdrawals and transfers, so it reflects the net
// effect on the originating account. Fees are never part of the stored amount.
type Transaction struct {
	ID                   int64           `json:"transactionId"`
	Amount               decimal.Decimal `json:"amount"`
	OriginatingAccountID int64           `json:"originatingAccountId"`
	ResultingAccountID   *int64          `json:"resultingAccountId,omitempty"`
	Reason               Reason          `json:"transactionReason"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// CreateParams contains parameters for creating a new transaction row
type CreateParams struct {
	Amount               decimal.Decimal
	OriginatingAccountID int64
	ResultingAccountID   *int64
	Reason               Reason
}

// Validate validates the create parameters
func (p CreateParams) Validate() error {
	if p.OriginatingAccountID <= 0 {
		return fmt.Errorf("%w: valid originating account ID is required", ErrInvalidInput)
	}
	if p.Reason == "" {
		return fmt.Errorf("%w: transaction reason is required", ErrInvalidInput)
	}
	return nil
}

// UpdateParams contains parameters for a full-field transaction update
type UpdateParams struct {
	Amount               decimal.Decimal
	OriginatingAccountID int64
	ResultingAccountID   *int64
	Reason               Reason
}

// Validate validates the update parameters
func (p UpdateParams) Validate() error {
	if p.OriginatingAccountID <= 0 {
		return fmt.Errorf("%w: valid originating account ID is required", ErrInvalidInput)
	}
	if p.Reason == "" {
		return fmt.Errorf("%w: transaction reason is required", ErrInvalidInput)
	}
	return nil
}

// BalanceChange is an absolute balance write applied together with a
// transaction insert inside one unit of work.
type BalanceChange struct {
	AccountID  int64
	NewBalance decimal.Decimal
}
