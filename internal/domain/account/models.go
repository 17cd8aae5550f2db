package account

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Domain errors
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidInput    = errors.New("invalid input")
)

// Account represents a customer account domain entity. Balance may go
// negative: the only floors are the withdrawal/transfer pre-checks performed
// by the transaction service.
type Account struct {
	ID        int64           `json:"accountId"`
	UserName  string          `json:"userName"`
	Balance   decimal.Decimal `json:"balance"`
	BankID    int64           `json:"bankId"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// CreateParams contains parameters for creating a new account
type CreateParams struct {
	UserName string
	Balance  decimal.Decimal
	BankID   int64
}

// Validate validates the create parameters
func (p CreateParams) Validate() error {
	if p.UserName == "" {
		return fmt.Errorf("%w: user name is required", ErrInvalidInput)
	}
	if p.BankID <= 0 {
		return fmt.Errorf("%w: valid bank ID is required", ErrInvalidInput)
	}
	return nil
}

// UpdateParams contains parameters for updating an account. Updates overwrite
// userName, balance and the owning bank; nothing else.
type UpdateParams struct {
	UserName string
	Balance  decimal.Decimal
	BankID   int64
}

// Validate validates the update parameters
func (p UpdateParams) Validate() error {
	if p.UserName == "" {
		return fmt.Errorf("%w: user name is required", ErrInvalidInput)
	}
	if p.BankID <= 0 {
		return fmt.Errorf("%w: valid bank ID is required", ErrInvalidInput)
	}
	return nil
}
