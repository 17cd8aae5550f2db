package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"bankd/internal/domain/account"
)

// Service contains the money-movement logic: funds checks, fee application,
// balance mutation and ledger-row creation. Atomicity of the persisted result
// is delegated to the repository's unit of work.
type Service struct {
	repo     Repository
	accounts account.Repository
	fees     FeePolicy
}

// NewService creates a new transaction service. A nil policy selects the
// flat-plus-percent default.
func NewService(repo Repository, accounts account.Repository, fees FeePolicy) *Service {
	if fees == nil {
		fees = FlatPlusPercentPolicy{}
	}
	return &Service{repo: repo, accounts: accounts, fees: fees}
}

// Deposit credits an account and records a Deposit row. There is no funds
// check for deposits. The stored amount is the raw requested amount, not the
// fee-adjusted credit.
func (s *Service) Deposit(ctx context.Context, accountID int64, amount decimal.Decimal) (*Transaction, error) {
	acc, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	credit := s.fees.DepositCredit(amount)
	change := BalanceChange{AccountID: acc.ID, NewBalance: acc.Balance.Add(credit)}

	return s.repo.RecordMovement(ctx, []BalanceChange{change}, CreateParams{
		Amount:               amount,
		OriginatingAccountID: acc.ID,
		Reason:               ReasonDeposit,
	})
}

// Withdraw debits an account and records a Withdrawal row with the negated
// requested amount. Fails with ErrInsufficientFunds when the balance does not
// cover the policy's required threshold; the balance is left untouched.
func (s *Service) Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal) (*Transaction, error) {
	acc, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	debit, required := s.fees.WithdrawalDebit(amount)
	if acc.Balance.LessThan(required) {
		return nil, ErrInsufficientFunds
	}

	change := BalanceChange{AccountID: acc.ID, NewBalance: acc.Balance.Sub(debit)}

	return s.repo.RecordMovement(ctx, []BalanceChange{change}, CreateParams{
		Amount:               amount.Neg(),
		OriginatingAccountID: acc.ID,
		Reason:               ReasonWithdrawal,
	})
}

// Transfer moves the requested amount from source to destination. The source
// absorbs any fee; the destination always receives exactly the nominal
// amount. The recorded row carries the negated requested amount and both
// account references.
func (s *Service) Transfer(ctx context.Context, sourceID, destinationID int64, amount decimal.Decimal) (*Transaction, error) {
	src, err := s.accounts.GetByID(ctx, sourceID)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return nil, fmt.Errorf("source account: %w", account.ErrAccountNotFound)
		}
		return nil, err
	}

	dst, err := s.accounts.GetByID(ctx, destinationID)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return nil, fmt.Errorf("target account: %w", account.ErrAccountNotFound)
		}
		return nil, err
	}

	debit, required := s.fees.TransferDebit(amount)
	if src.Balance.LessThan(required) {
		return nil, ErrInsufficientFunds
	}

	changes := []BalanceChange{
		{AccountID: src.ID, NewBalance: src.Balance.Sub(debit)},
		{AccountID: dst.ID, NewBalance: dst.Balance.Add(amount)},
	}

	resultingID := dst.ID
	return s.repo.RecordMovement(ctx, changes, CreateParams{
		Amount:               amount.Neg(),
		OriginatingAccountID: src.ID,
		ResultingAccountID:   &resultingID,
		Reason:               ReasonTransfer,
	})
}

// GetTransaction retrieves a transaction by ID
func (s *Service) GetTransaction(ctx context.Context, id int64) (*Transaction, error) {
	return s.repo.GetByID(ctx, id)
}

// ListTransactions retrieves all transactions
func (s *Service) ListTransactions(ctx context.Context) ([]*Transaction, error) {
	return s.repo.List(ctx)
}

// CreateTransaction inserts a manual transaction row. Manual rows may carry
// an arbitrary reason; no balance is touched.
func (s *Service) CreateTransaction(ctx context.Context, params CreateParams) (*Transaction, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, params)
}

// UpdateTransaction overwrites all mutable fields of an existing transaction.
// Returns ErrTransactionNotFound when the ID does not exist; no write happens.
func (s *Service) UpdateTransaction(ctx context.Context, id int64, params UpdateParams) (*Transaction, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, params)
}

// DeleteTransaction removes a transaction row
func (s *Service) DeleteTransaction(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrTransactionNotFound
	}
	return s.repo.Delete(ctx, id)
}
