package bank

import (
	"context"

	"github.com/shopspring/decimal"

	"bankd/internal/domain/account"
	"bankd/internal/domain/transaction"
)

// Service contains the business logic for bank operations and the aggregate
// reports computed over the transaction ledger.
type Service struct {
	repo         Repository
	accounts     account.Repository
	transactions transaction.Repository
}

// NewService creates a new bank service
func NewService(repo Repository, accounts account.Repository, transactions transaction.Repository) *Service {
	return &Service{repo: repo, accounts: accounts, transactions: transactions}
}

// CreateBank creates a new bank after required-field validation
func (s *Service) CreateBank(ctx context.Context, params CreateParams) (*Bank, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, params)
}

// GetBank retrieves a bank by ID
func (s *Service) GetBank(ctx context.Context, id int64) (*Bank, error) {
	return s.repo.GetByID(ctx, id)
}

// ListBanks retrieves all banks
func (s *Service) ListBanks(ctx context.Context) ([]*Bank, error) {
	return s.repo.List(ctx)
}

// UpdateBank overwrites all five mutable fields of an existing bank.
// Returns ErrBankNotFound when the ID does not exist; no write happens.
func (s *Service) UpdateBank(ctx context.Context, id int64, params UpdateParams) (*Bank, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, params)
}

// DeleteBank removes a bank. Dependent accounts (and their transactions) are
// removed by the store's cascade policy.
func (s *Service) DeleteBank(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrBankNotFound
	}
	return s.repo.Delete(ctx, id)
}

// ListAllAccounts returns every account in the store, not scoped to a
// specific bank. Known limitation carried over from the original surface.
func (s *Service) ListAllAccounts(ctx context.Context) ([]*account.Account, error) {
	return s.accounts.List(ctx)
}

// TotalTransactionFees folds the per-transaction fee over the full ledger.
// The fee uses the signed stored amount, so negated withdrawal and transfer
// rows reduce the total. Returns zero for an empty ledger.
func (s *Service) TotalTransactionFees(ctx context.Context) (decimal.Decimal, error) {
	txs, err := s.transactions.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(transaction.Fee(tx.Amount))
	}
	return total, nil
}

// TotalTransferAmount sums the absolute stored amount of every row whose
// reason is exactly Transfer. Rows with any other reason are ignored.
// Returns zero when none match.
func (s *Service) TotalTransferAmount(ctx context.Context) (decimal.Decimal, error) {
	txs, err := s.transactions.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, tx := range txs {
		if tx.Reason == transaction.ReasonTransfer {
			total = total.Add(tx.Amount.Abs())
		}
	}
	return total, nil
}
