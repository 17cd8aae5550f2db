package http

import (
	"context"

	"github.com/shopspring/decimal"

	"bankd/internal/domain/account"
	"bankd/internal/domain/bank"
	"bankd/internal/domain/transaction"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// MockBankRepo implements bank.Repository for testing
type MockBankRepo struct {
	CreateFunc  func(ctx context.Context, params bank.CreateParams) (*bank.Bank, error)
	GetByIDFunc func(ctx context.Context, id int64) (*bank.Bank, error)
	ListFunc    func(ctx context.Context) ([]*bank.Bank, error)
	UpdateFunc  func(ctx context.Context, id int64, params bank.UpdateParams) (*bank.Bank, error)
	DeleteFunc  func(ctx context.Context, id int64) error
	ExistsFunc  func(ctx context.Context, id int64) (bool, error)
}

func (m *MockBankRepo) Create(ctx context.Context, params bank.CreateParams) (*bank.Bank, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockBankRepo) GetByID(ctx context.Context, id int64) (*bank.Bank, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBankRepo) List(ctx context.Context) ([]*bank.Bank, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockBankRepo) Update(ctx context.Context, id int64, params bank.UpdateParams) (*bank.Bank, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, params)
	}
	return nil, nil
}

func (m *MockBankRepo) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockBankRepo) Exists(ctx context.Context, id int64) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

// MockAccountRepo implements account.Repository for testing
type MockAccountRepo struct {
	CreateFunc  func(ctx context.Context, params account.CreateParams) (*account.Account, error)
	GetByIDFunc func(ctx context.Context, id int64) (*account.Account, error)
	ListFunc    func(ctx context.Context) ([]*account.Account, error)
	UpdateFunc  func(ctx context.Context, id int64, params account.UpdateParams) (*account.Account, error)
	DeleteFunc  func(ctx context.Context, id int64) error
	ExistsFunc  func(ctx context.Context, id int64) (bool, error)
}

func (m *MockAccountRepo) Create(ctx context.Context, params account.CreateParams) (*account.Account, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockAccountRepo) GetByID(ctx context.Context, id int64) (*account.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, account.ErrAccountNotFound
}

func (m *MockAccountRepo) List(ctx context.Context) ([]*account.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockAccountRepo) Update(ctx context.Context, id int64, params account.UpdateParams) (*account.Account, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, params)
	}
	return nil, nil
}

func (m *MockAccountRepo) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockAccountRepo) Exists(ctx context.Context, id int64) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

// MockTransactionRepo implements transaction.Repository for testing
type MockTransactionRepo struct {
	GetByIDFunc        func(ctx context.Context, id int64) (*transaction.Transaction, error)
	ListFunc           func(ctx context.Context) ([]*transaction.Transaction, error)
	CreateFunc         func(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error)
	UpdateFunc         func(ctx context.Context, id int64, params transaction.UpdateParams) (*transaction.Transaction, error)
	DeleteFunc         func(ctx context.Context, id int64) error
	ExistsFunc         func(ctx context.Context, id int64) (bool, error)
	RecordMovementFunc func(ctx context.Context, changes []transaction.BalanceChange, params transaction.CreateParams) (*transaction.Transaction, error)
}

func (m *MockTransactionRepo) GetByID(ctx context.Context, id int64) (*transaction.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTransactionRepo) List(ctx context.Context) ([]*transaction.Transaction, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockTransactionRepo) Create(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockTransactionRepo) Update(ctx context.Context, id int64, params transaction.UpdateParams) (*transaction.Transaction, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, params)
	}
	return nil, nil
}

func (m *MockTransactionRepo) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockTransactionRepo) Exists(ctx context.Context, id int64) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

func (m *MockTransactionRepo) RecordMovement(ctx context.Context, changes []transaction.BalanceChange, params transaction.CreateParams) (*transaction.Transaction, error) {
	if m.RecordMovementFunc != nil {
		return m.RecordMovementFunc(ctx, changes, params)
	}
	return nil, nil
}

// echoMovement returns a transaction repo whose RecordMovement reflects the
// insert parameters back like the store would.
func echoMovement() *MockTransactionRepo {
	return &MockTransactionRepo{
		RecordMovementFunc: func(ctx context.Context, changes []transaction.BalanceChange, params transaction.CreateParams) (*transaction.Transaction, error) {
			return &transaction.Transaction{
				ID:                   1,
				Amount:               params.Amount,
				OriginatingAccountID: params.OriginatingAccountID,
				ResultingAccountID:   params.ResultingAccountID,
				Reason:               params.Reason,
			}, nil
		},
	}
}

func accountsByID(accs ...*account.Account) *MockAccountRepo {
	return &MockAccountRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*account.Account, error) {
			for _, acc := range accs {
				if acc.ID == id {
					return acc, nil
				}
			}
			return nil, account.ErrAccountNotFound
		},
	}
}
