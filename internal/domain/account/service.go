package account

import (
	"context"
)

// Service contains the business logic for account operations
type Service struct {
	repo Repository
}

// NewService creates a new account service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateAccount creates a new account after required-field validation
func (s *Service) CreateAccount(ctx context.Context, params CreateParams) (*Account, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, params)
}

// GetAccount retrieves an account by ID
func (s *Service) GetAccount(ctx context.Context, id int64) (*Account, error) {
	return s.repo.GetByID(ctx, id)
}

// ListAccounts retrieves all accounts
func (s *Service) ListAccounts(ctx context.Context) ([]*Account, error) {
	return s.repo.List(ctx)
}

// UpdateAccount overwrites the mutable fields of an existing account.
// Returns ErrAccountNotFound when the ID does not exist; no write happens.
func (s *Service) UpdateAccount(ctx context.Context, id int64, params UpdateParams) (*Account, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, params)
}

// DeleteAccount removes an account. Cascade semantics for dependent
// transactions are delegated to the store.
func (s *Service) DeleteAccount(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrAccountNotFound
	}
	return s.repo.Delete(ctx, id)
}
