package account

import "context"

// Repository defines the interface for account data access
// This interface is defined in the domain layer, but implemented in the infrastructure layer
type Repository interface {
	// Create creates a new account; the store assigns the ID
	Create(ctx context.Context, params CreateParams) (*Account, error)

	// GetByID retrieves an account by its ID
	GetByID(ctx context.Context, id int64) (*Account, error)

	// List retrieves all accounts
	List(ctx context.Context) ([]*Account, error)

	// Update overwrites the mutable fields of an existing account
	Update(ctx context.Context, id int64, params UpdateParams) (*Account, error)

	// Delete removes an account; dependent transactions are removed by the store
	Delete(ctx context.Context, id int64) error

	// Exists checks if an account with the given ID exists
	Exists(ctx context.Context, id int64) (bool, error)
}
