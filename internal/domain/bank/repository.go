package bank

import "context"

// Repository defines the interface for bank data access
// This interface is defined in the domain layer, but implemented in the infrastructure layer
type Repository interface {
	// Create creates a new bank; the store assigns the ID
	Create(ctx context.Context, params CreateParams) (*Bank, error)

	// GetByID retrieves a bank by its ID
	GetByID(ctx context.Context, id int64) (*Bank, error)

	// List retrieves all banks
	List(ctx context.Context) ([]*Bank, error)

	// Update overwrites the mutable fields of an existing bank
	Update(ctx context.Context, id int64, params UpdateParams) (*Bank, error)

	// Delete removes a bank; dependent accounts are removed by the store
	Delete(ctx context.Context, id int64) error

	// Exists checks if a bank with the given ID exists
	Exists(ctx context.Context, id int64) (bool, error)
}
