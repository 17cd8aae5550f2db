package transaction

import "context"

// Repository defines the interface for transaction data access
// This interface is defined in the domain layer, but implemented in the infrastructure layer
type Repository interface {
	// GetByID retrieves a transaction by its ID
	GetByID(ctx context.Context, id int64) (*Transaction, error)

	// List retrieves all transactions
	List(ctx context.Context) ([]*Transaction, error)

	// Create inserts a transaction row; the store assigns the ID
	Create(ctx context.Context, params CreateParams) (*Transaction, error)

	// Update overwrites all mutable fields of an existing transaction
	Update(ctx context.Context, id int64, params UpdateParams) (*Transaction, error)

	// Delete removes a transaction
	Delete(ctx context.Context, id int64) error

	// Exists checks if a transaction with the given ID exists
	Exists(ctx context.Context, id int64) (bool, error)

	// RecordMovement applies the balance changes and inserts the transaction
	// row inside one database transaction: either all mutations commit or
	// none do.
	RecordMovement(ctx context.Context, changes []BalanceChange, params CreateParams) (*Transaction, error)
}
