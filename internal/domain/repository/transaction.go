package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to run multi-record writes atomically without
// depending on a specific DB driver like GORM.
//
// Atomicity is mandatory for purchase fulfillment: the already-purchased
// check, the purchase-record insert, and the library-entry upsert must commit
// or roll back as one unit. There is no non-transactional fallback.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations obtained from the
	// factory use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so all operations within it share one database connection.
type RepositoryFactory interface {
	// NewTransactionRepository returns a TransactionRepository bound to the current transaction.
	NewTransactionRepository() TransactionRepository

	// NewLibraryRepository returns a LibraryRepository bound to the current transaction.
	NewLibraryRepository() LibraryRepository
}
