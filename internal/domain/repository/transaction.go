package repository

import "context"

// TransactionManager runs a unit of work atomically. If fn returns an error the
// work is rolled back, otherwise it is committed.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	NewCredentialRepository() CredentialRepository
}
