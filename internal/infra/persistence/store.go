// Package persistence selects the credential store backend.
package persistence

import (
	"log/slog"

	"authflow/config"
	"authflow/internal/domain/repository"
	"authflow/internal/errors"
	"authflow/internal/infra/persistence/memory"
	"authflow/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

type StoreParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// StoreResult provides both repository contracts from one backend.
type StoreResult struct {
	fx.Out

	CredentialRepo repository.CredentialRepository
	TxManager      repository.TransactionManager
}

// NewCredentialStore builds the backend named by storage.driver. Postgres is
// only dialled when selected.
func NewCredentialStore(params StoreParams) (StoreResult, error) {
	driver := config.StorageDriverPostgres
	if params.Config.Storage != nil && params.Config.Storage.Driver != "" {
		driver = params.Config.Storage.Driver
	}

	switch driver {
	case config.StorageDriverMemory:
		params.Logger.Warn("Using in-memory credential store; records are lost on exit")
		store := memory.NewCredentialStore()

		return StoreResult{CredentialRepo: store, TxManager: store}, nil
	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return StoreResult{}, err
		}

		return StoreResult{
			CredentialRepo: postgres.NewCredentialRepository(db),
			TxManager:      postgres.NewTransactionManager(db),
		}, nil
	default:
		return StoreResult{}, errors.Errorf("unknown storage driver %q", driver)
	}
}
