package persistence

import (
	"io"
	"log/slog"
	"testing"

	"authflow/config"
	"authflow/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newStoreParams(t *testing.T, storage *config.StorageConfig) StoreParams {
	return StoreParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{Storage: storage},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewCredentialStore_Memory(t *testing.T) {
	result, err := NewCredentialStore(newStoreParams(t, &config.StorageConfig{Driver: config.StorageDriverMemory}))

	require.NoError(t, err)
	assert.IsType(t, &memory.CredentialStore{}, result.CredentialRepo)
	assert.Same(t, result.CredentialRepo, result.TxManager)
}

func TestNewCredentialStore_PostgresNeedsConfig(t *testing.T) {
	_, err := NewCredentialStore(newStoreParams(t, nil))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres configuration is missing")
}

func TestNewCredentialStore_UnknownDriver(t *testing.T) {
	_, err := NewCredentialStore(newStoreParams(t, &config.StorageConfig{Driver: "sqlite"}))

	require.Error(t, err)
}
