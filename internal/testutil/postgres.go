// Package testutil starts throwaway infrastructure for integration tests.
package testutil

import (
	"os/exec"
	"testing"

	"authflow/internal/infra/persistence/postgres"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// StartPostgres runs postgres in docker, applies the embedded migrations and
// returns a gorm handle with its DSN. The test is skipped under -short or
// without docker.
// The container is removed when the test finishes.
func StartPostgres(t *testing.T) (*gorm.DB, string) {
	t.Helper()

	if testing.Short() {
		t.Skip("integration test skipped in -short mode")
	}
	if out, err := exec.Command("docker", "info", "--format", "{{.ServerVersion}}").CombinedOutput(); err != nil {
		t.Skipf("docker not available: %s", out)
	}

	container, err := tcpostgres.Run(t.Context(),
		"postgres:17-alpine",
		tcpostgres.WithDatabase("users-test"),
		tcpostgres.WithUsername("users"),
		tcpostgres.WithPassword("pwd"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err, "start postgres container")

	dsn, err := container.ConnectionString(t.Context(), "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, postgres.Migrate(dsn), "apply migrations")

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "connect to postgres at %s", dsn)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db, dsn
}
