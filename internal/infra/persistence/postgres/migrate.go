package postgres

import (
	"database/sql"
	"embed"

	"authflow/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies the embedded schema migrations over a dedicated pool opened
// for dsn. Already applied migrations are a no-op.
func Migrate(dsn string) error {
	connConfig, err := pgx.ParseConfig(dsn)
	if err != nil {
		return errors.Wrap(err, "parse migration dsn")
	}

	return migrateOwned(stdlib.OpenDB(*connConfig))
}

// migrateOwned runs the migrations on migrationDB and closes it. The migrate
// driver closes the pool it was built on, so migrationDB must never be a pool
// shared with repositories.
func migrateOwned(migrationDB *sql.DB) error {
	defer migrationDB.Close() //nolint:errcheck // idempotent after migrator.Close

	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return errors.Wrap(err, "open embedded migrations")
	}

	driver, err := migratepgx.WithInstance(migrationDB, &migratepgx.Config{})
	if err != nil {
		return errors.Wrap(err, "prepare migration driver")
	}

	migrator, err := migrate.NewWithInstance("iofs", source, "pgx5", driver)
	if err != nil {
		return errors.Wrap(err, "prepare migrator")
	}
	defer migrator.Close() //nolint:errcheck

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "apply migrations")
	}

	return nil
}
