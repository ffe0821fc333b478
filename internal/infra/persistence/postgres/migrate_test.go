package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// schemaAtHeadConnector answers the queries golang-migrate issues against a
// database whose schema is already at the latest embedded version.
type schemaAtHeadConnector struct{}

func (c schemaAtHeadConnector) Connect(context.Context) (driver.Conn, error) {
	return schemaAtHeadConn{}, nil
}

func (c schemaAtHeadConnector) Driver() driver.Driver { return schemaAtHeadDriver{} }

type schemaAtHeadDriver struct{}

func (schemaAtHeadDriver) Open(string) (driver.Conn, error) { return schemaAtHeadConn{}, nil }

type schemaAtHeadConn struct{}

func (schemaAtHeadConn) Prepare(query string) (driver.Stmt, error) {
	return nil, fmt.Errorf("prepare not supported: %q", query)
}

func (schemaAtHeadConn) Close() error { return nil }

func (schemaAtHeadConn) Begin() (driver.Tx, error) { return schemaAtHeadTx{}, nil }

func (schemaAtHeadConn) ExecContext(context.Context, string, []driver.NamedValue) (driver.Result, error) {
	return driver.RowsAffected(0), nil
}

func (schemaAtHeadConn) QueryContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Rows, error) {
	switch {
	case strings.Contains(query, "CURRENT_DATABASE()"):
		return &staticRows{columns: []string{"current_database"}, values: []driver.Value{"users"}}, nil
	case strings.Contains(query, "CURRENT_SCHEMA()"):
		return &staticRows{columns: []string{"current_schema"}, values: []driver.Value{"public"}}, nil
	case strings.Contains(query, "COUNT(1)"):
		return &staticRows{columns: []string{"count"}, values: []driver.Value{int64(1)}}, nil
	case strings.Contains(query, "SELECT version, dirty"):
		return &staticRows{columns: []string{"version", "dirty"}, values: []driver.Value{int64(1), false}}, nil
	}

	return nil, fmt.Errorf("unexpected query: %q", query)
}

type schemaAtHeadTx struct{}

func (schemaAtHeadTx) Commit() error   { return nil }
func (schemaAtHeadTx) Rollback() error { return nil }

// staticRows yields a single row.
type staticRows struct {
	columns []string
	values  []driver.Value
	done    bool
}

func (r *staticRows) Columns() []string { return r.columns }

func (r *staticRows) Close() error { return nil }

func (r *staticRows) Next(dest []driver.Value) error {
	if r.done {
		return io.EOF
	}
	r.done = true
	copy(dest, r.values)

	return nil
}

func TestMigrateOwned_LeavesApplicationPoolOpen(t *testing.T) {
	appDB := sql.OpenDB(schemaAtHeadConnector{})
	t.Cleanup(func() { _ = appDB.Close() })
	require.NoError(t, appDB.Ping())

	migrationDB := sql.OpenDB(schemaAtHeadConnector{})

	require.NoError(t, migrateOwned(migrationDB))

	assert.NoError(t, appDB.Ping(), "application pool must survive migrations")
	assert.ErrorContains(t, migrationDB.Ping(), "database is closed")
}

func TestMigrate_InvalidDSN(t *testing.T) {
	err := Migrate("postgres://%zz")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse migration dsn")
}
