package testdb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/phrazzld/workout-api/internal/platform/sqlstore"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// Dialect is the dialect of databases returned by New.
const Dialect = sqlstore.SQLite

var dbCounter atomic.Int64

// DSN returns a connection string for a fresh in-memory SQLite database.
// Each call names a distinct database.
func DSN() string {
	return fmt.Sprintf("file:testdb_%d?mode=memory&_pragma=foreign_keys(1)", dbCounter.Add(1))
}

// New opens a migrated in-memory SQLite database and closes it when the test ends.
func New(t *testing.T) *sql.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	db, err := sqlstore.Open(ctx, Dialect, DSN(), 1, discardLogger())
	require.NoError(t, err, "Failed to open test database")
	t.Cleanup(func() {
		_ = db.Close()
	})

	err = sqlstore.Migrate(ctx, db, Dialect, sqlstore.MigrateUp, discardLogger())
	require.NoError(t, err, "Failed to run migrations")

	return db
}

// WithTx runs fn inside a transaction that is always rolled back afterwards.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err, "Failed to begin transaction")

	defer func() {
		// sql.ErrTxDone is expected if fn already committed or rolled back
		_ = tx.Rollback()
	}()

	fn(t, tx)
}

// discardLogger keeps migration chatter out of test output.
func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
