// Package testdb provides database helpers for tests.
//
// Every call to New opens a private, migrated, in-memory SQLite database, so
// tests that each use their own database can run with t.Parallel() without
// interfering with each other. Nothing needs to be cleaned up by hand: the
// database disappears when the connection registered with t.Cleanup closes.
//
// # Basic Usage
//
//	func TestMyFeature(t *testing.T) {
//	    t.Parallel()
//
//	    db := testdb.New(t)
//	    exercises := sqlstore.NewExerciseStore(db, testdb.Dialect, nil)
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        // work against exercises.WithTx(tx); the transaction is rolled back
//	    })
//	}
//
// Files built with the integration tag add NewPostgres, which starts a
// PostgreSQL container with testcontainers-go and migrates it.
package testdb
