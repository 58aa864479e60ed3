// Package sqlstore provides the database/sql implementations of the store
// interfaces defined in the internal/store package. The same stores run
// against PostgreSQL (through the pgx stdlib driver) and SQLite (through the
// pure Go modernc.org/sqlite driver); queries are written once with "?"
// placeholders and rebound for the active Dialect.
//
// The package also owns the embedded goose migrations for both dialects and
// the translation of driver constraint errors into store sentinel errors.
package sqlstore
