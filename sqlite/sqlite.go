// Package sqlite stores dataset snapshots in SQLite for offline use.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fwojciec/titlespec"
	"github.com/gofrs/flock"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB is the snapshot database. A snapshot is one dataset, its header, and
// its records in source order.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open connects to the snapshot database and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("open snapshot database: %w", err)
	}

	// One connection: snapshots are written by a single sync at a time and
	// an in-memory database exists only within its connection.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("connect to snapshot database: %w", err)
	}

	for _, pragma := range db.pragmas() {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("create snapshot schema: %w", err)
	}
	return nil
}

// pragmas returns the connection settings. WAL lets a running server read
// the snapshot while sync replaces it; it is unavailable in memory.
func (db *DB) pragmas() []string {
	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	if db.path != ":memory:" {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	return pragmas
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, opts)
}

// LockTimeout bounds how long Lock waits for another writer.
const LockTimeout = 10 * time.Second

// Lock takes an exclusive cross-process lock on the database file so only
// one sync writes a snapshot at a time. The returned function releases it.
// In-memory databases are private to the process and need no lock.
func (db *DB) Lock(ctx context.Context) (unlock func() error, err error) {
	if db.path == ":memory:" {
		return func() error { return nil }, nil
	}

	ctx, cancel := context.WithTimeout(ctx, LockTimeout)
	defer cancel()

	fl := flock.New(db.path + ".lock")
	locked, err := fl.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return nil, titlespec.Errorf(titlespec.ECONFLICT, "database %s is locked by another process", db.path)
	}
	if !locked {
		return nil, titlespec.Errorf(titlespec.ECONFLICT, "database %s is locked by another process", db.path)
	}
	return fl.Unlock, nil
}

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS datasets (
			id TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			version TEXT NOT NULL,
			is_full INTEGER NOT NULL DEFAULT 0,
			columns TEXT NOT NULL,
			loaded_at TEXT NOT NULL,
			synced_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS records (
			dataset_id TEXT NOT NULL REFERENCES datasets(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			file_name TEXT NOT NULL,
			title_code TEXT NOT NULL DEFAULT '',
			cells TEXT NOT NULL,
			PRIMARY KEY (dataset_id, position)
		);

		CREATE INDEX IF NOT EXISTS idx_records_title_code ON records(title_code, position);
		CREATE INDEX IF NOT EXISTS idx_records_file_name ON records(file_name, position);
	`

	_, err := db.db.Exec(schema)
	return err
}
