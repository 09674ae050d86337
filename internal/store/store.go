package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 0 - Initial schema (pre-migration)
// 1 - Added index on users.email
const currentSchemaVersion = 1

// Supported database/sql driver names.
const (
	DriverCGO  = "sqlite3"
	DriverPure = "sqlite"
)

// ErrConnect matches every failure to establish a connection.
var ErrConnect = errors.New("connection failed")

// ConnectError reports a failed Connect. Err is the underlying cause (the
// driver error when the database could not be opened).
type ConnectError struct {
	Credentials Credentials
	Err         error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrConnect, e.Credentials, e.Err)
}

// Unwrap exposes both ErrConnect and the cause to errors.Is and errors.As.
func (e *ConnectError) Unwrap() []error {
	return []error{ErrConnect, e.Err}
}

// Credentials are the connection parameters.
type Credentials struct {
	Host     string
	User     string
	Password string
	Database string
}

// String renders the credentials for logs with the password masked.
func (c Credentials) String() string {
	pass := ""
	if c.Password != "" {
		pass = ":***"
	}
	return fmt.Sprintf("%s%s@%s/%s", c.User, pass, c.Host, c.Database)
}

// Dialer opens connections. Dir is where database files live; Driver is one
// of DriverCGO or DriverPure (empty means DriverCGO).
type Dialer struct {
	Dir    string
	Driver string
}

// Store is one open connection to the database.
type Store struct {
	db *sql.DB
}

// Connect opens the database named by creds.Database, applying pragmas and
// migrations. Any failure is returned as a *ConnectError.
func (d Dialer) Connect(ctx context.Context, creds Credentials) (*Store, error) {
	if creds.Database == "" {
		return nil, &ConnectError{Credentials: creds, Err: errors.New("database name is empty")}
	}
	driver := d.Driver
	if driver == "" {
		driver = DriverCGO
	}
	if driver != DriverCGO && driver != DriverPure {
		return nil, &ConnectError{Credentials: creds, Err: fmt.Errorf("unknown driver %q", driver)}
	}

	s, err := Open(ctx, driver, filepath.Join(d.Dir, creds.Database+".db"))
	if err != nil {
		return nil, &ConnectError{Credentials: creds, Err: err}
	}
	return s, nil
}

// Open creates or opens a SQLite database at the given path.
// Applies required pragmas and migrations automatically.
//
// This function is idempotent - safe to call multiple times.
func Open(ctx context.Context, driver, path string) (*Store, error) {
	db, err := sql.Open(driver, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Verify connection works
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if err := applySchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// applySchema creates tables if they don't exist and runs migrations.
func applySchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// runMigrations applies incremental schema migrations based on user_version.
func runMigrations(ctx context.Context, db *sql.DB) error {
	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}

	if version < 1 {
		if err := migrateToV1(ctx, db); err != nil {
			return err
		}
	}

	if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}

	return nil
}

// migrateToV1 indexes users by email.
func migrateToV1(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_users_email
		ON users(email)
	`)
	if err != nil {
		return fmt.Errorf("migrate to v1: %w", err)
	}
	return nil
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (s *Store) verifyPragma(name, expected string) error {
	var value string
	query := fmt.Sprintf("PRAGMA %s", name)
	if err := s.db.QueryRow(query).Scan(&value); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}
