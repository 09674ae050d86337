// Package store is the relational database the tour connects to.
//
// The tour only ever talks to the database through four operations:
//
//	connect(host, user, password, database) -> *Store
//	query  -> Users
//	prepare/bind/execute -> InsertUser
//	close  -> Close
//
// SQLite stands in for a networked server. Credentials.Database names the
// file <dir>/<database>.db; Host, User and Password are carried so the
// connect call has the usual shape and appear in diagnostics (never the
// password).
//
// # Drivers
//
//   - "sqlite3": github.com/mattn/go-sqlite3 (cgo, default)
//   - "sqlite":  modernc.org/sqlite (pure Go)
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// All listing queries use ORDER BY id ASC so output is stable across runs.
package store
