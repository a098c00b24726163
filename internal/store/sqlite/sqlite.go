package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/maloquacious/childsec/internal/logger"
	"github.com/maloquacious/childsec/internal/schema"
	"github.com/maloquacious/childsec/internal/store"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements the Store interface using modernc.org/sqlite.
type SQLiteStore struct {
	*store.Engine
	dbPath string
}

var _ store.Store = (*SQLiteStore)(nil)

// New creates a new SQLiteStore. Nothing is opened until Open.
func New(dbPath string, log logger.Logger) *SQLiteStore {
	return &SQLiteStore{
		Engine: store.NewEngine(schema.SQLite, log),
		dbPath: dbPath,
	}
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.dbPath
}

// Open opens the SQLite database with safe defaults.
// The file is created if it does not exist; its directory must.
func (s *SQLiteStore) Open(ctx context.Context) error {
	if s.DB() != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.dbPath)
	if err != nil {
		return store.Unavailable("open", fmt.Errorf("failed to open database: %w", err))
	}

	// Pragmas are per connection, so keep exactly one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return store.Unavailable("open", fmt.Errorf("failed to connect to database: %w", err))
	}

	// Apply safe defaults
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return store.Unavailable("open", fmt.Errorf("failed to set pragma %q: %w", pragma, err))
		}
	}

	s.Attach(db)
	return nil
}

// CheckState returns the current state of the datastore.
// A database file that does not exist is StateMissing even when closed.
func (s *SQLiteStore) CheckState(ctx context.Context) (store.StoreState, error) {
	if s.dbPath != ":memory:" {
		exists, err := store.CheckExists(s.dbPath)
		if err != nil {
			return store.StateMissing, err
		}
		if !exists {
			return store.StateMissing, nil
		}
	}
	return s.Engine.CheckState(ctx)
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (s *SQLiteStore) verifyPragma(name, expected string) error {
	var value string
	if err := s.DB().QueryRow("PRAGMA " + name).Scan(&value); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}
