// Package postgres implements the schema store on PostgreSQL through pgx.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/maloquacious/childsec/internal/logger"
	"github.com/maloquacious/childsec/internal/schema"
	"github.com/maloquacious/childsec/internal/store"
)

// PostgresStore implements the Store interface on a PostgreSQL database.
type PostgresStore struct {
	*store.Engine
	url string
}

var _ store.Store = (*PostgresStore)(nil)

// New creates a store for the database at url. Nothing is opened until Open.
func New(url string, log logger.Logger) *PostgresStore {
	return &PostgresStore{
		Engine: store.NewEngine(schema.Postgres, log),
		url:    url,
	}
}

// Open parses the connection URL, opens the handle and pings the server.
func (s *PostgresStore) Open(ctx context.Context) error {
	if s.DB() != nil {
		return nil
	}

	cfg, err := pgx.ParseConfig(s.url)
	if err != nil {
		return store.Unavailable("open", fmt.Errorf("failed to parse connection URL: %w", err))
	}

	db := stdlib.OpenDB(*cfg)
	// one caller at a time; a single connection keeps statements ordered
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return store.Unavailable("open", fmt.Errorf("failed to ping database: %w", err))
	}

	s.Attach(db)
	return nil
}
