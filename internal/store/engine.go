package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/maloquacious/childsec/internal/logger"
	"github.com/maloquacious/childsec/internal/schema"
)

// Engine runs the schema statements against an open database handle.
// Backends embed it and attach the handle they open.
type Engine struct {
	db      *sql.DB
	dialect schema.Dialect
	log     logger.Logger
}

// NewEngine creates an Engine for the dialect. The handle is attached later.
func NewEngine(d schema.Dialect, log logger.Logger) *Engine {
	if log == nil {
		log = logger.Discard
	}
	return &Engine{dialect: d, log: log}
}

// Attach hands the engine an open handle. The engine owns it from now on.
func (e *Engine) Attach(db *sql.DB) {
	e.db = db
}

// DB returns the underlying sql.DB, or nil when the store is not open.
func (e *Engine) DB() *sql.DB {
	return e.db
}

// Dialect returns the SQL dialect statements are rendered in.
func (e *Engine) Dialect() schema.Dialect {
	return e.dialect
}

// Close closes the database connection. Closing a closed store is a no-op.
func (e *Engine) Close() error {
	if e.db == nil {
		return nil
	}
	db := e.db
	e.db = nil
	if err := db.Close(); err != nil {
		return connectionError("close", err)
	}
	return nil
}

func (e *Engine) handle(op string) (*sql.DB, error) {
	if e.db == nil {
		return nil, connectionError(op, fmt.Errorf("database not opened"))
	}
	return e.db, nil
}

// EnsureSchema creates every table that does not exist yet, in dependency order.
// Each statement runs on its own; a failure stops the sequence and leaves the
// tables created so far in place.
func (e *Engine) EnsureSchema(ctx context.Context) error {
	const op = "ensure schema"
	db, err := e.handle(op)
	if err != nil {
		return err
	}

	tables := schema.Tables()
	if err := schema.Validate(tables, nil); err != nil {
		return statementError(op, "", "", err)
	}

	for _, t := range tables {
		stmt := t.CreateSQL(e.dialect)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return failure(ctx, db, op, t.Name, stmt, err)
		}
		e.log.Debug("table ensured", "table", t.Name)
	}
	e.log.Info("schema ensured", "tables", len(tables), "dialect", e.dialect.String())
	return nil
}

// EnsureIndexes creates every secondary index that does not exist yet.
func (e *Engine) EnsureIndexes(ctx context.Context) error {
	const op = "ensure indexes"
	db, err := e.handle(op)
	if err != nil {
		return err
	}

	indexes := schema.Indexes()
	for _, idx := range indexes {
		stmt := idx.CreateSQL(e.dialect)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return failure(ctx, db, op, idx.Name, stmt, err)
		}
		e.log.Debug("index ensured", "index", idx.Name, "table", idx.Table)
	}
	e.log.Info("indexes ensured", "indexes", len(indexes))
	return nil
}

// SeedDefaults inserts the seed categories that are not present yet, keyed on name.
func (e *Engine) SeedDefaults(ctx context.Context) error {
	const op = "seed defaults"
	db, err := e.handle(op)
	if err != nil {
		return err
	}

	cats, err := schema.Categories()
	if err != nil {
		return statementError(op, "education_categories", "", err)
	}

	stmt := schema.InsertCategorySQL(e.dialect)
	var inserted int64
	for _, c := range cats {
		res, err := db.ExecContext(ctx, stmt, c.Name, c.Description, c.Icon, c.SortOrder)
		if err != nil {
			return failure(ctx, db, op, c.Name, stmt, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += n
		}
	}
	e.log.Info("defaults seeded", "categories", len(cats), "inserted", inserted)
	return nil
}

// CheckState reports how much of the schema is present.
func (e *Engine) CheckState(ctx context.Context) (StoreState, error) {
	const op = "check state"
	if _, err := e.handle(op); err != nil {
		return StateMissing, err
	}

	present, err := e.catalog(ctx, op, catalogTables)
	if err != nil {
		return StateUninitialized, err
	}
	return stateOf(present), nil
}

func stateOf(present map[string]bool) StoreState {
	found := 0
	for _, name := range schema.TableNames() {
		if present[name] {
			found++
		}
	}
	switch {
	case found == 0:
		return StateUninitialized
	case found < len(schema.TableNames()):
		return StatePartial
	}
	return StateReady
}
