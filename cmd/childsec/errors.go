package main

import (
	"errors"
	"fmt"

	"github.com/maloquacious/childsec/internal/bootstrap"
	"github.com/maloquacious/childsec/internal/schema"
	"github.com/maloquacious/childsec/internal/store"
)

// HintedError wraps an error with a user-facing recovery hint.
type HintedError struct {
	Err  error
	Hint string
}

func (h *HintedError) Error() string { return h.Err.Error() }
func (h *HintedError) Unwrap() error { return h.Err }

// hintWrap attaches a recovery hint to a datastore error.
func hintWrap(err error) error {
	if err == nil {
		return nil
	}
	var se *store.SchemaError
	var hint string
	switch {
	case errors.As(err, &se) && se.Kind == store.StatementFailed && se.Object == schema.PairIndex:
		hint = "parent_connections holds the same pair of users in both orders. Delete one row of each reversed pair, then rerun 'childsec db create'."
	case errors.Is(err, errNoDatabase):
		hint = "Run 'childsec db create' to create it."
	case errors.Is(err, store.ErrConnectionUnavailable):
		hint = "Check --driver, --data-dir and --database-url, and that the database server is reachable."
	case errors.Is(err, store.ErrStatementFailed):
		hint = "An existing object may conflict with the schema. Run 'childsec db verify' to see what is present."
	case errors.Is(err, bootstrap.ErrNoStore):
		hint = "Set --driver to sqlite or postgres."
	default:
		return err
	}
	return &HintedError{Err: err, Hint: hint}
}

// errNoDatabase is returned when a command needs an existing sqlite file.
var errNoDatabase = errors.New("database not found")

func noDatabase(path string) error {
	return fmt.Errorf("%w: %s", errNoDatabase, path)
}
