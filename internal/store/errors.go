package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
)

// ErrorKind classifies a SchemaError.
type ErrorKind int

const (
	// StatementFailed means the store rejected a DDL or DML statement.
	StatementFailed ErrorKind = iota + 1
	// ConnectionUnavailable means the handle could not be opened or was lost.
	ConnectionUnavailable
)

func (k ErrorKind) String() string {
	switch k {
	case StatementFailed:
		return "statement failed"
	case ConnectionUnavailable:
		return "connection unavailable"
	}
	return "unknown"
}

var (
	// ErrStatementFailed matches any SchemaError of kind StatementFailed.
	ErrStatementFailed = errors.New("statement failed")

	// ErrConnectionUnavailable matches any SchemaError of kind ConnectionUnavailable.
	ErrConnectionUnavailable = errors.New("connection unavailable")

	// ErrThreadCycle is returned when a reply or comment would become its own ancestor.
	ErrThreadCycle = errors.New("thread parent would create a cycle")
)

// SchemaError is returned by every Store operation. None are retried
// internally; the operations are idempotent so the caller may retry.
type SchemaError struct {
	Kind      ErrorKind
	Op        string // "open", "ensure schema", "ensure indexes", "seed defaults", ...
	Object    string // table, index or category the statement concerned, if any
	Statement string
	Err       error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	msg := e.Op + ": " + e.Kind.String()
	if e.Object != "" {
		msg += fmt.Sprintf(" (%s)", e.Object)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *SchemaError) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels.
func (e *SchemaError) Is(target error) bool {
	switch target {
	case ErrStatementFailed:
		return e.Kind == StatementFailed
	case ErrConnectionUnavailable:
		return e.Kind == ConnectionUnavailable
	}
	return false
}

func statementError(op, object, stmt string, err error) *SchemaError {
	return &SchemaError{Kind: StatementFailed, Op: op, Object: object, Statement: stmt, Err: err}
}

// failure classifies an error returned by a statement. A handle that was
// closed or lost is ConnectionUnavailable; anything else is StatementFailed.
func failure(ctx context.Context, db *sql.DB, op, object, stmt string, err error) *SchemaError {
	kind := StatementFailed
	switch {
	case errors.Is(err, driver.ErrBadConn), errors.Is(err, sql.ErrConnDone):
		kind = ConnectionUnavailable
	case ctx.Err() == nil && db.PingContext(ctx) != nil:
		kind = ConnectionUnavailable
	}
	return &SchemaError{Kind: kind, Op: op, Object: object, Statement: stmt, Err: err}
}

func connectionError(op string, err error) *SchemaError {
	return &SchemaError{Kind: ConnectionUnavailable, Op: op, Err: err}
}

// Unavailable wraps err as a ConnectionUnavailable SchemaError.
// Backends use it when opening the handle fails.
func Unavailable(op string, err error) error {
	return connectionError(op, err)
}
