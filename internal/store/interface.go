package store

import "context"

// StoreState represents the initialization state of the datastore.
type StoreState int

const (
	StateMissing       StoreState = iota // File doesn't exist
	StateUninitialized                   // Store reachable but no schema tables
	StatePartial                         // Some schema tables missing
	StateReady                           // All schema tables present
)

func (s StoreState) String() string {
	switch s {
	case StateMissing:
		return "missing"
	case StateUninitialized:
		return "uninitialized"
	case StatePartial:
		return "partial"
	case StateReady:
		return "ready"
	}
	return "unknown"
}

// Store defines the schema store contract.
// A Store is owned by a single caller; it is not safe for concurrent use.
type Store interface {
	// Open opens the datastore connection
	Open(ctx context.Context) error

	// Close releases the datastore connection
	Close() error

	// EnsureSchema creates every missing table, in dependency order
	EnsureSchema(ctx context.Context) error

	// EnsureIndexes creates every missing secondary index
	EnsureIndexes(ctx context.Context) error

	// SeedDefaults inserts the reference rows that are not already present
	SeedDefaults(ctx context.Context) error

	// CheckState returns the current state of the datastore
	CheckState(ctx context.Context) (StoreState, error)

	// Verify reports which tables, indexes and seed rows are present
	Verify(ctx context.Context) (Report, error)
}
