// Package store defines the schema store contract and the engine shared by
// the SQLite and PostgreSQL backends.
//
// A bootstrap caller owns one Store for its lifetime:
//
//	s := sqlite.New(store.GetDBPath(dir, ""), log)
//	defer s.Close()
//	s.Open(ctx)
//	s.EnsureSchema(ctx)
//	s.EnsureIndexes(ctx)
//	s.SeedDefaults(ctx)
//
// Every operation is idempotent. Statements run one at a time without an
// enclosing transaction; on failure the operation stops and returns a
// *SchemaError whose Kind is StatementFailed or ConnectionUnavailable.
package store
