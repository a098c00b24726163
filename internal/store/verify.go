package store

import (
	"context"

	"github.com/maloquacious/childsec/internal/schema"
)

// ObjectStatus reports whether one table or index exists.
type ObjectStatus struct {
	Name    string `json:"name"`
	Present bool   `json:"present"`
}

// Report is the result of Verify.
// Categories counts the seed categories found by name; rows added by users
// are not counted.
type Report struct {
	Dialect    string         `json:"dialect"`
	State      string         `json:"state"`
	Tables     []ObjectStatus `json:"tables"`
	Indexes    []ObjectStatus `json:"indexes"`
	Seeds      []ObjectStatus `json:"seeds"`
	Categories int            `json:"categories"`
}

// Ready reports whether every table and index exists and all seed rows are present.
func (r Report) Ready() bool {
	if len(r.Seeds) == 0 {
		return false
	}
	for _, group := range [][]ObjectStatus{r.Tables, r.Indexes, r.Seeds} {
		for _, s := range group {
			if !s.Present {
				return false
			}
		}
	}
	return true
}

type catalogKind int

const (
	catalogTables catalogKind = iota
	catalogIndexes
)

func (e *Engine) catalogQuery(kind catalogKind) string {
	if e.dialect == schema.Postgres {
		if kind == catalogIndexes {
			return "SELECT indexname FROM pg_indexes WHERE schemaname = current_schema()"
		}
		return "SELECT table_name FROM information_schema.tables WHERE table_schema = current_schema() AND table_type = 'BASE TABLE'"
	}
	if kind == catalogIndexes {
		return "SELECT name FROM sqlite_master WHERE type = 'index'"
	}
	return "SELECT name FROM sqlite_master WHERE type = 'table'"
}

// catalog lists the names of existing tables or indexes.
func (e *Engine) catalog(ctx context.Context, op string, kind catalogKind) (map[string]bool, error) {
	db, err := e.handle(op)
	if err != nil {
		return nil, err
	}

	query := e.catalogQuery(kind)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, failure(ctx, db, op, "", query, err)
	}
	defer rows.Close()

	names := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, failure(ctx, db, op, "", query, err)
		}
		names[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, failure(ctx, db, op, "", query, err)
	}
	return names, nil
}

// Verify reports which schema tables, indexes and seed categories exist.
func (e *Engine) Verify(ctx context.Context) (Report, error) {
	const op = "verify"
	report := Report{Dialect: e.dialect.String()}

	cats, err := schema.Categories()
	if err != nil {
		return report, statementError(op, "education_categories", "", err)
	}

	tables, err := e.catalog(ctx, op, catalogTables)
	if err != nil {
		return report, err
	}
	indexes, err := e.catalog(ctx, op, catalogIndexes)
	if err != nil {
		return report, err
	}

	for _, name := range schema.TableNames() {
		report.Tables = append(report.Tables, ObjectStatus{Name: name, Present: tables[name]})
	}
	for _, name := range schema.IndexNames() {
		report.Indexes = append(report.Indexes, ObjectStatus{Name: name, Present: indexes[name]})
	}
	report.State = stateOf(tables).String()

	seeded := map[string]bool{}
	if tables["education_categories"] {
		if seeded, err = e.categoryNames(ctx, op); err != nil {
			return report, err
		}
	}
	for _, c := range cats {
		report.Seeds = append(report.Seeds, ObjectStatus{Name: c.Name, Present: seeded[c.Name]})
		if seeded[c.Name] {
			report.Categories++
		}
	}
	return report, nil
}

func (e *Engine) categoryNames(ctx context.Context, op string) (map[string]bool, error) {
	const query = "SELECT name FROM education_categories"
	rows, err := e.db.QueryContext(ctx, query)
	if err != nil {
		return nil, failure(ctx, e.db, op, "education_categories", query, err)
	}
	defer rows.Close()

	names := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, failure(ctx, e.db, op, "education_categories", query, err)
		}
		names[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, failure(ctx, e.db, op, "education_categories", query, err)
	}
	return names, nil
}
