package schema

import (
	"fmt"
	"strings"
)

// CreateSQL renders an idempotent CREATE TABLE statement.
// Foreign keys and multi-column uniques follow the columns as table constraints.
func (t Table) CreateSQL(d Dialect) string {
	var lines []string
	for _, c := range t.Columns {
		lines = append(lines, c.definition(d))
	}
	for _, c := range t.Columns {
		if c.References == nil {
			continue
		}
		fk := fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s (%s)", c.Name, c.References.Table, c.References.Column)
		if c.References.OnDelete != NoAction {
			fk += " ON DELETE " + string(c.References.OnDelete)
		}
		lines = append(lines, fk)
	}
	for _, u := range t.Uniques {
		lines = append(lines, fmt.Sprintf("UNIQUE (%s)", strings.Join(u, ", ")))
	}

	var sb strings.Builder
	sb.WriteString("CREATE TABLE IF NOT EXISTS ")
	sb.WriteString(t.Name)
	sb.WriteString(" (\n    ")
	sb.WriteString(strings.Join(lines, ",\n    "))
	sb.WriteString("\n)")
	return sb.String()
}

func (c Column) definition(d Dialect) string {
	if c.PrimaryKey {
		return c.Name + " " + d.primaryKey()
	}
	parts := []string{c.Name, d.columnType(c.Type)}
	if c.NotNull {
		parts = append(parts, "NOT NULL")
	}
	if c.Unique {
		parts = append(parts, "UNIQUE")
	}
	if c.Default != nil {
		parts = append(parts, "DEFAULT "+d.literal(c.Default))
	}
	if c.Check != "" {
		parts = append(parts, "CHECK ("+c.Check+")")
	}
	return strings.Join(parts, " ")
}

// CreateSQL renders an idempotent CREATE INDEX statement.
func (i Index) CreateSQL(d Dialect) string {
	cols := i.Columns
	if i.Pair && len(cols) == 2 {
		cols = d.pair(cols[0], cols[1])
	}
	kind := "INDEX"
	if i.Unique {
		kind = "UNIQUE INDEX"
	}
	return fmt.Sprintf("CREATE %s IF NOT EXISTS %s ON %s (%s)", kind, i.Name, i.Table, strings.Join(cols, ", "))
}

// InsertCategorySQL renders the insert-if-absent statement for one seed category.
// Arguments are name, description, icon, sort_order.
func InsertCategorySQL(d Dialect) string {
	return fmt.Sprintf(
		"INSERT INTO education_categories (name, description, icon, sort_order) VALUES (%s, %s, %s, %s) ON CONFLICT (name) DO NOTHING",
		d.Placeholder(1), d.Placeholder(2), d.Placeholder(3), d.Placeholder(4),
	)
}

// DDL returns every CREATE statement of the schema: tables in dependency order,
// then indexes.
func DDL(d Dialect) []string {
	var stmts []string
	for _, t := range Tables() {
		stmts = append(stmts, t.CreateSQL(d))
	}
	for _, i := range Indexes() {
		stmts = append(stmts, i.CreateSQL(d))
	}
	return stmts
}

// Script joins statements into a single script, one statement per paragraph.
func Script(stmts []string) string {
	if len(stmts) == 0 {
		return ""
	}
	return strings.Join(stmts, ";\n\n") + ";\n"
}
