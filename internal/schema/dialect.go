package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect selects the SQL flavour the schema is rendered in.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

// ParseDialect accepts the driver or product name of a supported store.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sqlite", "sqlite3":
		return SQLite, nil
	case "postgres", "postgresql", "pgx":
		return Postgres, nil
	}
	return SQLite, fmt.Errorf("unknown dialect %q: must be sqlite or postgres", s)
}

func (d Dialect) String() string {
	switch d {
	case SQLite:
		return "sqlite"
	case Postgres:
		return "postgres"
	}
	return fmt.Sprintf("Dialect(%d)", int(d))
}

// DriverName is the database/sql driver registered for the dialect.
func (d Dialect) DriverName() string {
	if d == Postgres {
		return "pgx"
	}
	return "sqlite"
}

// Placeholder returns the bind parameter marker for the n-th argument (1-based).
func (d Dialect) Placeholder(n int) string {
	if d == Postgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

func (d Dialect) columnType(t ColumnType) string {
	switch t {
	case TypeID:
		if d == Postgres {
			return "BIGINT"
		}
		return "INTEGER"
	case TypeInt:
		return "INTEGER"
	case TypeReal:
		if d == Postgres {
			return "DOUBLE PRECISION"
		}
		return "REAL"
	case TypeBool:
		return "BOOLEAN"
	case TypeTimestamp:
		if d == Postgres {
			return "TIMESTAMPTZ"
		}
		return "TEXT"
	case TypeJSON:
		if d == Postgres {
			return "JSONB"
		}
		return "TEXT"
	}
	return "TEXT"
}

func (d Dialect) primaryKey() string {
	if d == Postgres {
		return "BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY"
	}
	return "INTEGER PRIMARY KEY AUTOINCREMENT"
}

func (d Dialect) literal(v any) string {
	switch val := v.(type) {
	case now:
		return "CURRENT_TIMESTAMP"
	case bool:
		if d == Postgres {
			if val {
				return "TRUE"
			}
			return "FALSE"
		}
		if val {
			return "1"
		}
		return "0"
	case int:
		return strconv.Itoa(val)
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatFloat(val, 'f', 1, 64)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case string:
		return "'" + strings.ReplaceAll(val, "'", "''") + "'"
	}
	panic(fmt.Sprintf("schema: unsupported default %T", v))
}

// pair renders the expressions indexing two columns as an unordered pair.
func (d Dialect) pair(a, b string) []string {
	if d == Postgres {
		return []string{
			fmt.Sprintf("LEAST(%s, %s)", a, b),
			fmt.Sprintf("GREATEST(%s, %s)", a, b),
		}
	}
	return []string{
		fmt.Sprintf("min(%s, %s)", a, b),
		fmt.Sprintf("max(%s, %s)", a, b),
	}
}
