package schema

import (
	"errors"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTables_DependencyOrder(t *testing.T) {
	tables := Tables()
	require.Len(t, tables, 20)
	require.NoError(t, Validate(tables, Indexes()))

	assert.Equal(t, "users", tables[0].Name)
	assert.Equal(t, "education_categories", tables[1].Name)

	pos := map[string]int{}
	for i, tbl := range tables {
		pos[tbl.Name] = i
	}
	assert.Less(t, pos["education_categories"], pos["educational_content"])
	assert.Less(t, pos["educational_content"], pos["quiz_questions"])
	assert.Less(t, pos["educational_content"], pos["user_progress"])
}

func TestValidate_RejectsForwardReference(t *testing.T) {
	tables := Tables()
	// move quiz_questions ahead of educational_content
	var reordered []Table
	for _, tbl := range tables {
		if tbl.Name == "quiz_questions" {
			continue
		}
		if tbl.Name == "educational_content" {
			for _, q := range tables {
				if q.Name == "quiz_questions" {
					reordered = append(reordered, q)
				}
			}
		}
		reordered = append(reordered, tbl)
	}

	err := Validate(reordered, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOrder))
	assert.Contains(t, err.Error(), "quiz_questions.content_id")
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		tables  []Table
		indexes []Index
		want    string
	}{
		{
			name:   "duplicate table",
			tables: []Table{{Name: "a", Columns: []Column{pk()}}, {Name: "a", Columns: []Column{pk()}}},
			want:   `table "a" declared twice`,
		},
		{
			name:   "duplicate column",
			tables: []Table{{Name: "a", Columns: []Column{pk(), pk()}}},
			want:   "a.id declared twice",
		},
		{
			name:   "unknown referenced column",
			tables: []Table{{Name: "a", Columns: []Column{pk(), {Name: "b_id", References: &ForeignKey{Table: "a", Column: "nope"}}}}},
			want:   "unknown column a.nope",
		},
		{
			name:   "unique on unknown column",
			tables: []Table{{Name: "a", Columns: []Column{pk()}, Uniques: [][]string{{"x"}}}},
			want:   `names unknown column "x"`,
		},
		{
			name:    "index on unknown table",
			tables:  []Table{{Name: "a", Columns: []Column{pk()}}},
			indexes: []Index{{Name: "idx", Table: "b", Columns: []string{"id"}}},
			want:    `unknown table "b"`,
		},
		{
			name:    "index on unknown column",
			tables:  []Table{{Name: "a", Columns: []Column{pk()}}},
			indexes: []Index{{Name: "idx", Table: "a", Columns: []string{"x"}}},
			want:    "unknown column a.x",
		},
		{
			name:    "pair index with three columns",
			tables:  []Table{{Name: "a", Columns: []Column{pk()}}},
			indexes: []Index{{Name: "idx", Table: "a", Columns: []string{"id", "id", "id"}, Pair: true}},
			want:    "exactly two columns",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.tables, tt.indexes)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestTables_UserReferences(t *testing.T) {
	// every reference to users cascades except the audit columns
	setNull := map[string]bool{
		"community_alerts.resolved_by": true,
		"reports.reviewed_by":          true,
	}
	for _, tbl := range Tables() {
		for _, c := range tbl.Columns {
			if c.References == nil || c.References.Table != "users" {
				continue
			}
			key := tbl.Name + "." + c.Name
			if setNull[key] {
				assert.Equal(t, SetNull, c.References.OnDelete, key)
				assert.False(t, c.NotNull, key)
			} else {
				assert.Equal(t, Cascade, c.References.OnDelete, key)
			}
		}
	}
}

func TestTables_JSONColumns(t *testing.T) {
	want := map[string]bool{
		"users.privacy_settings":              true,
		"conversations.conversation_settings": true,
		"community_alerts.media_urls":         true,
		"community_alerts.contact_info":       true,
		"messages.location_data":              true,
		"user_interactions.interaction_data":  true,
		"quiz_questions.options":              true,
		"notifications.data":                  true,
	}
	got := map[string]bool{}
	for _, tbl := range Tables() {
		for _, c := range tbl.Columns {
			if c.Type == TypeJSON {
				got[tbl.Name+"."+c.Name] = true
			}
		}
	}
	assert.Equal(t, want, got)
}

func TestTable_References(t *testing.T) {
	for _, tbl := range Tables() {
		if tbl.Name != "advice_comments" {
			continue
		}
		assert.Equal(t, []string{"parenting_advice", "users"}, tbl.References())
		return
	}
	t.Fatal("advice_comments not declared")
}

func TestDDL_Golden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	byName := map[string]Table{}
	for _, tbl := range Tables() {
		byName[tbl.Name] = tbl
	}

	for _, d := range []Dialect{SQLite, Postgres} {
		for _, name := range []string{"users", "messages", "ratings"} {
			g.Assert(t, name+"."+d.String(), []byte(Script([]string{byName[name].CreateSQL(d)})))
		}

		var idx []string
		for _, i := range Indexes() {
			idx = append(idx, i.CreateSQL(d))
		}
		g.Assert(t, "indexes."+d.String(), []byte(Script(idx)))
	}
}

func TestDDL_Statements(t *testing.T) {
	for _, d := range []Dialect{SQLite, Postgres} {
		t.Run(d.String(), func(t *testing.T) {
			stmts := DDL(d)
			require.Len(t, stmts, len(Tables())+len(Indexes()))
			for _, stmt := range stmts {
				assert.Contains(t, stmt, "IF NOT EXISTS")
			}
		})
	}
}

func TestInsertCategorySQL(t *testing.T) {
	assert.Equal(t,
		"INSERT INTO education_categories (name, description, icon, sort_order) VALUES (?, ?, ?, ?) ON CONFLICT (name) DO NOTHING",
		InsertCategorySQL(SQLite))
	assert.Contains(t, InsertCategorySQL(Postgres), "VALUES ($1, $2, $3, $4)")
}

func TestParseDialect(t *testing.T) {
	tests := []struct {
		in      string
		want    Dialect
		wantErr bool
	}{
		{in: "sqlite", want: SQLite},
		{in: "SQLite3", want: SQLite},
		{in: " postgres ", want: Postgres},
		{in: "postgresql", want: Postgres},
		{in: "pgx", want: Postgres},
		{in: "mysql", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDialect(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "sqlite", SQLite.DriverName())
	assert.Equal(t, "pgx", Postgres.DriverName())
}

func TestLiteral(t *testing.T) {
	assert.Equal(t, "'it''s'", SQLite.literal("it's"))
	assert.Equal(t, "0.0", SQLite.literal(0.0))
	assert.Equal(t, "4.5", Postgres.literal(4.5))
	assert.Equal(t, "TRUE", Postgres.literal(true))
	assert.Equal(t, "0", SQLite.literal(false))
	assert.Equal(t, "CURRENT_TIMESTAMP", Postgres.literal(Now))
	assert.Panics(t, func() { SQLite.literal(struct{}{}) })
}

func TestNames(t *testing.T) {
	names := TableNames()
	require.Len(t, names, 20)
	assert.Equal(t, "reports", names[len(names)-1])

	idx := IndexNames()
	require.Len(t, idx, 9)
	assert.True(t, strings.HasPrefix(idx[0], "idx_"))
}
