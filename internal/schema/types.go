package schema

// ColumnType is the logical type of a column. Dialects map it to a concrete SQL type.
type ColumnType int

const (
	TypeID        ColumnType = iota // surrogate or foreign key identity
	TypeInt                         // counters, scores, ordinals
	TypeReal                        // coordinates, ratings
	TypeText                        // free text
	TypeBool                        // flags
	TypeTimestamp                   // creation and update times
	TypeJSON                        // serialized blobs, shape not validated
)

// OnDelete is the referential action taken when a referenced row is deleted.
type OnDelete string

const (
	NoAction OnDelete = ""
	Cascade  OnDelete = "CASCADE"
	SetNull  OnDelete = "SET NULL"
)

// ForeignKey references a column in another (or the same) table.
type ForeignKey struct {
	Table    string
	Column   string
	OnDelete OnDelete
}

// Column describes a single table column.
// Default holds a dialect-neutral value: bool, int, float64, string, or Now.
type Column struct {
	Name       string
	Type       ColumnType
	PrimaryKey bool
	NotNull    bool
	Unique     bool
	Default    any
	Check      string
	References *ForeignKey
}

// Table is one entity of the data model.
type Table struct {
	Name    string
	Columns []Column
	Uniques [][]string
}

// Index is a secondary index. When Pair is set the two columns are indexed as an
// unordered pair (smallest first), which only makes sense together with Unique.
type Index struct {
	Name    string
	Table   string
	Columns []string
	Unique  bool
	Pair    bool
}

// now marks a column defaulting to the creation time.
type now struct{}

// Now is the Default value for timestamp columns filled at insert time.
var Now = now{}

// References returns the names of the tables t depends on, excluding itself.
func (t Table) References() []string {
	var refs []string
	seen := map[string]bool{}
	for _, c := range t.Columns {
		if c.References == nil || c.References.Table == t.Name || seen[c.References.Table] {
			continue
		}
		seen[c.References.Table] = true
		refs = append(refs, c.References.Table)
	}
	return refs
}

// Column returns the named column and true if it exists.
func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}
