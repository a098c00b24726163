package schema

import (
	"errors"
	"fmt"
)

// ErrOrder is returned by Validate when a table references one declared after it.
var ErrOrder = errors.New("table declared before its dependency")

// Validate checks that tables are in dependency order and that every
// constraint and index names columns that exist.
func Validate(tables []Table, indexes []Index) error {
	declared := make(map[string]Table, len(tables))
	for _, t := range tables {
		if _, ok := declared[t.Name]; ok {
			return fmt.Errorf("table %q declared twice", t.Name)
		}
		cols := map[string]bool{}
		for _, c := range t.Columns {
			if cols[c.Name] {
				return fmt.Errorf("%s.%s declared twice", t.Name, c.Name)
			}
			cols[c.Name] = true
		}
		for _, c := range t.Columns {
			if c.References == nil {
				continue
			}
			target := t
			if c.References.Table != t.Name {
				var ok bool
				if target, ok = declared[c.References.Table]; !ok {
					return fmt.Errorf("%s.%s references %s: %w", t.Name, c.Name, c.References.Table, ErrOrder)
				}
			}
			if _, ok := target.Column(c.References.Column); !ok {
				return fmt.Errorf("%s.%s references unknown column %s.%s", t.Name, c.Name, c.References.Table, c.References.Column)
			}
		}
		for _, u := range t.Uniques {
			for _, name := range u {
				if !cols[name] {
					return fmt.Errorf("unique constraint on %s names unknown column %q", t.Name, name)
				}
			}
		}
		declared[t.Name] = t
	}

	names := map[string]bool{}
	for _, idx := range indexes {
		if names[idx.Name] {
			return fmt.Errorf("index %q declared twice", idx.Name)
		}
		names[idx.Name] = true
		t, ok := declared[idx.Table]
		if !ok {
			return fmt.Errorf("index %s on unknown table %q", idx.Name, idx.Table)
		}
		if idx.Pair && len(idx.Columns) != 2 {
			return fmt.Errorf("pair index %s needs exactly two columns", idx.Name)
		}
		for _, name := range idx.Columns {
			if _, ok := t.Column(name); !ok {
				return fmt.Errorf("index %s names unknown column %s.%s", idx.Name, idx.Table, name)
			}
		}
	}
	return nil
}
