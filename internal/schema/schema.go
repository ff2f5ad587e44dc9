// Package schema is the table catalogue of the marketplace: columns, types,
// defaults, checks, uniqueness and foreign keys with their delete policies.
package schema

import (
	"fmt"
	"strings"
)

type ColumnType int

const (
	TypeID ColumnType = iota
	TypeInteger
	TypeDecimal
	TypeVarchar
	TypeText
	TypeBool
	TypeDate
	TypeTimestamp
	TypeTime
	TypeJSON
)

type DeleteAction string

const (
	Cascade DeleteAction = "CASCADE"
	SetNull DeleteAction = "SET NULL"
)

type Reference struct {
	Table    string
	Column   string
	OnDelete DeleteAction
}

type Column struct {
	Name       string
	Type       ColumnType
	Length     int // varchar length
	Precision  int
	Scale      int
	PrimaryKey bool
	Nullable   bool
	Unique     bool
	Default    string
	Check      string // expression over the column, rendered as a named CHECK
	References *Reference
}

type Table struct {
	Name    string
	Entity  string
	Columns []Column
}

func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

func (t Table) PrimaryKey() string {
	for _, c := range t.Columns {
		if c.PrimaryKey {
			return c.Name
		}
	}
	return ""
}

// ForeignKeys returns the referencing columns of t.
func (t Table) ForeignKeys() []Column {
	var fks []Column
	for _, c := range t.Columns {
		if c.References != nil {
			fks = append(fks, c)
		}
	}
	return fks
}

type ConstraintKind string

const (
	KindUnique     ConstraintKind = "key"
	KindForeignKey ConstraintKind = "fkey"
	KindCheck      ConstraintKind = "check"
)

// ConstraintName follows the PostgreSQL default naming, <table>_<column>_<kind>.
func ConstraintName(table, column string, kind ConstraintKind) string {
	return fmt.Sprintf("%s_%s_%s", table, column, kind)
}

// ConstraintColumn recovers the column from a constraint name produced by
// ConstraintName.
func ConstraintColumn(table, name string) (string, bool) {
	rest, ok := strings.CutPrefix(name, table+"_")
	if !ok {
		return "", false
	}
	for _, kind := range []ConstraintKind{KindForeignKey, KindUnique, KindCheck} {
		if col, ok := strings.CutSuffix(rest, "_"+string(kind)); ok && col != "" {
			return col, true
		}
	}
	return "", false
}

// Lookup finds a table by table name or entity name.
func Lookup(name string) (Table, bool) {
	for _, t := range tables {
		if t.Name == name || t.Entity == name {
			return t, true
		}
	}
	return Table{}, false
}

// Tables returns the catalogue ordered so that every table follows the tables
// it references.
func Tables() []Table {
	out := make([]Table, len(tables))
	copy(out, tables)
	return out
}
