package schema

import (
	"fmt"
	"strings"
)

type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// DialectFor maps a database/sql driver name to its dialect.
func DialectFor(driverName string) (Dialect, error) {
	switch driverName {
	case "postgres", "pgx":
		return Postgres, nil
	case "sqlite3", "sqlite":
		return SQLite, nil
	default:
		return "", fmt.Errorf("unsupported driver %q", driverName)
	}
}

func ParseDialect(s string) (Dialect, error) {
	switch d := Dialect(strings.ToLower(s)); d {
	case Postgres, SQLite:
		return d, nil
	default:
		return "", fmt.Errorf("unknown dialect %q (want postgres or sqlite)", s)
	}
}

// TypeName renders the SQL type of c, e.g. NUMERIC(10,2) or VARCHAR(64).
func (d Dialect) TypeName(c Column) string {
	switch c.Type {
	case TypeID:
		if d == SQLite {
			return "INTEGER"
		}
		return "BIGINT"
	case TypeInteger:
		return "INTEGER"
	case TypeDecimal:
		return fmt.Sprintf("NUMERIC(%d,%d)", c.Precision, c.Scale)
	case TypeVarchar:
		return fmt.Sprintf("VARCHAR(%d)", c.Length)
	case TypeText:
		return "TEXT"
	case TypeBool:
		return "BOOLEAN"
	case TypeDate:
		return "DATE"
	case TypeTimestamp:
		if d == SQLite {
			return "TIMESTAMP"
		}
		return "TIMESTAMPTZ"
	case TypeTime:
		return "TIME"
	case TypeJSON:
		if d == SQLite {
			return "TEXT"
		}
		return "JSONB"
	default:
		panic(fmt.Sprintf("schema: unknown column type %d", c.Type))
	}
}

func (t Table) columnSQL(d Dialect, c Column) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", c.Name, d.TypeName(c))
	if !c.Nullable {
		b.WriteString(" NOT NULL")
	}
	if c.Default != "" {
		fmt.Fprintf(&b, " DEFAULT %s", c.Default)
	}
	if c.PrimaryKey {
		fmt.Fprintf(&b, " CONSTRAINT %s_pkey PRIMARY KEY", t.Name)
	}
	if c.Unique {
		fmt.Fprintf(&b, " CONSTRAINT %s UNIQUE", ConstraintName(t.Name, c.Name, KindUnique))
	}
	if c.Check != "" {
		fmt.Fprintf(&b, " CONSTRAINT %s CHECK (%s)", ConstraintName(t.Name, c.Name, KindCheck), c.Check)
	}
	if r := c.References; r != nil {
		fmt.Fprintf(&b, " CONSTRAINT %s REFERENCES %s (%s) ON DELETE %s",
			ConstraintName(t.Name, c.Name, KindForeignKey), r.Table, r.Column, r.OnDelete)
	}
	return b.String()
}

// CreateSQL renders an idempotent CREATE TABLE statement.
func (t Table) CreateSQL(d Dialect) string {
	lines := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		lines[i] = "    " + t.columnSQL(d, c)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n)", t.Name, strings.Join(lines, ",\n"))
}

// CreateStatements returns the DDL for the whole catalogue in dependency order.
func CreateStatements(d Dialect) []string {
	stmts := make([]string, 0, len(tables)+1)
	for _, t := range tables {
		stmts = append(stmts, t.CreateSQL(d))
	}
	// lookups by polymorphic target
	stmts = append(stmts, "CREATE INDEX IF NOT EXISTS reviews_target_idx ON reviews (target_kind, target_id)")
	return stmts
}

// DropStatements drops the catalogue in reverse dependency order.
func DropStatements(d Dialect) []string {
	stmts := make([]string, 0, len(tables))
	for i := len(tables) - 1; i >= 0; i-- {
		stmts = append(stmts, "DROP TABLE IF EXISTS "+tables[i].Name)
	}
	return stmts
}

// Script joins CreateStatements into one executable script.
func Script(d Dialect) string {
	return strings.Join(CreateStatements(d), ";\n\n") + ";\n"
}
