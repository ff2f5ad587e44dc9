package schema

import (
	"fmt"
	"strings"
)

func id() Column {
	return Column{Name: "id", Type: TypeID, PrimaryKey: true, Check: "id > 0"}
}

func varchar(name string, length int) Column {
	return Column{Name: name, Type: TypeVarchar, Length: length}
}

func text(name string) Column {
	return Column{Name: name, Type: TypeText}
}

// count is a non-negative integer.
func count(name string) Column {
	return Column{Name: name, Type: TypeInteger, Check: name + " >= 0"}
}

func boolean(name string) Column {
	return Column{Name: name, Type: TypeBool, Default: "FALSE"}
}

func date(name string) Column {
	return Column{Name: name, Type: TypeDate}
}

func timestamp(name string) Column {
	return Column{Name: name, Type: TypeTimestamp}
}

func jsonDocument(name string) Column {
	return Column{Name: name, Type: TypeJSON}
}

func coordinate(name string, bound int) Column {
	return Column{
		Name: name, Type: TypeDecimal, Precision: 11, Scale: 8,
		Check: fmt.Sprintf("%s BETWEEN -%d AND %d", name, bound, bound),
	}
}

// price is a strictly positive amount.
func price(name string, precision, scale int) Column {
	return Column{Name: name, Type: TypeDecimal, Precision: precision, Scale: scale, Check: name + " >= 0.01"}
}

// zero is a non-negative decimal.
func zero(name string, precision, scale int) Column {
	return Column{Name: name, Type: TypeDecimal, Precision: precision, Scale: scale, Check: name + " >= 0"}
}

func enum(name string, length int, values []string, def string) Column {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return Column{
		Name: name, Type: TypeVarchar, Length: length,
		Default: "'" + def + "'",
		Check:   fmt.Sprintf("%s IN (%s)", name, strings.Join(quoted, ", ")),
	}
}

func ref(name, table string, onDelete DeleteAction) Column {
	return Column{
		Name: name, Type: TypeID,
		Nullable:   onDelete == SetNull,
		References: &Reference{Table: table, Column: "id", OnDelete: onDelete},
	}
}

func (c Column) null() Column {
	c.Nullable = true
	return c
}

func (c Column) unique() Column {
	c.Unique = true
	return c
}

func (c Column) withDefault(expr string) Column {
	c.Default = expr
	return c
}
