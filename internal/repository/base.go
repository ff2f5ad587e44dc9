package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Cheertaboi/marketplace-schema/internal/models"
	"github.com/Cheertaboi/marketplace-schema/internal/schema"
	"github.com/Cheertaboi/marketplace-schema/pkg/db"
)

var ErrNotFound = errors.New("not found")

// base holds the statements for one catalogue table. Queries are written with
// ? or :name placeholders and bound per driver by sqlx.
type base struct {
	db    *sqlx.DB
	table schema.Table
	now   func() time.Time

	insertSQL string
	updateSQL string
	selectSQL string
	deleteSQL string
}

func newBase(conn *sqlx.DB, tableName string, now func() time.Time) base {
	t, ok := schema.Lookup(tableName)
	if !ok {
		panic(fmt.Sprintf("repository: table %q is not in the catalogue", tableName))
	}

	cols := t.ColumnNames()
	pk := t.PrimaryKey()

	named := make([]string, len(cols))
	var sets []string
	for i, c := range cols {
		named[i] = ":" + c
		if c != pk {
			sets = append(sets, c+" = :"+c)
		}
	}

	return base{
		db:    conn,
		table: t,
		now:   now,
		insertSQL: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			t.Name, strings.Join(cols, ", "), strings.Join(named, ", ")),
		updateSQL: fmt.Sprintf("UPDATE %s SET %s WHERE %s = :%s",
			t.Name, strings.Join(sets, ", "), pk, pk),
		selectSQL: fmt.Sprintf("SELECT %s FROM %s", strings.Join(cols, ", "), t.Name),
		deleteSQL: fmt.Sprintf("DELETE FROM %s WHERE %s = ?", t.Name, pk),
	}
}

// prepare applies defaults and auto-now stamps, then validates. Nothing is
// written when it fails.
func (b *base) prepare(e models.Entity) error {
	models.Prepare(e, b.now())
	return models.Validate(e)
}

func (b *base) insert(ctx context.Context, q sqlx.ExtContext, e models.Entity) error {
	if _, err := sqlx.NamedExecContext(ctx, q, b.insertSQL, e); err != nil {
		return b.translateWrite(ctx, q, e, err)
	}
	return nil
}

func (b *base) update(ctx context.Context, q sqlx.ExtContext, e models.Entity) error {
	res, err := sqlx.NamedExecContext(ctx, q, b.updateSQL, e)
	if err != nil {
		return b.translateWrite(ctx, q, e, err)
	}
	return requireRow(res)
}

// translateWrite is translate for a rejected write of e. SQLite reports a
// foreign key failure without the column, so the references of e are
// looked up to name it.
func (b *base) translateWrite(ctx context.Context, q sqlx.QueryerContext, e models.Entity, err error) error {
	err = b.translate(err)
	var ce *models.ConstraintError
	if errors.As(err, &ce) && ce.Rule == models.RuleForeignKey && ce.Field == "" {
		if fk, ok := b.missingReference(ctx, q, e); ok {
			ce.Field, ce.Param = fk.Name, fk.References.Table
		}
	}
	return err
}

// missingReference returns the first foreign key of e whose referenced row
// does not exist.
func (b *base) missingReference(ctx context.Context, q sqlx.QueryerContext, e models.Entity) (schema.Column, bool) {
	v := reflect.Indirect(reflect.ValueOf(e))
	fields := b.db.Mapper.FieldMap(v)

	for _, fk := range b.table.ForeignKeys() {
		f, ok := fields[fk.Name]
		if !ok {
			continue
		}
		if f.Kind() == reflect.Ptr {
			if f.IsNil() {
				continue
			}
			f = f.Elem()
		}

		var one int
		query := b.db.Rebind(fmt.Sprintf("SELECT 1 FROM %s WHERE %s = ?", fk.References.Table, fk.References.Column))
		err := q.QueryRowxContext(ctx, query, f.Interface()).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return fk, true
		}
	}
	return schema.Column{}, false
}

func (b *base) get(ctx context.Context, q sqlx.QueryerContext, dest interface{}, id int64) error {
	query := b.db.Rebind(b.selectSQL + " WHERE " + b.table.PrimaryKey() + " = ?")
	if err := sqlx.GetContext(ctx, q, dest, query, id); err != nil {
		return b.translate(err)
	}
	return nil
}

func (b *base) selectBy(ctx context.Context, dest interface{}, where string, args ...interface{}) error {
	query := b.db.Rebind(b.selectSQL + " WHERE " + where + " ORDER BY " + b.table.PrimaryKey())
	if err := sqlx.SelectContext(ctx, b.db, dest, query, args...); err != nil {
		return fmt.Errorf("list %s: %w", b.table.Name, err)
	}
	return nil
}

func (b *base) remove(ctx context.Context, q sqlx.ExecerContext, id int64) error {
	res, err := q.ExecContext(ctx, b.db.Rebind(b.deleteSQL), id)
	if err != nil {
		return b.translate(err)
	}
	return requireRow(res)
}

// translate turns driver errors into ErrNotFound or a ConstraintError naming
// the entity and column.
func (b *base) translate(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	v, ok := db.AsViolation(err)
	if !ok {
		return fmt.Errorf("%s: %w", b.table.Name, err)
	}

	field := v.Column
	if field == "" && v.Constraint != "" {
		if v.Constraint == b.table.Name+"_pkey" {
			field = b.table.PrimaryKey()
		} else if col, ok := schema.ConstraintColumn(b.table.Name, v.Constraint); ok {
			field = col
		}
	}

	ce := &models.ConstraintError{Entity: b.table.Entity, Field: field, Rule: v.Rule}
	if v.Rule == db.RuleCheck {
		ce.Param = v.Constraint
	}
	return ce
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func rollback(tx *sqlx.Tx) {
	_ = tx.Rollback()
}
