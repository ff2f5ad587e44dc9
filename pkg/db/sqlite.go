package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
)

// NewSQLiteConnection opens an SQLite database with foreign key enforcement.
// path may be ":memory:".
func NewSQLiteConnection(ctx context.Context, path string) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite ping failed: %w", err)
	}

	return db, nil
}

var sqliteRules = map[sqlite3.ErrNoExtended]string{
	sqlite3.ErrConstraintUnique:     RuleUnique,
	sqlite3.ErrConstraintPrimaryKey: RuleUnique,
	sqlite3.ErrConstraintForeignKey: RuleForeignKey,
	sqlite3.ErrConstraintCheck:      RuleCheck,
	sqlite3.ErrConstraintNotNull:    RuleNotNull,
}

func sqliteViolation(err error) (*Violation, bool) {
	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) || liteErr.Code != sqlite3.ErrConstraint {
		return nil, false
	}
	rule, ok := sqliteRules[liteErr.ExtendedCode]
	if !ok {
		return nil, false
	}

	v := &Violation{Rule: rule, Detail: liteErr.Error()}

	// UNIQUE constraint failed: payments.order_id
	// CHECK constraint failed: payments_amount_check
	// FOREIGN KEY constraint failed
	_, subject, found := strings.Cut(liteErr.Error(), "constraint failed: ")
	if !found {
		return v, true
	}
	subject = strings.TrimSpace(strings.SplitN(subject, ",", 2)[0])
	if table, column, ok := strings.Cut(subject, "."); ok {
		v.Table, v.Column = table, column
	} else {
		v.Constraint = subject
	}
	return v, true
}
