package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

func NewPostgresConnection(cfg PostgresConfig) (*sqlx.DB, error) {
	return OpenPostgres(cfg.DSN())
}

// OpenPostgres connects with a ready DSN, e.g. one handed out by a test
// container.
func OpenPostgres(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping failed: %w", err)
	}

	return db, nil
}

// https://www.postgresql.org/docs/current/errcodes-appendix.html
var postgresRules = map[pq.ErrorCode]string{
	"23505": RuleUnique,
	"23503": RuleForeignKey,
	"23514": RuleCheck,
	"23502": RuleNotNull,
	"22003": RuleOutOfRange,
}

func postgresViolation(err error) (*Violation, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil, false
	}
	rule, ok := postgresRules[pqErr.Code]
	if !ok {
		return nil, false
	}
	return &Violation{
		Rule:       rule,
		Table:      pqErr.Table,
		Column:     pqErr.Column,
		Constraint: pqErr.Constraint,
		Detail:     pqErr.Message,
	}, true
}
