package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Cheertaboi/marketplace-schema/internal/schema"
)

// Migrate creates any missing catalogue tables in one transaction.
func Migrate(ctx context.Context, conn *sqlx.DB) error {
	d, err := schema.DialectFor(conn.DriverName())
	if err != nil {
		return err
	}
	return execAll(ctx, conn, schema.CreateStatements(d))
}

// Reset drops every catalogue table and recreates it.
func Reset(ctx context.Context, conn *sqlx.DB) error {
	d, err := schema.DialectFor(conn.DriverName())
	if err != nil {
		return err
	}
	stmts := append(schema.DropStatements(d), schema.CreateStatements(d)...)
	return execAll(ctx, conn, stmts)
}

func execAll(ctx context.Context, conn *sqlx.DB, stmts []string) error {
	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer rollback(tx)

	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply migration: %w\n%s", err, stmt)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx commit: %w", err)
	}
	return nil
}
