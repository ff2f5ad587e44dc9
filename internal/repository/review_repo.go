package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Cheertaboi/marketplace-schema/internal/models"
)

// targetTables resolves a review target kind to the table holding it.
var targetTables = map[models.TargetKind]string{
	models.TargetOrder:    "orders",
	models.TargetShop:     "shops",
	models.TargetProduct:  "products",
	models.TargetDelivery: "deliveries",
}

type ReviewRepo struct {
	repo[models.Review, *models.Review]
}

// Create inserts the review after checking, in the same transaction, that
// its target row exists.
func (r *ReviewRepo) Create(ctx context.Context, rv *models.Review) error {
	if err := r.prepare(rv); err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer rollback(tx)

	if err := r.checkTarget(ctx, tx, rv.ReviewTarget); err != nil {
		return err
	}
	if err := r.insert(ctx, tx, rv); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx commit: %w", err)
	}
	return nil
}

func (r *ReviewRepo) Update(ctx context.Context, rv *models.Review) error {
	if err := r.prepare(rv); err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer rollback(tx)

	if err := r.checkTarget(ctx, tx, rv.ReviewTarget); err != nil {
		return err
	}
	if err := r.update(ctx, tx, rv); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx commit: %w", err)
	}
	return nil
}

func (r *ReviewRepo) checkTarget(ctx context.Context, tx *sqlx.Tx, target models.ReviewTarget) error {
	table, ok := targetTables[target.Kind]
	if !ok {
		return &models.ConstraintError{Entity: "review", Field: "target_kind", Rule: "oneof"}
	}

	var one int
	query := tx.Rebind(fmt.Sprintf("SELECT 1 FROM %s WHERE id = ?", table))
	err := tx.QueryRowxContext(ctx, query, target.ID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.ConstraintError{Entity: "review", Field: "target_id", Rule: models.RuleForeignKey, Param: table}
	}
	if err != nil {
		return fmt.Errorf("check review target %s: %w", target, err)
	}
	return nil
}

func (r *ReviewRepo) ListByTarget(ctx context.Context, target models.ReviewTarget) ([]models.Review, error) {
	return r.list(ctx, "target_kind = ? AND target_id = ?", target.Kind, target.ID)
}

func (r *ReviewRepo) ListByUser(ctx context.Context, userID int64) ([]models.Review, error) {
	return r.list(ctx, "user_id = ?", userID)
}
