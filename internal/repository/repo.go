package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Cheertaboi/marketplace-schema/internal/models"
)

type entityPtr[T any] interface {
	*T
	models.Entity
}

// repo is the create/read/update/delete surface shared by every entity.
type repo[T any, P entityPtr[T]] struct {
	base
}

func newRepo[T any, P entityPtr[T]](conn *sqlx.DB, table string, now func() time.Time) repo[T, P] {
	return repo[T, P]{base: newBase(conn, table, now)}
}

func (r *repo[T, P]) Create(ctx context.Context, e P) error {
	if err := r.prepare(e); err != nil {
		return err
	}
	return r.insert(ctx, r.db, e)
}

func (r *repo[T, P]) Get(ctx context.Context, id int64) (P, error) {
	var v T
	if err := r.get(ctx, r.db, &v, id); err != nil {
		return nil, err
	}
	return P(&v), nil
}

func (r *repo[T, P]) Update(ctx context.Context, e P) error {
	if err := r.prepare(e); err != nil {
		return err
	}
	return r.update(ctx, r.db, e)
}

// Delete removes the row. Referencing rows follow their declared delete policy.
func (r *repo[T, P]) Delete(ctx context.Context, id int64) error {
	return r.remove(ctx, r.db, id)
}

func (r *repo[T, P]) list(ctx context.Context, where string, args ...interface{}) ([]T, error) {
	out := []T{}
	if err := r.selectBy(ctx, &out, where, args...); err != nil {
		return nil, err
	}
	return out, nil
}
