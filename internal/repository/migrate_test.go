package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cheertaboi/marketplace-schema/internal/schema"
)

func TestMigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, Migrate(ctx, s.db))
	require.NoError(t, s.Users.Create(ctx, fakeUser(1)))

	var tables []string
	require.NoError(t, s.db.SelectContext(ctx, &tables,
		`SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`))
	for _, tbl := range schema.Tables() {
		assert.Contains(t, tables, tbl.Name)
	}

	require.NoError(t, Reset(ctx, s.db))
	_, err := s.Users.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
