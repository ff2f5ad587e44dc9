//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Cheertaboi/marketplace-schema/internal/models"
	"github.com/Cheertaboi/marketplace-schema/pkg/db"
)

func setupPostgresStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("marketplace"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	conn, err := db.OpenPostgres(connStr)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, Migrate(ctx, conn))
	return NewStore(conn, WithClock(func() time.Time { return testClock }))
}

func TestPostgresReferentialPolicies(t *testing.T) {
	ctx := context.Background()
	s := setupPostgresStore(t)

	require.NoError(t, s.Users.Create(ctx, fakeUser(1)))
	require.NoError(t, s.Addresses.Create(ctx, fakeAddress(1, 1)))
	require.NoError(t, s.Shops.Create(ctx, fakeShop(1)))
	require.NoError(t, s.Products.Create(ctx, fakeProduct(1)))
	require.NoError(t, s.Models.Create(ctx, fakeModel(1, 1)))

	o := fakeOrder(1)
	o.UserID = ptr(int64(1))
	o.ShopID = ptr(int64(1))
	o.AddressID = ptr(int64(1))
	require.NoError(t, s.Orders.Create(ctx, o))

	require.NoError(t, s.Shops.Delete(ctx, 1))
	got, err := s.Orders.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got.ShopID)
	assert.True(t, testClock.Equal(got.PlacedAt))
	assert.JSONEq(t, `[{"model_id":1,"qty":2}]`, string(got.Cart))

	require.NoError(t, s.Products.Delete(ctx, 1))
	_, err = s.Models.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Users.Delete(ctx, 1))
	addr, err := s.Addresses.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, addr.UserID)
}

func TestPostgresConstraintErrors(t *testing.T) {
	ctx := context.Background()
	s := setupPostgresStore(t)

	require.NoError(t, s.Orders.Create(ctx, fakeOrder(1)))
	require.NoError(t, s.Payments.Create(ctx, fakePayment(1, ptr(int64(1)))))
	requireConstraint(t, s.Payments.Create(ctx, fakePayment(2, ptr(int64(1)))),
		"payment", "order_id", models.RuleUnique)

	o := fakeOrder(2)
	o.ShopID = ptr(int64(77))
	requireConstraint(t, s.Orders.Create(ctx, o), "order", "shop_id", models.RuleForeignKey)

	require.NoError(t, s.Products.Create(ctx, fakeProduct(1)))
	requireConstraint(t, s.Products.Create(ctx, fakeProduct(1)), "product", "id", models.RuleUnique)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO models (id, product_id, qmin, qmax, price) VALUES (1, 1, 0, 0, 0)`)
	requireConstraint(t, s.Models.translate(err), "model", "price", models.RuleCheck)
}

func TestPostgresShopHours(t *testing.T) {
	ctx := context.Background()
	s := setupPostgresStore(t)

	shop := fakeShop(1)
	shop.OpensAt = "08:00"
	require.NoError(t, s.Shops.Create(ctx, shop))

	got, err := s.Shops.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.TimeOfDay("08:00"), got.OpensAt)
	assert.Equal(t, models.Midnight, got.ClosesAt)
	assert.True(t, got.Latitude.Equal(shop.Latitude))
}
