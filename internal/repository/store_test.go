package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cheertaboi/marketplace-schema/internal/models"
)

func requireConstraint(t *testing.T, err error, entity, field, rule string) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, models.ErrConstraint), "not a constraint error: %v", err)
	for _, v := range models.Violations(err) {
		if v.Entity == entity && v.Field == field && v.Rule == rule {
			return
		}
	}
	t.Fatalf("expected %s.%s %s, got %v", entity, field, rule, err)
}

func TestUserRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	u := fakeUser(1)
	u.Birth = ptr(models.NewDate(1990, 12, 24))
	require.NoError(t, s.Users.Create(ctx, u))

	got, err := s.Users.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)
	assert.Equal(t, "2020-01-15", got.Since.String())
	require.NotNil(t, got.Birth)
	assert.Equal(t, "1990-12-24", got.Birth.String())
	assert.Nil(t, got.Avatar)
	assert.False(t, got.IsSuperuser)

	byEmail, err := s.Users.GetByEmail(ctx, u.Email)
	require.NoError(t, err)
	assert.Equal(t, int64(1), byEmail.ID)

	got.IsSuperuser = true
	require.NoError(t, s.Users.Update(ctx, got))
	again, err := s.Users.Get(ctx, 1)
	require.NoError(t, err)
	assert.True(t, again.IsSuperuser)
}

func TestUniqueEmail(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first := fakeUser(1)
	require.NoError(t, s.Users.Create(ctx, first))

	second := fakeUser(2)
	second.Email = first.Email
	requireConstraint(t, s.Users.Create(ctx, second), "user", "email", models.RuleUnique)
}

func TestDuplicateID(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Products.Create(ctx, fakeProduct(1)))
	requireConstraint(t, s.Products.Create(ctx, fakeProduct(1)), "product", "id", models.RuleUnique)
}

func TestValidationRejectsBeforeWrite(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.Products.Create(ctx, fakeProduct(1)))

	m := fakeModel(1, 1)
	m.Price = decimal.Zero
	requireConstraint(t, s.Models.Create(ctx, m), "model", "price", "price")

	_, err := s.Models.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	m.Price = decimal.RequireFromString("0.01")
	require.NoError(t, s.Models.Create(ctx, m))
	got, err := s.Models.Get(ctx, 1)
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("0.01")))
}

func TestStorageChecksBackValidation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO payments (id, paid_at, payment_mode, amount) VALUES (1, ?, 'personal', 0)`, testClock)
	requireConstraint(t, s.Payments.translate(err), "payment", "amount", models.RuleCheck)

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO payments (id, paid_at, payment_mode, amount) VALUES (1, ?, 'paypal', 5)`, testClock)
	requireConstraint(t, s.Payments.translate(err), "payment", "payment_mode", models.RuleCheck)
}

func TestOrderDefaultsAndAutoNow(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Orders.Create(ctx, fakeOrder(1)))

	got, err := s.Orders.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.True(t, testClock.Equal(got.PlacedAt), "placed_at %v", got.PlacedAt)
	assert.True(t, got.Tax.IsZero())
	assert.True(t, got.Gross.Equal(decimal.RequireFromString("25.98")))
	assert.JSONEq(t, `[{"model_id":1,"qty":2}]`, string(got.Cart))
	assert.JSONEq(t, `["WELCOME"]`, string(got.Coupons))

	got.Status = "shipped"
	requireConstraint(t, s.Orders.Update(ctx, got), "order", "status", "oneof")

	got.Status = models.StatusPaid
	require.NoError(t, s.Orders.Update(ctx, got))
	paid, err := s.Orders.ListByStatus(ctx, models.StatusPaid)
	require.NoError(t, err)
	assert.Len(t, paid, 1)
}

func TestSecondPaymentForOrderRejected(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Orders.Create(ctx, fakeOrder(1)))
	require.NoError(t, s.Payments.Create(ctx, fakePayment(1, ptr(int64(1)))))

	err := s.Payments.Create(ctx, fakePayment(2, ptr(int64(1))))
	requireConstraint(t, err, "payment", "order_id", models.RuleUnique)

	p, err := s.Payments.GetByOrder(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, models.ModePersonal, p.PaymentMode)

	// detached payments do not collide
	require.NoError(t, s.Payments.Create(ctx, fakePayment(3, nil)))
	require.NoError(t, s.Payments.Create(ctx, fakePayment(4, nil)))
}

func TestDeleteOrderDetachesPayment(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Orders.Create(ctx, fakeOrder(1)))
	require.NoError(t, s.Payments.Create(ctx, fakePayment(1, ptr(int64(1)))))
	require.NoError(t, s.Orders.Delete(ctx, 1))

	p, err := s.Payments.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, p.OrderID)
}

func TestDeleteShopNullsOrderReference(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Shops.Create(ctx, fakeShop(1)))
	o := fakeOrder(1)
	o.ShopID = ptr(int64(1))
	require.NoError(t, s.Orders.Create(ctx, o))

	byShop, err := s.Orders.ListByShop(ctx, 1)
	require.NoError(t, err)
	require.Len(t, byShop, 1)

	require.NoError(t, s.Shops.Delete(ctx, 1))

	got, err := s.Orders.Get(ctx, 1)
	require.NoError(t, err, "order must survive its shop")
	assert.Nil(t, got.ShopID)
}

func TestDeleteProductCascadesModels(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Products.Create(ctx, fakeProduct(1)))
	require.NoError(t, s.Products.Create(ctx, fakeProduct(2)))
	require.NoError(t, s.Models.Create(ctx, fakeModel(10, 1)))
	require.NoError(t, s.Models.Create(ctx, fakeModel(11, 1)))
	require.NoError(t, s.Models.Create(ctx, fakeModel(20, 2)))

	require.NoError(t, s.Products.Delete(ctx, 1))

	_, err := s.Models.Get(ctx, 10)
	assert.ErrorIs(t, err, ErrNotFound)
	left, err := s.Models.ListByProduct(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, left)

	other, err := s.Models.ListByProduct(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Users.Create(ctx, fakeUser(1)))
	require.NoError(t, s.Addresses.Create(ctx, fakeAddress(1, 1)))
	require.NoError(t, s.Deliveries.Create(ctx, fakeDelivery(1, 1)))

	o := fakeOrder(1)
	o.UserID = ptr(int64(1))
	o.AddressID = ptr(int64(1))
	o.DeliveryID = ptr(int64(1))
	require.NoError(t, s.Orders.Create(ctx, o))

	courier, err := s.Deliveries.GetByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), courier.ID)

	require.NoError(t, s.Users.Delete(ctx, 1))

	addr, err := s.Addresses.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, addr.UserID)

	_, err = s.Deliveries.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound, "courier capability goes with the account")

	got, err := s.Orders.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got.UserID)
	assert.Nil(t, got.DeliveryID)
	require.NotNil(t, got.AddressID)
	assert.Equal(t, int64(1), *got.AddressID)
}

func TestMissingReferenceRejected(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	o := fakeOrder(1)
	o.ShopID = ptr(int64(42))
	err := s.Orders.Create(ctx, o)
	require.Error(t, err)
	ce := models.Violations(err)
	require.Len(t, ce, 1)
	assert.Equal(t, &models.ConstraintError{Entity: "order", Field: "shop_id", Rule: models.RuleForeignKey, Param: "shops"}, ce[0])

	requireConstraint(t, s.Deliveries.Create(ctx, fakeDelivery(1, 42)), "delivery", "user_id", models.RuleForeignKey)

	require.NoError(t, s.Shops.Create(ctx, fakeShop(1)))
	o = fakeOrder(2)
	o.ShopID = ptr(int64(1))
	o.AddressID = ptr(int64(8))
	requireConstraint(t, s.Orders.Create(ctx, o), "order", "address_id", models.RuleForeignKey)

	o.AddressID = nil
	require.NoError(t, s.Orders.Create(ctx, o))
	o.DeliveryID = ptr(int64(3))
	requireConstraint(t, s.Orders.Update(ctx, o), "order", "delivery_id", models.RuleForeignKey)
}

func TestReviewMissingOrderNamed(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.Shops.Create(ctx, fakeShop(1)))

	rv := &models.Review{ID: 1, OrderID: ptr(int64(5)), ReviewTarget: models.ReviewOfShop(1), Score: 3, Review: "late"}
	requireConstraint(t, s.Reviews.Create(ctx, rv), "review", "order_id", models.RuleForeignKey)
}

func TestDecimalDigitsRejectedBeforeWrite(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.Products.Create(ctx, fakeProduct(1)))

	m := fakeModel(1, 1)
	m.Price = decimal.RequireFromString("1.005")
	requireConstraint(t, s.Models.Create(ctx, m), "model", "price", "decimal")

	_, err := s.Models.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Shops.Get(ctx, 5)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Shops.Delete(ctx, 5), ErrNotFound)
	assert.ErrorIs(t, s.Shops.Update(ctx, fakeShop(5)), ErrNotFound)
}

func TestShopRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	shop := fakeShop(1)
	shop.ClosesAt = "22:30"
	require.NoError(t, s.Shops.Create(ctx, shop))
	closed := fakeShop(2)
	closed.Unavailable = true
	require.NoError(t, s.Shops.Create(ctx, closed))

	got, err := s.Shops.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.Midnight, got.OpensAt)
	assert.Equal(t, models.TimeOfDay("22:30"), got.ClosesAt)
	assert.True(t, got.Latitude.Equal(shop.Latitude), "latitude %s != %s", got.Latitude, shop.Latitude)
	assert.True(t, got.DeliveryCost.Equal(decimal.RequireFromString("3.5")))

	open, err := s.Shops.ListAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, int64(1), open[0].ID)
}

func TestProductLastUpdate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	p := fakeProduct(1)
	p.Rating = ptr(decimal.RequireFromString("4.50"))
	require.NoError(t, s.Products.Create(ctx, p))

	got, err := s.Products.GetBySlug(ctx, "product-1")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", got.LastUpdate.String())
	require.NotNil(t, got.Rating)
	assert.True(t, got.Rating.Equal(decimal.RequireFromString("4.5")))
}
