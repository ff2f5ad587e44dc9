package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Cheertaboi/marketplace-schema/internal/models"
	"github.com/Cheertaboi/marketplace-schema/pkg/db"
)

var testClock = time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	conn, err := db.NewSQLiteConnection(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, Migrate(ctx, conn))
	return NewStore(conn, WithClock(func() time.Time { return testClock }))
}

func ptr[T any](v T) *T { return &v }

func fakeUser(id int64) *models.User {
	return &models.User{
		ID:      id,
		Email:   fmt.Sprintf("u%d.%s", id, gofakeit.Email()),
		Name:    gofakeit.FirstName(),
		Surname: gofakeit.LastName(),
		Phone:   gofakeit.Numerify("##########"),
		Since:   models.NewDate(2020, 1, 15),
	}
}

func fakeCoordinates() (decimal.Decimal, decimal.Decimal) {
	return decimal.NewFromFloat(gofakeit.Latitude()).Round(8),
		decimal.NewFromFloat(gofakeit.Longitude()).Round(8)
}

func fakeAddress(id, userID int64) *models.Address {
	lat, lng := fakeCoordinates()
	return &models.Address{
		ID:        id,
		UserID:    &userID,
		Latitude:  lat,
		Longitude: lng,
		Address:   gofakeit.Street(),
		City:      gofakeit.City(),
		Pin:       1000,
	}
}

func fakeShop(id int64) *models.Shop {
	lat, lng := fakeCoordinates()
	return &models.Shop{
		ID:           id,
		Name:         gofakeit.Company(),
		Description:  "neighbourhood store",
		Email:        fmt.Sprintf("shop%d@example.com", id),
		Phone:        gofakeit.Numerify("##########"),
		Pin:          2000,
		Address:      gofakeit.Street(),
		City:         gofakeit.City(),
		Latitude:     lat,
		Longitude:    lng,
		DeliveryCost: decimal.RequireFromString("3.50"),
		Image:        "shop.png",
	}
}

func fakeProduct(id int64) *models.Product {
	return &models.Product{
		ID:          id,
		Name:        gofakeit.ProductName(),
		Slug:        ptr(fmt.Sprintf("product-%d", id)),
		Description: "a product",
		Images:      "[]",
	}
}

func fakeModel(id, productID int64) *models.Model {
	return &models.Model{
		ID:        id,
		ProductID: productID,
		Model:     ptr("500g"),
		QMin:      1,
		QMax:      20,
		Price:     decimal.RequireFromString("12.99"),
	}
}

func fakeDelivery(id, userID int64) *models.Delivery {
	return &models.Delivery{
		ID:     id,
		UserID: userID,
		Tasks:  3,
		Miles:  decimal.RequireFromString("12.5"),
		Rating: decimal.RequireFromString("4.75"),
		Since:  models.NewDate(2022, 6, 1),
		Shops:  models.MustDocument([]int64{1}),
	}
}

func fakeOrder(id int64) *models.Order {
	return &models.Order{
		ID:      id,
		Gross:   decimal.RequireFromString("25.98"),
		Amount:  decimal.RequireFromString("29.48"),
		Coupons: models.MustDocument([]string{"WELCOME"}),
		Cart:    models.MustDocument([]map[string]interface{}{{"model_id": 1, "qty": 2}}),
	}
}

func fakePayment(id int64, orderID *int64) *models.Payment {
	return &models.Payment{
		ID:      id,
		PaidAt:  testClock,
		OrderID: orderID,
		Amount:  decimal.RequireFromString("29.48"),
	}
}
