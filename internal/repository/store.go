package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Cheertaboi/marketplace-schema/internal/cache"
	"github.com/Cheertaboi/marketplace-schema/internal/models"
)

type targetLoader func(ctx context.Context, id int64) (models.Entity, error)

// Store bundles the repositories of every entity over one connection pool.
type Store struct {
	db  *sqlx.DB
	now func() time.Time

	Users      *UserRepo
	Addresses  *AddressRepo
	Shops      *ShopRepo
	Products   *ProductRepo
	Models     *ModelRepo
	Deliveries *DeliveryRepo
	Orders     *OrderRepo
	Reviews    *ReviewRepo
	Payments   *PaymentRepo
	Coupons    *CouponRepo

	targets map[models.TargetKind]targetLoader
}

type Option func(*Store)

// WithClock overrides the time source used for auto-now fields.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(conn *sqlx.DB, opts ...Option) *Store {
	s := &Store{db: conn, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	now := func() time.Time { return s.now() }
	s.Users = &UserRepo{newRepo[models.User, *models.User](conn, "users", now)}
	s.Addresses = &AddressRepo{newRepo[models.Address, *models.Address](conn, "addresses", now)}
	s.Shops = &ShopRepo{newRepo[models.Shop, *models.Shop](conn, "shops", now)}
	s.Products = &ProductRepo{newRepo[models.Product, *models.Product](conn, "products", now)}
	s.Models = &ModelRepo{newRepo[models.Model, *models.Model](conn, "models", now)}
	s.Deliveries = &DeliveryRepo{newRepo[models.Delivery, *models.Delivery](conn, "deliveries", now)}
	s.Orders = &OrderRepo{newRepo[models.Order, *models.Order](conn, "orders", now)}
	s.Reviews = &ReviewRepo{newRepo[models.Review, *models.Review](conn, "reviews", now)}
	s.Payments = &PaymentRepo{newRepo[models.Payment, *models.Payment](conn, "payments", now)}
	s.Coupons = &CouponRepo{
		repo:  newRepo[models.Coupon, *models.Coupon](conn, "coupons", now),
		cache: cache.NewCouponCache(),
	}

	s.targets = map[models.TargetKind]targetLoader{
		models.TargetOrder:    loader(s.Orders.Get),
		models.TargetShop:     loader(s.Shops.Get),
		models.TargetProduct:  loader(s.Products.Get),
		models.TargetDelivery: loader(s.Deliveries.Get),
	}
	return s
}

func loader[P models.Entity](get func(context.Context, int64) (P, error)) targetLoader {
	return func(ctx context.Context, id int64) (models.Entity, error) {
		e, err := get(ctx, id)
		if err != nil {
			return nil, err
		}
		return e, nil
	}
}

// ResolveReviewTarget loads the entity a review points at. The result is a
// *models.Order, *models.Shop, *models.Product or *models.Delivery.
func (s *Store) ResolveReviewTarget(ctx context.Context, target models.ReviewTarget) (models.Entity, error) {
	load, ok := s.targets[target.Kind]
	if !ok {
		return nil, fmt.Errorf("resolve review target %s: unknown kind", target)
	}
	return load(ctx, target.ID)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}
