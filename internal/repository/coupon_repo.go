package repository

import (
	"context"

	"github.com/Cheertaboi/marketplace-schema/internal/cache"
	"github.com/Cheertaboi/marketplace-schema/internal/models"
)

// CouponRepo reads through a CouponCache. Writes refresh or drop the cached
// row.
type CouponRepo struct {
	repo[models.Coupon, *models.Coupon]
	cache *cache.CouponCache
}

func (r *CouponRepo) Create(ctx context.Context, c *models.Coupon) error {
	if err := r.repo.Create(ctx, c); err != nil {
		return err
	}
	r.cache.Set(c)
	return nil
}

func (r *CouponRepo) Get(ctx context.Context, id int64) (*models.Coupon, error) {
	if c, ok := r.cache.Get(id); ok {
		return c, nil
	}
	version := r.cache.Version(id)
	c, err := r.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	r.cache.Fill(c, version)
	return c, nil
}

func (r *CouponRepo) Update(ctx context.Context, c *models.Coupon) error {
	err := r.repo.Update(ctx, c)
	r.cache.Delete(c.ID)
	return err
}

func (r *CouponRepo) Delete(ctx context.Context, id int64) error {
	r.cache.Delete(id)
	return r.repo.Delete(ctx, id)
}
