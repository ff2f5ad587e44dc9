package repository

import (
	"context"

	"github.com/Cheertaboi/marketplace-schema/internal/models"
)

type ShopRepo struct {
	repo[models.Shop, *models.Shop]
}

// ListAvailable returns shops not flagged unavailable.
func (r *ShopRepo) ListAvailable(ctx context.Context) ([]models.Shop, error) {
	return r.list(ctx, "unavailable = ?", false)
}

type ProductRepo struct {
	repo[models.Product, *models.Product]
}

func (r *ProductRepo) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var p models.Product
	query := r.db.Rebind(r.selectSQL + " WHERE slug = ?")
	if err := r.db.GetContext(ctx, &p, query, slug); err != nil {
		return nil, r.translate(err)
	}
	return &p, nil
}

type ModelRepo struct {
	repo[models.Model, *models.Model]
}

func (r *ModelRepo) ListByProduct(ctx context.Context, productID int64) ([]models.Model, error) {
	return r.list(ctx, "product_id = ?", productID)
}
