package repository

import (
	"context"

	"github.com/Cheertaboi/marketplace-schema/internal/models"
)

type OrderRepo struct {
	repo[models.Order, *models.Order]
}

func (r *OrderRepo) ListByShop(ctx context.Context, shopID int64) ([]models.Order, error) {
	return r.list(ctx, "shop_id = ?", shopID)
}

func (r *OrderRepo) ListByUser(ctx context.Context, userID int64) ([]models.Order, error) {
	return r.list(ctx, "user_id = ?", userID)
}

func (r *OrderRepo) ListByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	return r.list(ctx, "status = ?", status)
}

type PaymentRepo struct {
	repo[models.Payment, *models.Payment]
}

// GetByOrder returns the payment attached to an order. The unique constraint
// on payments.order_id guarantees at most one.
func (r *PaymentRepo) GetByOrder(ctx context.Context, orderID int64) (*models.Payment, error) {
	var p models.Payment
	query := r.db.Rebind(r.selectSQL + " WHERE order_id = ?")
	if err := r.db.GetContext(ctx, &p, query, orderID); err != nil {
		return nil, r.translate(err)
	}
	return &p, nil
}
