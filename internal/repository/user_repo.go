package repository

import (
	"context"

	"github.com/Cheertaboi/marketplace-schema/internal/models"
)

type UserRepo struct {
	repo[models.User, *models.User]
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	query := r.db.Rebind(r.selectSQL + " WHERE email = ?")
	if err := r.db.GetContext(ctx, &u, query, email); err != nil {
		return nil, r.translate(err)
	}
	return &u, nil
}

type AddressRepo struct {
	repo[models.Address, *models.Address]
}

func (r *AddressRepo) ListByUser(ctx context.Context, userID int64) ([]models.Address, error) {
	return r.list(ctx, "user_id = ?", userID)
}

type DeliveryRepo struct {
	repo[models.Delivery, *models.Delivery]
}

func (r *DeliveryRepo) GetByUser(ctx context.Context, userID int64) (*models.Delivery, error) {
	var d models.Delivery
	query := r.db.Rebind(r.selectSQL + " WHERE user_id = ?")
	if err := r.db.GetContext(ctx, &d, query, userID); err != nil {
		return nil, r.translate(err)
	}
	return &d, nil
}
