package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID           int64           `json:"id" db:"id" validate:"gt=0"`
	PlacedAt     time.Time       `json:"placed_at" db:"placed_at"`
	Status       OrderStatus     `json:"status" db:"status" validate:"oneof=pending paid sent done error"`
	UserID       *int64          `json:"user_id,omitempty" db:"user_id" validate:"omitempty,gt=0"`
	Gross        decimal.Decimal `json:"gross" db:"gross" validate:"zero,decimal=10 2"`
	Coupons      Document        `json:"coupons" db:"coupons" validate:"json_document"`
	Tax          decimal.Decimal `json:"tax" db:"tax" validate:"zero,decimal=10 2"`
	Discount     decimal.Decimal `json:"discount" db:"discount" validate:"zero,decimal=10 2"`
	DeliveryCost decimal.Decimal `json:"delivery_cost" db:"delivery_cost" validate:"zero,decimal=10 2"`
	Amount       decimal.Decimal `json:"amount" db:"amount" validate:"zero,decimal=10 2"`
	Reviewed     bool            `json:"reviewed" db:"reviewed"`
	Cart         Document        `json:"cart" db:"cart" validate:"json_document"`
	ShopID       *int64          `json:"shop_id,omitempty" db:"shop_id" validate:"omitempty,gt=0"`
	AddressID    *int64          `json:"address_id,omitempty" db:"address_id" validate:"omitempty,gt=0"`
	DeliveryID   *int64          `json:"delivery_id,omitempty" db:"delivery_id" validate:"omitempty,gt=0"`
}

func (*Order) EntityName() string { return "order" }

func (o *Order) SetDefaults() {
	if o.Status == "" {
		o.Status = StatusPending
	}
}

func (o *Order) Touch(now time.Time) {
	o.PlacedAt = now.UTC()
}
