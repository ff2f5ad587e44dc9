package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment settles an Order. At most one payment references a given order.
type Payment struct {
	ID          int64           `json:"id" db:"id" validate:"gt=0"`
	PaidAt      time.Time       `json:"paid_at" db:"paid_at" validate:"required"`
	OrderID     *int64          `json:"order_id,omitempty" db:"order_id" validate:"omitempty,gt=0"`
	PaymentMode PaymentMode     `json:"payment_mode" db:"payment_mode" validate:"oneof=personal mercpago neteller skrill uala"`
	Amount      decimal.Decimal `json:"amount" db:"amount" validate:"price,decimal=10 2"`
}

func (*Payment) EntityName() string { return "payment" }

func (p *Payment) SetDefaults() {
	if p.PaymentMode == "" {
		p.PaymentMode = ModePersonal
	}
}
