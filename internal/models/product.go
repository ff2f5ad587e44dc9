package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int64            `json:"id" db:"id" validate:"gt=0"`
	Name        string           `json:"name" db:"name" validate:"required,max=255"`
	Slug        *string          `json:"slug,omitempty" db:"slug" validate:"omitempty,slug,max=50"`
	Rating      *decimal.Decimal `json:"rating,omitempty" db:"rating" validate:"omitempty,zero,decimal=3 2"`
	LastUpdate  Date             `json:"last_update" db:"last_update"`
	Description string           `json:"description" db:"description"`
	Images      string           `json:"images" db:"images"`
}

func (*Product) EntityName() string { return "product" }

func (p *Product) Touch(now time.Time) {
	p.LastUpdate = DateOf(now)
}

// Model is a purchasable variant of a Product.
type Model struct {
	ID        int64           `json:"id" db:"id" validate:"gt=0"`
	ProductID int64           `json:"product_id" db:"product_id" validate:"gt=0"`
	Model     *string         `json:"model,omitempty" db:"model" validate:"omitempty,max=32"`
	QMin      int64           `json:"qmin" db:"qmin" validate:"zero"`
	QMax      int64           `json:"qmax" db:"qmax" validate:"zero"`
	Price     decimal.Decimal `json:"price" db:"price" validate:"price,decimal=10 2"`
}

func (*Model) EntityName() string { return "model" }
