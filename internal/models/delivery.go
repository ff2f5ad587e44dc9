package models

import "github.com/shopspring/decimal"

// Delivery marks a user as a courier. The person's name and contact details
// live on the referenced User.
type Delivery struct {
	ID     int64           `json:"id" db:"id" validate:"gt=0"`
	UserID int64           `json:"user_id" db:"user_id" validate:"gt=0"`
	Tasks  int64           `json:"tasks" db:"tasks" validate:"zero"`
	Miles  decimal.Decimal `json:"miles" db:"miles" validate:"zero,decimal=4 1"`
	Rating decimal.Decimal `json:"rating" db:"rating" validate:"zero,decimal=3 2"`
	Since  Date            `json:"since" db:"since" validate:"required"`
	Shops  Document        `json:"shops" db:"shops" validate:"json_document"`
}

func (*Delivery) EntityName() string { return "delivery" }
