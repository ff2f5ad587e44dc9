package models

import "github.com/shopspring/decimal"

type Shop struct {
	ID            int64           `json:"id" db:"id" validate:"gt=0"`
	Name          string          `json:"name" db:"name" validate:"required,max=255"`
	Description   string          `json:"description" db:"description"`
	Email         string          `json:"email" db:"email" validate:"required,email,max=254"`
	Phone         string          `json:"phone" db:"phone" validate:"required,max=255"`
	OpensAt       TimeOfDay       `json:"opens_at" db:"opens_at" validate:"datetime=15:04"`
	ClosesAt      TimeOfDay       `json:"closes_at" db:"closes_at" validate:"datetime=15:04"`
	Unavailable   bool            `json:"unavailable" db:"unavailable"`
	Pin           int64           `json:"pin" db:"pin" validate:"zero"`
	Address       string          `json:"address" db:"address" validate:"required,max=255"`
	Address2      string          `json:"address2" db:"address2" validate:"max=255"`
	City          string          `json:"city" db:"city" validate:"required,max=255"`
	Latitude      decimal.Decimal `json:"latitude" db:"latitude" validate:"latitude,decimal=11 8"`
	Longitude     decimal.Decimal `json:"longitude" db:"longitude" validate:"longitude,decimal=11 8"`
	DeliveryCost  decimal.Decimal `json:"delivery_cost" db:"delivery_cost" validate:"price,decimal=6 2"`
	DeliveryRange int64           `json:"delivery_range" db:"delivery_range" validate:"zero"`
	Image         string          `json:"image" db:"image" validate:"max=255"`
}

func (*Shop) EntityName() string { return "shop" }

func (s *Shop) SetDefaults() {
	if s.OpensAt == "" {
		s.OpensAt = Midnight
	}
	if s.ClosesAt == "" {
		s.ClosesAt = Midnight
	}
}
