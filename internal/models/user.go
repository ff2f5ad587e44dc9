package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID          int64      `json:"id" db:"id" validate:"gt=0"`
	Email       string     `json:"email" db:"email" validate:"required,email,max=64"`
	Password    string     `json:"password,omitempty" db:"password" validate:"max=128"`
	LastLogin   *time.Time `json:"last_login,omitempty" db:"last_login"`
	Name        string     `json:"name" db:"name" validate:"required,max=64"`
	Surname     string     `json:"surname" db:"surname" validate:"required,max=64"`
	Phone       string     `json:"phone" db:"phone" validate:"required,max=16"`
	Avatar      *string    `json:"avatar,omitempty" db:"avatar" validate:"omitempty,max=255"`
	Birth       *Date      `json:"birth,omitempty" db:"birth"`
	Since       Date       `json:"since" db:"since" validate:"required"`
	IsSuperuser bool       `json:"is_superuser" db:"is_superuser"`
}

func (*User) EntityName() string { return "user" }

type Address struct {
	ID        int64           `json:"id" db:"id" validate:"gt=0"`
	UserID    *int64          `json:"user_id,omitempty" db:"user_id" validate:"omitempty,gt=0"`
	Latitude  decimal.Decimal `json:"latitude" db:"latitude" validate:"latitude,decimal=11 8"`
	Longitude decimal.Decimal `json:"longitude" db:"longitude" validate:"longitude,decimal=11 8"`
	Address   string          `json:"address" db:"address" validate:"required,max=255"`
	Address2  string          `json:"address2" db:"address2" validate:"max=255"`
	City      string          `json:"city" db:"city" validate:"required,max=255"`
	Pin       int64           `json:"pin" db:"pin" validate:"zero"`
}

func (*Address) EntityName() string { return "address" }
