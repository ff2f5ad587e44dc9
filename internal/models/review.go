package models

import (
	"fmt"
	"time"
)

// ReviewTarget points a review at an order, shop, product or delivery.
type ReviewTarget struct {
	Kind TargetKind `json:"kind" db:"target_kind" validate:"oneof=order shop product delivery"`
	ID   int64      `json:"id" db:"target_id" validate:"gt=0"`
}

func ReviewOfOrder(id int64) ReviewTarget    { return ReviewTarget{Kind: TargetOrder, ID: id} }
func ReviewOfShop(id int64) ReviewTarget     { return ReviewTarget{Kind: TargetShop, ID: id} }
func ReviewOfProduct(id int64) ReviewTarget  { return ReviewTarget{Kind: TargetProduct, ID: id} }
func ReviewOfDelivery(id int64) ReviewTarget { return ReviewTarget{Kind: TargetDelivery, ID: id} }

func (t ReviewTarget) String() string {
	return fmt.Sprintf("%s:%d", t.Kind, t.ID)
}

// Review embeds its target so the target columns map to target_kind and
// target_id.
type Review struct {
	ID           int64  `json:"id" db:"id" validate:"gt=0"`
	UserID       *int64 `json:"user_id,omitempty" db:"user_id" validate:"omitempty,gt=0"`
	OrderID      *int64 `json:"order_id,omitempty" db:"order_id" validate:"omitempty,gt=0"`
	ReviewTarget `json:"target"`
	Score        int64     `json:"score" db:"score" validate:"zero"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	Review       string    `json:"review" db:"review"`
}

func (*Review) EntityName() string { return "review" }

func (r *Review) Touch(now time.Time) {
	r.CreatedAt = now.UTC()
}
