package models

// DefaultCouponID is assigned to coupons created without an id.
const DefaultCouponID int64 = 123456789

type Coupon struct {
	ID         int64      `json:"id" db:"id" validate:"gt=0"`
	LimitUses  int64      `json:"limit_uses" db:"limit_uses" validate:"zero"`
	LimitBasis LimitBasis `json:"limit_basis" db:"limit_basis" validate:"oneof=times day week month"`
	Expires    *Date      `json:"expires,omitempty" db:"expires"`
	Discount   Document   `json:"discount" db:"discount" validate:"json_document"`
}

func (*Coupon) EntityName() string { return "coupon" }

func (c *Coupon) SetDefaults() {
	if c.ID == 0 {
		c.ID = DefaultCouponID
	}
	if c.LimitUses == 0 {
		c.LimitUses = 1
	}
	if c.LimitBasis == "" {
		c.LimitBasis = LimitTimes
	}
}
