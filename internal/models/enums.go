package models

type OrderStatus string

const (
	StatusPending OrderStatus = "pending"
	StatusPaid    OrderStatus = "paid"
	StatusSent    OrderStatus = "sent"
	StatusDone    OrderStatus = "done"
	StatusError   OrderStatus = "error"
)

// OrderStatuses lists the allowed values in lifecycle order. Transitions
// between them are owned by callers.
var OrderStatuses = []OrderStatus{StatusPending, StatusPaid, StatusSent, StatusDone, StatusError}

func (s OrderStatus) Valid() bool { return contains(OrderStatuses, s) }

type PaymentMode string

const (
	ModePersonal PaymentMode = "personal"
	ModeMercPago PaymentMode = "mercpago"
	ModeNeteller PaymentMode = "neteller"
	ModeSkrill   PaymentMode = "skrill"
	ModeUala     PaymentMode = "uala"
)

var PaymentModes = []PaymentMode{ModePersonal, ModeMercPago, ModeNeteller, ModeSkrill, ModeUala}

func (m PaymentMode) Valid() bool { return contains(PaymentModes, m) }

type LimitBasis string

const (
	LimitTimes LimitBasis = "times"
	LimitDay   LimitBasis = "day"
	LimitWeek  LimitBasis = "week"
	LimitMonth LimitBasis = "month"
)

var LimitBases = []LimitBasis{LimitTimes, LimitDay, LimitWeek, LimitMonth}

func (b LimitBasis) Valid() bool { return contains(LimitBases, b) }

// TargetKind discriminates what a review is about.
type TargetKind string

const (
	TargetOrder    TargetKind = "order"
	TargetShop     TargetKind = "shop"
	TargetProduct  TargetKind = "product"
	TargetDelivery TargetKind = "delivery"
)

var TargetKinds = []TargetKind{TargetOrder, TargetShop, TargetProduct, TargetDelivery}

func (k TargetKind) Valid() bool { return contains(TargetKinds, k) }

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Strings renders an enumeration as plain strings, e.g. for CHECK constraints.
func Strings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
