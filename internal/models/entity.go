package models

import (
	"sort"
	"time"
)

// Entity is a persisted record type.
type Entity interface {
	EntityName() string
}

// Defaulter fills unset fields with their declared defaults.
type Defaulter interface {
	SetDefaults()
}

// Toucher stamps fields that are refreshed on every save.
type Toucher interface {
	Touch(now time.Time)
}

var constructors = map[string]func() Entity{
	"user":     func() Entity { return &User{} },
	"address":  func() Entity { return &Address{} },
	"shop":     func() Entity { return &Shop{} },
	"product":  func() Entity { return &Product{} },
	"model":    func() Entity { return &Model{} },
	"delivery": func() Entity { return &Delivery{} },
	"order":    func() Entity { return &Order{} },
	"review":   func() Entity { return &Review{} },
	"payment":  func() Entity { return &Payment{} },
	"coupon":   func() Entity { return &Coupon{} },
}

// New returns an empty entity for its name.
func New(name string) (Entity, bool) {
	fn, ok := constructors[name]
	if !ok {
		return nil, false
	}
	return fn(), true
}

func Names() []string {
	names := make([]string, 0, len(constructors))
	for n := range constructors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Prepare applies defaults then auto-now stamps. Storage calls it before
// validating a write.
func Prepare(e Entity, now time.Time) {
	if d, ok := e.(Defaulter); ok {
		d.SetDefaults()
	}
	if t, ok := e.(Toucher); ok {
		t.Touch(now)
	}
}
