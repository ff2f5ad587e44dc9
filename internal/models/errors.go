package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConstraint matches every constraint violation, whether it was caught by
// validation or reported by the storage engine.
var ErrConstraint = errors.New("constraint violation")

// Rules reported by the storage engine. Validation rules use the validator
// tag names (required, email, max, oneof, price, zero, ...).
const (
	RuleUnique     = "unique"
	RuleForeignKey = "foreign_key"
	RuleCheck      = "check"
	RuleRequired   = "required"
	RuleMaxDigits  = "max_digits"
)

type ConstraintError struct {
	Entity string `json:"entity"`
	Field  string `json:"field,omitempty"`
	Rule   string `json:"rule"`
	Param  string `json:"param,omitempty"`
}

func (e *ConstraintError) Error() string {
	var b strings.Builder
	b.WriteString(e.Entity)
	if e.Field != "" {
		b.WriteString(".")
		b.WriteString(e.Field)
	}
	b.WriteString(" violates ")
	b.WriteString(e.Rule)
	if e.Param != "" {
		fmt.Fprintf(&b, "=%s", e.Param)
	}
	return b.String()
}

func (e *ConstraintError) Is(target error) bool {
	return target == ErrConstraint
}

// ValidationErrors holds one violation per offending field.
type ValidationErrors []*ConstraintError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, len(v))
	for i, e := range v {
		errs[i] = e
	}
	return errs
}

// Violations flattens err into its constraint errors. It returns nil when err
// carries none.
func Violations(err error) []*ConstraintError {
	var list ValidationErrors
	if errors.As(err, &list) {
		return list
	}
	var single *ConstraintError
	if errors.As(err, &single) {
		return []*ConstraintError{single}
	}
	return nil
}
