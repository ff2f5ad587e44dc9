package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report column names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("db"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	// decimals are validated from their exact string form
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		return field.Interface().(decimal.Decimal).String()
	}, decimal.Decimal{})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		return field.Interface().(Date).Time
	}, Date{})

	mustRegister(v, "dmin", decimalMin)
	mustRegister(v, "decimal", decimalDigits)

	// price-like amounts are strictly positive, the rest must not go negative
	v.RegisterAlias("price", "dmin=0.01")
	v.RegisterAlias("zero", "dmin=0")

	mustRegister(v, "slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "json_document", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(Document)
		return ok && d.IsContainer()
	})

	return v
}

// fieldDecimal reads a decimal, which arrives as its string form, or an
// integer counter.
func fieldDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	f := fl.Field()
	switch f.Kind() {
	case reflect.String:
		d, err := decimal.NewFromString(f.String())
		return d, err == nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(f.Int()), true
	default:
		return decimal.Decimal{}, false
	}
}

func decimalMin(fl validator.FieldLevel) bool {
	d, ok := fieldDecimal(fl)
	if !ok {
		return false
	}
	floor, err := decimal.NewFromString(fl.Param())
	if err != nil {
		panic(fmt.Sprintf("dmin: bad param %q", fl.Param()))
	}
	return d.Cmp(floor) >= 0
}

// decimalDigits checks a NUMERIC(precision, scale) column, tagged
// decimal=precision scale: at most scale fractional digits and
// precision-scale integer digits.
func decimalDigits(fl validator.FieldLevel) bool {
	d, ok := fieldDecimal(fl)
	if !ok {
		return false
	}
	precision, scale, err := parseDigits(fl.Param())
	if err != nil {
		panic(fmt.Sprintf("decimal: %v", err))
	}
	if !d.Equal(d.Truncate(scale)) {
		return false
	}
	return d.Abs().Cmp(decimal.New(1, precision-scale)) < 0
}

func parseDigits(param string) (int32, int32, error) {
	var precision, scale int32
	if _, err := fmt.Sscanf(param, "%d %d", &precision, &scale); err != nil {
		return 0, 0, fmt.Errorf("bad param %q: %w", param, err)
	}
	if scale < 0 || precision <= scale {
		return 0, 0, fmt.Errorf("bad param %q", param)
	}
	return precision, scale, nil
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s: %v", tag, err))
	}
}

// Validate checks e against its declared constraints. A rejected entity
// yields ValidationErrors naming every offending field.
func Validate(e Entity) error {
	err := validate.Struct(e)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate %s: %w", e.EntityName(), err)
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		param := fe.Param()
		if fe.Tag() == "decimal" {
			param = strings.Replace(param, " ", ",", 1)
		}
		out = append(out, &ConstraintError{
			Entity: e.EntityName(),
			Field:  fe.Field(),
			Rule:   fe.Tag(),
			Param:  param,
		})
	}
	return out
}
