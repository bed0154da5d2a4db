// Package validate checks raw input values against declarative constraints.
package validate

import (
	"fmt"
	"reflect"
	"unicode/utf8"
)

// Validatable describes a value and the constraints it must satisfy.
// Nil bounds are not checked.
type Validatable struct {
	Value     any
	Required  bool
	MinLength *int
	MaxLength *int
	Min       *float64
	Max       *float64
}

// Int returns a pointer to n for use as a length bound
func Int(n int) *int {
	return &n
}

// Float returns a pointer to f for use as a numeric bound
func Float(f float64) *float64 {
	return &f
}

// Validate reports whether v satisfies every applicable constraint.
// A nil value never satisfies Required.
// Length bounds only apply to strings and numeric bounds only to numbers;
// a bound that does not apply to the value's kind passes.
func Validate(v Validatable) bool {
	valid := true

	if v.Required {
		valid = valid && v.Value != nil && len(fmt.Sprint(v.Value)) != 0
	}

	if s, ok := v.Value.(string); ok {
		length := utf8.RuneCountInString(s)
		if v.MinLength != nil {
			valid = valid && length >= *v.MinLength
		}
		if v.MaxLength != nil {
			valid = valid && length <= *v.MaxLength
		}
	}

	if n, ok := numeric(v.Value); ok {
		if v.Min != nil {
			valid = valid && n >= *v.Min
		}
		if v.Max != nil {
			valid = valid && n <= *v.Max
		}
	}

	return valid
}

// numeric converts any Go integer or float kind to float64
func numeric(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
