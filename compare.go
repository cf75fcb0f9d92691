package shapecheck

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// Gt returns a checker for values strictly greater than n.
func Gt(n float64) *Checker { return DefaultRegistry().Gt(n) }

// Gte returns a checker for values greater than or equal to n.
func Gte(n float64) *Checker { return DefaultRegistry().Gte(n) }

// Lt returns a checker for values strictly less than n.
func Lt(n float64) *Checker { return DefaultRegistry().Lt(n) }

// Lte returns a checker for values less than or equal to n.
func Lte(n float64) *Checker { return DefaultRegistry().Lte(n) }

// Gt builds the strict lower-bound comparator on this Registry. Comparators
// test without transforming; they are meant to run after a number checker
// has normalized the value.
func (r *Registry) Gt(n float64) *Checker {
	return r.compare("gt", fmt.Sprintf("expected a value > %v", n), func(f float64) bool { return f > n })
}

// Gte builds the inclusive lower-bound comparator on this Registry.
func (r *Registry) Gte(n float64) *Checker {
	return r.compare("gte", fmt.Sprintf("expected a value >= %v", n), func(f float64) bool { return f >= n })
}

// Lt builds the strict upper-bound comparator on this Registry.
func (r *Registry) Lt(n float64) *Checker {
	return r.compare("lt", fmt.Sprintf("expected a value < %v", n), func(f float64) bool { return f < n })
}

// Lte builds the inclusive upper-bound comparator on this Registry.
func (r *Registry) Lte(n float64) *Checker {
	return r.compare("lte", fmt.Sprintf("expected a value <= %v", n), func(f float64) bool { return f <= n })
}

func (r *Registry) compare(name, msg string, cmp func(float64) bool) *Checker {
	pred := func(v any) bool {
		f, ok := toFloat(v)
		return ok && cmp(f)
	}
	return r.Static(name, pred, nil, msg, 1)
}

// toFloat reports v as a float64 when it carries a numeric value without
// parsing free-form strings. json.Number is numeric when it parses.
func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case json.Number:
		f, err := strconv.ParseFloat(t.String(), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// looseEqual compares two values treating all numeric representations of
// the same quantity as equal, so a literal 2 in a schema document matches
// the float64(2) a JSON decoder produces. Non-numeric values fall back to
// deep equality.
func looseEqual(a, b any) bool {
	fa, aok := toFloat(a)
	fb, bok := toFloat(b)
	if aok && bok {
		return fa == fb
	}
	if aok != bok {
		return false
	}
	return reflect.DeepEqual(a, b)
}
