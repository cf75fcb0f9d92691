package shapecheck

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"time"

	gojson "github.com/goccy/go-json"
)

// String returns the string leaf checker. Coercion stringifies scalars
// (123 becomes "123") and maps nil to the empty string.
func String() *Checker { return DefaultRegistry().StringChecker() }

// Number returns the number leaf checker. Values are coerced to float64;
// numeric strings parse, and input that cannot be coerced yields NaN,
// which never conforms, so validation surfaces the miss.
func Number() *Checker { return DefaultRegistry().NumberChecker() }

// Bool returns the bool leaf checker.
func Bool() *Checker { return DefaultRegistry().BoolChecker() }

// Time returns the RFC3339 timestamp leaf checker: it accepts a non-zero
// time.Time and coerces RFC3339/RFC3339Nano strings.
func Time() *Checker { return DefaultRegistry().TimeChecker() }

// JSONText returns the leaf checker for strings carrying valid JSON.
// Coercion marshals non-conforming values into their JSON rendering.
func JSONText() *Checker { return DefaultRegistry().JSONTextChecker() }

// Anything returns the universal pass-through checker: Matches is always
// true and coercion is the identity. Zero weight; it never moves the score.
func Anything() *Checker { return DefaultRegistry().Anything() }

// StringChecker builds the string leaf on this Registry.
func (r *Registry) StringChecker() *Checker {
	return r.Static("string", isString, coerceString, "expected a string", 1)
}

// NumberChecker builds the number leaf on this Registry.
func (r *Registry) NumberChecker() *Checker {
	return r.Static("number", isNumber, coerceNumber, "expected a number", 1)
}

// BoolChecker builds the bool leaf on this Registry.
func (r *Registry) BoolChecker() *Checker {
	return r.Static("bool", isBool, coerceBool, "expected a bool", 1)
}

// TimeChecker builds the timestamp leaf on this Registry.
func (r *Registry) TimeChecker() *Checker {
	return r.Static("time", isTime, coerceTime, "expected an RFC3339 timestamp", 1)
}

// JSONTextChecker builds the JSON-text leaf on this Registry.
func (r *Registry) JSONTextChecker() *Checker {
	return r.Static("json", isJSONText, coerceJSONText, "expected a JSON document", 1)
}

// Anything builds the universal pass-through checker on this Registry.
func (r *Registry) Anything() *Checker {
	return r.New("any", 0, anythingImpl{})
}

type anythingImpl struct{}

func (anythingImpl) Matches(ctx context.Context, v any, st *Status) (bool, error) { return true, nil }
func (anythingImpl) Coerce(ctx context.Context, v any, st *Status) (any, error)   { return v, nil }

// ---- string ----

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

func coerceString(v any) any {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int8:
		return strconv.FormatInt(int64(t), 10)
	case int16:
		return strconv.FormatInt(int64(t), 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint8:
		return strconv.FormatUint(uint64(t), 10)
	case uint16:
		return strconv.FormatUint(uint64(t), 10)
	case uint32:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case []byte:
		return string(t)
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	default:
		b, err := gojson.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// ---- number ----

func isNumber(v any) bool {
	f, ok := toFloat(v)
	return ok && !math.IsNaN(f) && !math.IsInf(f, 0)
}

func coerceNumber(v any) any {
	if f, ok := toFloat(v); ok {
		return f
	}
	switch t := v.(type) {
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return f
		}
		return math.NaN()
	case bool:
		if t {
			return float64(1)
		}
		return float64(0)
	default:
		return math.NaN()
	}
}

// ---- bool ----

func isBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

func coerceBool(v any) any {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		if b, err := strconv.ParseBool(t); err == nil {
			return b
		}
		return false
	default:
		if f, ok := toFloat(v); ok {
			return f != 0
		}
		return false
	}
}

// ---- time ----

func isTime(v any) bool {
	t, ok := v.(time.Time)
	return ok && !t.IsZero()
}

func coerceTime(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		// RFC3339Nano first; plain RFC3339 as fallback.
		if ts, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return ts
		}
		if ts, err := time.Parse(time.RFC3339, t); err == nil {
			return ts
		}
		return time.Time{}
	default:
		return time.Time{}
	}
}

// ---- json text ----

func isJSONText(v any) bool {
	s, ok := v.(string)
	return ok && gojson.Valid([]byte(s))
}

func coerceJSONText(v any) any {
	if s, ok := v.(string); ok && gojson.Valid([]byte(s)) {
		return s
	}
	b, err := gojson.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}
