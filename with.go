package shapecheck

import (
	"context"
	"sort"
	"strconv"
)

// With returns an object-shape checker over the given field descriptions,
// each resolved through the registry's dispatch rules. Field checkers run
// with the field key as an extra path segment, so a weight-1 leaf failing at
// key "age" is recorded as "number.age".
func (r *Registry) With(fields map[string]any) *Checker {
	resolved := make(map[string]*Checker, len(fields))
	for k, d := range fields {
		resolved[k] = r.As(d)
	}
	return r.newWith(resolved)
}

// With builds an object-shape checker against the default vocabulary.
func With(fields map[string]any) *Checker { return DefaultRegistry().With(fields) }

// Items returns an array checker applying one element description to every
// element.
func (r *Registry) Items(desc any) *Checker { return r.newItems(r.As(desc)) }

// Items builds an element-template array checker against the default
// vocabulary.
func Items(desc any) *Checker { return DefaultRegistry().Items(desc) }

// Tuple returns a fixed-length array checker with one description per
// position.
func (r *Registry) Tuple(descs ...any) *Checker {
	elems := make([]*Checker, len(descs))
	for i, d := range descs {
		elems[i] = r.As(d)
	}
	return r.newTuple(elems)
}

// Tuple builds a positional array checker against the default vocabulary.
func Tuple(descs ...any) *Checker { return DefaultRegistry().Tuple(descs...) }

func (r *Registry) newWith(fields map[string]*Checker) *Checker {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return r.New("", 0, withImpl{fields: fields, keys: keys})
}

func (r *Registry) newItems(elem *Checker) *Checker {
	return r.New("", 0, itemsImpl{elem: elem})
}

func (r *Registry) newTuple(elems []*Checker) *Checker {
	return r.New("", 0, tupleImpl{elems: elems})
}

// withImpl checks every declared field even after the first miss, so one
// pass reports all mismatched keys. Keys are walked in sorted order to keep
// recorded failures deterministic. Missing fields are evaluated as nil;
// undeclared keys pass through coercion untouched.
type withImpl struct {
	fields map[string]*Checker
	keys   []string
}

func (w withImpl) Matches(ctx context.Context, v any, st *Status) (bool, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return false, nil
	}
	all := true
	for _, k := range w.keys {
		ok, err := w.fields[k].Matches(ctx, m[k], st, k)
		if err != nil {
			return false, err
		}
		if !ok {
			all = false
		}
	}
	return all, nil
}

func (w withImpl) Coerce(ctx context.Context, v any, st *Status) (any, error) {
	m, _ := v.(map[string]any)
	out := make(map[string]any, len(m)+len(w.fields))
	for k, fv := range m {
		if _, declared := w.fields[k]; !declared {
			out[k] = fv
		}
	}
	for _, k := range w.keys {
		cv, err := w.fields[k].Coerce(ctx, m[k], st, k)
		if err != nil {
			return out, err
		}
		out[k] = cv
	}
	return out, nil
}

func (w withImpl) Validate(ctx context.Context, v any, st *Status) (any, error) {
	m, _ := v.(map[string]any)
	out := make(map[string]any, len(m)+len(w.fields))
	for k, fv := range m {
		if _, declared := w.fields[k]; !declared {
			out[k] = fv
		}
	}
	for _, k := range w.keys {
		cv, err := w.fields[k].Validate(ctx, m[k], st, k)
		if err != nil {
			return out, err
		}
		out[k] = cv
	}
	return out, nil
}

// itemsImpl applies one element checker to each element. Element calls push
// the decimal index as an extra segment. Coercing a non-array wraps the
// value into a single-element slice after coercing it.
type itemsImpl struct {
	elem *Checker
}

func (it itemsImpl) Matches(ctx context.Context, v any, st *Status) (bool, error) {
	s, ok := v.([]any)
	if !ok {
		return false, nil
	}
	all := true
	for i, e := range s {
		ok, err := it.elem.Matches(ctx, e, st, strconv.Itoa(i))
		if err != nil {
			return false, err
		}
		if !ok {
			all = false
		}
	}
	return all, nil
}

func (it itemsImpl) Coerce(ctx context.Context, v any, st *Status) (any, error) {
	s, ok := v.([]any)
	if !ok {
		cv, err := it.elem.Coerce(ctx, v, st, "0")
		return []any{cv}, err
	}
	out := make([]any, len(s))
	for i, e := range s {
		cv, err := it.elem.Coerce(ctx, e, st, strconv.Itoa(i))
		if err != nil {
			return out, err
		}
		out[i] = cv
	}
	return out, nil
}

func (it itemsImpl) Validate(ctx context.Context, v any, st *Status) (any, error) {
	s, ok := v.([]any)
	if !ok {
		cv, err := it.elem.Validate(ctx, v, st, "0")
		return []any{cv}, err
	}
	out := make([]any, len(s))
	for i, e := range s {
		cv, err := it.elem.Validate(ctx, e, st, strconv.Itoa(i))
		if err != nil {
			return out, err
		}
		out[i] = cv
	}
	return out, nil
}

// tupleImpl checks a fixed-length array positionally. Matching requires the
// exact length; coercion always yields the declared length, reading absent
// positions as nil.
type tupleImpl struct {
	elems []*Checker
}

func (tp tupleImpl) Matches(ctx context.Context, v any, st *Status) (bool, error) {
	s, ok := v.([]any)
	if !ok || len(s) != len(tp.elems) {
		return false, nil
	}
	all := true
	for i, e := range s {
		ok, err := tp.elems[i].Matches(ctx, e, st, strconv.Itoa(i))
		if err != nil {
			return false, err
		}
		if !ok {
			all = false
		}
	}
	return all, nil
}

func (tp tupleImpl) Coerce(ctx context.Context, v any, st *Status) (any, error) {
	s, _ := v.([]any)
	out := make([]any, len(tp.elems))
	for i, ec := range tp.elems {
		var e any
		if i < len(s) {
			e = s[i]
		}
		cv, err := ec.Coerce(ctx, e, st, strconv.Itoa(i))
		if err != nil {
			return out, err
		}
		out[i] = cv
	}
	return out, nil
}

func (tp tupleImpl) Validate(ctx context.Context, v any, st *Status) (any, error) {
	s, _ := v.([]any)
	out := make([]any, len(tp.elems))
	for i, ec := range tp.elems {
		var e any
		if i < len(s) {
			e = s[i]
		}
		cv, err := ec.Validate(ctx, e, st, strconv.Itoa(i))
		if err != nil {
			return out, err
		}
		out[i] = cv
	}
	return out, nil
}
