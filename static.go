package shapecheck

import "context"

// staticImpl pairs a pure predicate with an idempotent coercion and a
// failure message. It is the raw implementation behind every leaf checker.
type staticImpl struct {
	pred func(v any) bool
	co   func(v any) any
	msg  string
}

func (s staticImpl) Matches(ctx context.Context, v any, st *Status) (bool, error) {
	return s.pred(v), nil
}

func (s staticImpl) Coerce(ctx context.Context, v any, st *Status) (any, error) {
	return s.co(v), nil
}

func (s staticImpl) failureMessage() string { return s.msg }

// Static builds a leaf checker on this Registry from a predicate, an
// idempotent coercion, and a failure message. The predicate must be a
// pure, side-effect-free function of the value alone.
func (r *Registry) Static(name string, pred func(v any) bool, co func(v any) any, msg string, weight float64) *Checker {
	if co == nil {
		co = func(v any) any { return v }
	}
	return r.New(name, weight, staticImpl{pred: pred, co: co, msg: msg})
}

// Static builds a leaf checker on the default Registry.
func Static(name string, pred func(v any) bool, co func(v any) any, msg string, weight float64) *Checker {
	return DefaultRegistry().Static(name, pred, co, msg, weight)
}
