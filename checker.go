package shapecheck

import "context"

// Impl is the raw contract a checker implementation satisfies before
// hydration: a match test and an idempotent coercion, both unaware of path
// bookkeeping. The Status is supplied so structural implementations can
// descend through child checkers; leaves typically ignore it.
type Impl interface {
	Matches(ctx context.Context, v any, st *Status) (bool, error)
	Coerce(ctx context.Context, v any, st *Status) (any, error)
}

// Validator is an optional third operation. Implementations that need
// custom validate sequencing (logical and structural composition) provide
// it; when absent, validation coerces and re-checks the coerced output, so
// a coercion that could not produce a conforming value is recorded as a
// failure. Probed by interface assertion, never required.
type Validator interface {
	Validate(ctx context.Context, v any, st *Status) (any, error)
}

// Checker is a named, weighted capability bundle over three operations:
// Matches, Coerce, and Validate. Checkers are immutable once constructed
// and safe for concurrent use; combinators never mutate an input Checker,
// they close over it. The zero weight marks logical/structural wrappers
// that must not move the decision score on their own.
type Checker struct {
	name   string
	weight float64
	impl   Impl
	reg    *Registry
}

// New hydrates a raw implementation into a Checker registered against the
// default vocabulary. Anonymous checkers pass an empty name.
func New(name string, weight float64, impl Impl) *Checker {
	return DefaultRegistry().New(name, weight, impl)
}

// Name returns the checker's name; anonymous checkers return "".
func (c *Checker) Name() string { return c.name }

// Weight returns the checker's contribution to the quality score.
func (c *Checker) Weight() float64 { return c.weight }

// Matches reports whether v conforms to the checker. The outcome is
// recorded against st with the checker's weight; extra path segments (keys
// or indexes supplied by structural combinators) are pushed after the
// checker's name for the duration of the call. Passing a nil Status
// allocates a fresh one.
func (c *Checker) Matches(ctx context.Context, v any, st *Status, at ...string) (bool, error) {
	if st == nil {
		st = NewStatus()
	}
	n := st.Push(c.name, at...)
	defer st.Pop(n)
	ok, err := c.impl.Matches(ctx, v, st)
	if err != nil {
		p := st.Record(false, c.weight)
		return false, annotate(err, p)
	}
	p := st.Record(ok, c.weight)
	if !ok {
		c.noteFailure(st, p)
	}
	return ok, nil
}

// Coerce transforms v toward the checker's expected shape, best-effort.
// Coercion is idempotent and, unlike Matches, is considered successful
// unless the implementation reports a hard failure.
func (c *Checker) Coerce(ctx context.Context, v any, st *Status, at ...string) (any, error) {
	if st == nil {
		st = NewStatus()
	}
	n := st.Push(c.name, at...)
	defer st.Pop(n)
	out, err := c.impl.Coerce(ctx, v, st)
	if err != nil {
		p := st.Record(false, c.weight)
		return out, annotate(err, p)
	}
	st.Record(true, c.weight)
	return out, nil
}

// Validate coerces v and records whether the result conforms. For leaf
// implementations the coerced output is re-checked against the predicate;
// implementations providing their own Validate sequencing record through
// their children instead and count as successful unless they fail hard.
func (c *Checker) Validate(ctx context.Context, v any, st *Status, at ...string) (any, error) {
	if st == nil {
		st = NewStatus()
	}
	n := st.Push(c.name, at...)
	defer st.Pop(n)
	if val, ok := c.impl.(Validator); ok {
		out, err := val.Validate(ctx, v, st)
		if err != nil {
			p := st.Record(false, c.weight)
			return out, annotate(err, p)
		}
		st.Record(true, c.weight)
		return out, nil
	}
	out, err := c.impl.Coerce(ctx, v, st)
	if err != nil {
		p := st.Record(false, c.weight)
		return out, annotate(err, p)
	}
	ok, err := c.impl.Matches(ctx, out, st)
	if err != nil {
		p := st.Record(false, c.weight)
		return out, annotate(err, p)
	}
	p := st.Record(ok, c.weight)
	if !ok {
		c.noteFailure(st, p)
	}
	return out, nil
}

// messenger exposes a leaf checker's configured failure message. Probed by
// interface assertion, like Validator.
type messenger interface {
	failureMessage() string
}

// noteFailure attaches the leaf's failure message to the just-recorded
// location so diagnostics can name what was expected there.
func (c *Checker) noteFailure(st *Status, p string) {
	if c.weight <= 0 {
		return
	}
	if m, ok := c.impl.(messenger); ok {
		st.annotateFailure(p, m.failureMessage())
	}
}

// And composes the receiver with the checker described by descs into a
// sequential refinement: the right side tests and transforms the left
// side's coerced output. The result is anonymous with zero weight.
func (c *Checker) And(descs ...any) *Checker {
	right := c.reg.As(descs...)
	return c.reg.New("", 0, andImpl{left: c, right: right})
}

// Or composes the receiver with the checker described by descs into a
// disjunction tried in order.
func (c *Checker) Or(descs ...any) *Checker {
	right := c.reg.As(descs...)
	return c.reg.New("", 0, orImpl{branches: []*Checker{c, right}})
}

// With refines the receiver with an object-shape requirement over the
// given field descriptions.
func (c *Checker) With(fields map[string]any) *Checker {
	return c.And(c.reg.With(fields))
}

// Items refines the receiver with a per-element requirement.
func (c *Checker) Items(desc any) *Checker {
	return c.And(c.reg.Items(desc))
}
