package shapecheck

import (
	"context"
	"math"
)

// andImpl chains two checkers sequentially. The left side runs first; its
// coerced output is what the right side sees, so refinements always observe
// normalized values. The left checker's name is pushed as an extra segment
// on right-side calls, which keeps composed paths readable ("number.age").
type andImpl struct {
	left  *Checker
	right *Checker
}

func (a andImpl) Matches(ctx context.Context, v any, st *Status) (bool, error) {
	ok, err := a.left.Matches(ctx, v, st)
	if err != nil || !ok {
		return false, err
	}
	cv, err := a.left.Coerce(ctx, v, st)
	if err != nil {
		return false, err
	}
	return a.right.Matches(ctx, cv, st, a.left.name)
}

func (a andImpl) Coerce(ctx context.Context, v any, st *Status) (any, error) {
	cv, err := a.left.Coerce(ctx, v, st)
	if err != nil {
		return cv, err
	}
	return a.right.Coerce(ctx, cv, st, a.left.name)
}

func (a andImpl) Validate(ctx context.Context, v any, st *Status) (any, error) {
	cv, err := a.left.Validate(ctx, v, st)
	if err != nil {
		return cv, err
	}
	return a.right.Validate(ctx, cv, st, a.left.name)
}

// orImpl tries branches in declaration order. Matches succeeds on the first
// conforming branch. Coerce and Validate route to the first branch whose
// match probe succeeds; when none does, the branch whose probe scored the
// highest quality handles the value, ties going to the earliest branch.
type orImpl struct {
	branches []*Checker
}

func (o orImpl) Matches(ctx context.Context, v any, st *Status) (bool, error) {
	for _, b := range o.branches {
		ok, err := b.Matches(ctx, v, st)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func (o orImpl) Coerce(ctx context.Context, v any, st *Status) (any, error) {
	b, err := o.pick(ctx, v)
	if err != nil {
		return v, err
	}
	return b.Coerce(ctx, v, st)
}

func (o orImpl) Validate(ctx context.Context, v any, st *Status) (any, error) {
	b, err := o.pick(ctx, v)
	if err != nil {
		return v, err
	}
	return b.Validate(ctx, v, st)
}

// pick probes each branch against a scratch Status so the selection run
// leaves no trace on the caller's score or failure set.
func (o orImpl) pick(ctx context.Context, v any) (*Checker, error) {
	best := o.branches[0]
	bestQ := math.Inf(-1)
	for _, b := range o.branches {
		probe := NewStatus()
		ok, err := b.Matches(ctx, v, probe)
		if err != nil {
			return nil, err
		}
		if ok {
			return b, nil
		}
		if probe.Quality() > bestQ {
			bestQ = probe.Quality()
			best = b
		}
	}
	return best, nil
}
