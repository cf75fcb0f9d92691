package shapecheck

import (
	"context"
	"regexp"
)

// As turns a mixed bag of descriptions into one Checker. With no arguments
// it returns the pass-through checker; with one it resolves that
// description; with several it builds a disjunction tried in order.
func (r *Registry) As(descs ...any) *Checker {
	switch len(descs) {
	case 0:
		return r.Anything()
	case 1:
		return r.resolve(descs[0])
	default:
		branches := make([]*Checker, len(descs))
		for i, d := range descs {
			branches[i] = r.resolve(d)
		}
		return r.New("", 0, orImpl{branches: branches})
	}
}

// As resolves descriptions against the default vocabulary.
func As(descs ...any) *Checker { return DefaultRegistry().As(descs...) }

// resolve maps a single description onto a Checker. The variant set is
// closed: checkers pass through, compiled patterns become string matchers,
// maps become object shapes, slices become element templates or tuples,
// predicates become anonymous weight-1 leaves, and anything else is an
// equality literal. Strings are vocabulary names here, not literals; use
// Equals for a literal string.
func (r *Registry) resolve(desc any) *Checker {
	switch t := desc.(type) {
	case *Checker:
		return t
	case *regexp.Regexp:
		return r.Pattern(t)
	case map[string]any:
		return r.With(t)
	case []any:
		if len(t) == 1 {
			return r.Items(t[0])
		}
		return r.Tuple(t...)
	case func(any) bool:
		return r.Static("", t, nil, "predicate not satisfied", 1)
	case string:
		if c, ok := r.Lookup(t); ok {
			return c
		}
		return r.unknownKind(t)
	default:
		return r.Equals(t)
	}
}

// unknownKind is the resolution of a name absent from the vocabulary: it
// never matches and coerces to the identity, and its failure message names
// the missing kind. Declarative documents get a hard error for the same
// case through FromDescription; the fluent path stays total.
func (r *Registry) unknownKind(name string) *Checker {
	return r.New("unknown", 1, unknownImpl{kind: name})
}

type unknownImpl struct {
	kind string
}

func (u unknownImpl) Matches(ctx context.Context, v any, st *Status) (bool, error) {
	return false, nil
}

func (u unknownImpl) Coerce(ctx context.Context, v any, st *Status) (any, error) {
	return v, nil
}

func (u unknownImpl) failureMessage() string {
	return "unknown kind " + u.kind
}
