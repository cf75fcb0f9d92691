package shapecheck

import (
	"fmt"
	"sync"

	"github.com/shapecheck/shapecheck/i18n"
)

// Registry is the named checker vocabulary consulted when resolving
// declarative schema descriptions. Checkers hydrated through a Registry
// resolve their fluent composition arguments against the same instance, so
// a custom vocabulary stays scoped to the checkers built from it.
//
// Registration is a startup-time concern: register every extension before
// building schemas, and do not mutate a Registry concurrently with active
// checking calls that resolve descriptions against it.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]*Checker
}

// NewRegistry returns an empty Registry. Most callers want
// DefaultRegistry, which ships the standard vocabulary.
func NewRegistry() *Registry {
	return &Registry{kinds: map[string]*Checker{}}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide Registry preloaded with the
// standard vocabulary (string, number, bool, time, json, any).
func DefaultRegistry() *Registry { return defaultRegistry }

func init() {
	r := defaultRegistry
	r.Register("string", String())
	r.Register("number", Number())
	r.Register("bool", Bool())
	r.Register("time", Time())
	r.Register("json", JSONText())
	r.Register("any", Anything())
}

// Register adds (or replaces) a named checker in the vocabulary.
func (r *Registry) Register(name string, c *Checker) {
	r.mu.Lock()
	r.kinds[name] = c
	r.mu.Unlock()
}

// Lookup resolves a vocabulary name.
func (r *Registry) Lookup(name string) (*Checker, bool) {
	r.mu.RLock()
	c, ok := r.kinds[name]
	r.mu.RUnlock()
	return c, ok
}

// New hydrates a raw implementation into a Checker bound to this Registry.
func (r *Registry) New(name string, weight float64, impl Impl) *Checker {
	return &Checker{name: name, weight: weight, impl: impl, reg: r}
}

// FromDescription resolves a declarative document (typically decoded from
// JSON or YAML) into a Checker. Strings name vocabulary entries, maps
// describe object shapes, single-element arrays describe element
// templates, longer arrays describe tuples, and remaining scalars are
// equality literals.
func (r *Registry) FromDescription(desc any) (*Checker, error) {
	switch t := desc.(type) {
	case *Checker:
		return t, nil
	case string:
		c, ok := r.Lookup(t)
		if !ok {
			return nil, AppendIssues(nil, Issue{
				Code:    CodeUnknownKind,
				Message: i18n.T(CodeUnknownKind, map[string]string{"kind": t}),
			})
		}
		return c, nil
	case map[string]any:
		fields := make(map[string]*Checker, len(t))
		for k, fd := range t {
			fc, err := r.FromDescription(fd)
			if err != nil {
				return nil, err
			}
			fields[k] = fc
		}
		return r.newWith(fields), nil
	case []any:
		switch len(t) {
		case 0:
			return nil, AppendIssues(nil, Issue{Code: CodeBadSchema, Message: i18n.T(CodeBadSchema, nil)})
		case 1:
			elem, err := r.FromDescription(t[0])
			if err != nil {
				return nil, err
			}
			return r.newItems(elem), nil
		default:
			elems := make([]*Checker, len(t))
			for i, ed := range t {
				ec, err := r.FromDescription(ed)
				if err != nil {
					return nil, err
				}
				elems[i] = ec
			}
			return r.newTuple(elems), nil
		}
	case nil:
		return nil, AppendIssues(nil, Issue{Code: CodeBadSchema, Message: i18n.T(CodeBadSchema, nil)})
	default:
		return r.Equals(t), nil
	}
}

// FromDescription resolves a declarative document against the default
// vocabulary.
func FromDescription(desc any) (*Checker, error) {
	return DefaultRegistry().FromDescription(desc)
}

// Equals returns a leaf checker for equality against a literal. Coercion
// returns the literal itself for non-matching input, the only conforming
// normalization.
func (r *Registry) Equals(want any) *Checker {
	return r.Static("",
		func(v any) bool { return looseEqual(v, want) },
		func(v any) any {
			if looseEqual(v, want) {
				return v
			}
			return want
		},
		fmt.Sprintf("expected %v", want), 1)
}
