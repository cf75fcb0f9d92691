package shapecheck

import "strings"

// anyPath is the failure location reported when a checker fails at the top
// of an otherwise empty path.
const anyPath = "any"

// Status is the per-call diagnostic accumulator: the current nesting path,
// the set of recorded failure locations, and a signed quality score. A
// Status is owned by exactly one top-level Matches/Coerce/Validate call
// chain and is not safe for concurrent use; construct a fresh one per
// checking operation (or pass nil and let the checker allocate it).
type Status struct {
	path     []string
	failures []string
	notes    map[string]string
	quality  float64
}

// NewStatus returns an empty Status.
func NewStatus() *Status { return &Status{} }

// Push appends name (when non-empty) and any non-empty extra segments to
// the path stack and returns the number of segments actually pushed. The
// caller must pass that count back to Pop on every exit path.
func (st *Status) Push(name string, extra ...string) int {
	n := 0
	if name != "" {
		st.path = append(st.path, name)
		n++
	}
	for _, seg := range extra {
		if seg == "" {
			continue
		}
		st.path = append(st.path, seg)
		n++
	}
	return n
}

// Pop removes exactly n segments from the end of the path stack.
func (st *Status) Pop(n int) {
	if n <= 0 {
		return
	}
	if n > len(st.path) {
		n = len(st.path)
	}
	st.path = st.path[:len(st.path)-n]
}

// Record notes the outcome of one checker invocation at the current path.
// Quality moves by +weight on success and -weight on failure. A failure
// with positive weight inserts the joined path into the failure set unless
// an already recorded failure is a string-prefix of it; zero-weight
// checkers are structural and never contribute failure locations of their
// own. Returns the joined path for reuse in error annotation.
func (st *Status) Record(ok bool, weight float64) string {
	p := st.Path()
	if ok {
		st.quality += weight
		return p
	}
	st.quality -= weight
	if weight > 0 && !st.covered(p) {
		st.failures = append(st.failures, p)
	}
	return p
}

// covered reports whether an existing failure already subsumes path p.
func (st *Status) covered(p string) bool {
	for _, f := range st.failures {
		if strings.HasPrefix(p, f) {
			return true
		}
	}
	return false
}

// Path renders the current location as a dot-joined string, or "any" when
// the path stack is empty.
func (st *Status) Path() string {
	if len(st.path) == 0 {
		return anyPath
	}
	return strings.Join(st.path, ".")
}

// Depth returns the current path stack depth.
func (st *Status) Depth() int { return len(st.path) }

// Failures returns the recorded failure locations in discovery order. The
// returned slice is a copy.
func (st *Status) Failures() []string {
	out := make([]string, len(st.failures))
	copy(out, st.failures)
	return out
}

// annotateFailure attaches a human-readable note to a failure location.
// The first note per location wins.
func (st *Status) annotateFailure(p, msg string) {
	if msg == "" {
		return
	}
	if st.notes == nil {
		st.notes = map[string]string{}
	}
	if _, ok := st.notes[p]; !ok {
		st.notes[p] = msg
	}
}

// FailureNote returns the note attached to a failure location, if any.
func (st *Status) FailureNote(p string) string { return st.notes[p] }

// Failed reports whether any failure was recorded.
func (st *Status) Failed() bool { return len(st.failures) > 0 }

// Quality returns the running score: every checker invocation along the
// walk adds its weight on success and subtracts it on failure.
func (st *Status) Quality() float64 { return st.quality }
