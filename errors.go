package shapecheck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shapecheck/shapecheck/i18n"
)

// Diagnostic codes (exported consts for IDE completion and type safety by
// convention).
const (
	CodeNoMatch     = "no_match"
	CodeParseError  = "parse_error"
	CodeUnknownKind = "unknown_kind"
	CodeBadSchema   = "bad_schema"
)

// Issue represents a single diagnostic entry.
type Issue struct {
	Path    string // Dot-joined failure location (for example: a.number.b).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
}

// Issues is a collection of diagnostics that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice
// when needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IssuesFrom projects the failures recorded in a Status into Issues with
// localized messages.
func IssuesFrom(st *Status) Issues {
	if st == nil || !st.Failed() {
		return nil
	}
	var iss Issues
	for _, p := range st.Failures() {
		msg := st.FailureNote(p)
		if msg == "" {
			msg = i18n.T(CodeNoMatch, nil)
		}
		iss = AppendIssues(iss, Issue{Path: p, Code: CodeNoMatch, Message: msg})
	}
	return iss
}

// CheckError is a hard failure annotated with the diagnostic path at which
// it surfaced. The wrapped cause keeps its identity for errors.Is/As; the
// path is attached once, at the innermost wrapper, where the Status path is
// already fully qualified.
type CheckError struct {
	Path string
	Err  error
}

func (e *CheckError) Error() string {
	if e.Err == nil {
		return "check failed at " + e.Path
	}
	return e.Err.Error() + " at " + e.Path
}

func (e *CheckError) Unwrap() error { return e.Err }

// annotate wraps err with the given path unless it already carries one.
func annotate(err error, path string) error {
	if err == nil {
		return nil
	}
	var ce *CheckError
	if errors.As(err, &ce) {
		return err
	}
	return &CheckError{Path: path, Err: err}
}
