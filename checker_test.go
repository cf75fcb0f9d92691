package shapecheck_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	shapecheck "github.com/shapecheck/shapecheck"
)

func TestChecker_NilStatusAllocatesFresh(t *testing.T) {
	ok, err := shapecheck.Number().Matches(context.Background(), 5, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected 5 to match number")
	}
}

func TestChecker_HardFailureCarriesPath(t *testing.T) {
	sentinel := errors.New("backend unavailable")
	c := shapecheck.New("lookup", 1, errImpl{err: sentinel})
	st := shapecheck.NewStatus()
	_, err := c.Matches(context.Background(), "x", st, "user")
	if err == nil {
		t.Fatalf("expected an error")
	}
	var ce *shapecheck.CheckError
	if !errors.As(err, &ce) {
		t.Fatalf("expected a CheckError, got %T", err)
	}
	if ce.Path != "lookup.user" {
		t.Fatalf("unexpected path: %q", ce.Path)
	}
	if !errors.Is(err, sentinel) {
		t.Fatalf("cause identity lost: %v", err)
	}
	if !strings.Contains(err.Error(), " at lookup.user") {
		t.Fatalf("rendered message missing path: %q", err.Error())
	}
}

func TestChecker_ErrorAnnotatedOnce(t *testing.T) {
	inner := shapecheck.New("inner", 1, errImpl{err: errors.New("boom")})
	outer := shapecheck.With(map[string]any{"f": inner})
	st := shapecheck.NewStatus()
	_, err := outer.Matches(context.Background(), map[string]any{"f": 1}, st)
	if err == nil {
		t.Fatalf("expected an error")
	}
	var ce *shapecheck.CheckError
	if !errors.As(err, &ce) {
		t.Fatalf("expected a CheckError, got %T", err)
	}
	// The innermost wrapper saw the fully qualified path; outer layers must
	// not re-wrap.
	if ce.Path != "inner.f" {
		t.Fatalf("unexpected path: %q", ce.Path)
	}
	var nested *shapecheck.CheckError
	if errors.As(ce.Err, &nested) {
		t.Fatalf("error wrapped more than once: %v", err)
	}
}

func TestChecker_ValidateRechecksCoercedOutput(t *testing.T) {
	st := shapecheck.NewStatus()
	out, err := shapecheck.Number().Validate(context.Background(), "abc", st)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !st.Failed() {
		t.Fatalf("expected a recorded failure for an uncoercible number")
	}
	f, ok := out.(float64)
	if !ok || f == f { // NaN is the only float64 unequal to itself
		t.Fatalf("expected NaN output, got %#v", out)
	}
}

func TestChecker_ValidateSuccessRecordsNoFailure(t *testing.T) {
	st := shapecheck.NewStatus()
	out, err := shapecheck.Number().Validate(context.Background(), "30", st)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Failed() {
		t.Fatalf("unexpected failures: %v", st.Failures())
	}
	if out != float64(30) {
		t.Fatalf("expected 30, got %#v", out)
	}
}

func TestIssuesFrom_UsesFailureMessages(t *testing.T) {
	st := shapecheck.NewStatus()
	ok, err := shapecheck.Number().Matches(context.Background(), "x", st)
	if err != nil || ok {
		t.Fatalf("expected a soft failure, ok=%v err=%v", ok, err)
	}
	iss := shapecheck.IssuesFrom(st)
	if len(iss) != 1 {
		t.Fatalf("expected one issue, got %v", iss)
	}
	if iss[0].Path != "number" || iss[0].Code != shapecheck.CodeNoMatch {
		t.Fatalf("unexpected issue: %+v", iss[0])
	}
	if iss[0].Message != "expected a number" {
		t.Fatalf("unexpected message: %q", iss[0].Message)
	}
}

func TestCheckError_NilCause(t *testing.T) {
	ce := &shapecheck.CheckError{Path: "number"}
	if ce.Error() == "" {
		t.Fatalf("expected a rendered message")
	}
}
