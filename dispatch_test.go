package shapecheck_test

import (
	"context"
	"regexp"
	"testing"

	shapecheck "github.com/shapecheck/shapecheck"
)

func TestAs_ZeroDescriptionsIsAnything(t *testing.T) {
	ctx := context.Background()
	c := shapecheck.As()
	for _, v := range []any{nil, 1, "x", []any{}, map[string]any{}} {
		if ok, err := c.Matches(ctx, v, nil); err != nil || !ok {
			t.Fatalf("expected %#v to match, ok=%v err=%v", v, ok, err)
		}
	}
}

func TestAs_PatternDescription(t *testing.T) {
	ctx := context.Background()
	c := shapecheck.As(regexp.MustCompile(`^[a-z]+$`))
	if ok, _ := c.Matches(ctx, "hello", nil); !ok {
		t.Fatalf("expected a lowercase word to match")
	}
	if ok, _ := c.Matches(ctx, "Hello", nil); ok {
		t.Fatalf("expected a capitalized word to fail")
	}
	if ok, _ := c.Matches(ctx, 42, nil); ok {
		t.Fatalf("patterns only apply to strings")
	}
}

func TestAs_MapDescriptionIsShape(t *testing.T) {
	ctx := context.Background()
	c := shapecheck.As(map[string]any{"id": "number"})
	if ok, _ := c.Matches(ctx, map[string]any{"id": float64(7)}, nil); !ok {
		t.Fatalf("expected the shape to match")
	}
}

func TestAs_SliceDescriptions(t *testing.T) {
	ctx := context.Background()
	items := shapecheck.As([]any{"number"})
	if ok, _ := items.Matches(ctx, []any{float64(1), float64(2)}, nil); !ok {
		t.Fatalf("expected the element template to match")
	}
	tuple := shapecheck.As([]any{"string", "number"})
	if ok, _ := tuple.Matches(ctx, []any{"a", float64(1)}, nil); !ok {
		t.Fatalf("expected the tuple to match")
	}
	if ok, _ := tuple.Matches(ctx, []any{"a", float64(1), float64(2)}, nil); ok {
		t.Fatalf("expected the long input to fail the tuple")
	}
}

func TestAs_PredicateDescription(t *testing.T) {
	ctx := context.Background()
	even := func(v any) bool {
		f, ok := v.(float64)
		return ok && int64(f)%2 == 0
	}
	c := shapecheck.As(even)
	if ok, _ := c.Matches(ctx, float64(4), nil); !ok {
		t.Fatalf("expected 4 to satisfy the predicate")
	}
	if ok, _ := c.Matches(ctx, float64(3), nil); ok {
		t.Fatalf("expected 3 to fail the predicate")
	}
}

func TestAs_LiteralDescriptionIsEquality(t *testing.T) {
	ctx := context.Background()
	c := shapecheck.As(42)
	if ok, _ := c.Matches(ctx, float64(42), nil); !ok {
		t.Fatalf("expected numeric literals to compare loosely")
	}
	if ok, _ := c.Matches(ctx, float64(41), nil); ok {
		t.Fatalf("expected 41 to fail")
	}
	out, _ := c.Coerce(ctx, "anything", nil)
	if out != 42 {
		t.Fatalf("equality coercion must return the literal, got %#v", out)
	}
}

func TestAs_MultipleDescriptionsAreDisjunction(t *testing.T) {
	ctx := context.Background()
	c := shapecheck.As("string", "number")
	if ok, _ := c.Matches(ctx, "x", nil); !ok {
		t.Fatalf("expected the string branch to match")
	}
	if ok, _ := c.Matches(ctx, float64(1), nil); !ok {
		t.Fatalf("expected the number branch to match")
	}
	if ok, _ := c.Matches(ctx, true, nil); ok {
		t.Fatalf("expected both branches to fail")
	}
}

func TestAs_UnknownKindNeverMatches(t *testing.T) {
	ctx := context.Background()
	c := shapecheck.As("uuid")
	st := shapecheck.NewStatus()
	if ok, _ := c.Matches(ctx, "anything", st); ok {
		t.Fatalf("an unregistered kind must not match")
	}
	iss := shapecheck.IssuesFrom(st)
	if len(iss) != 1 || iss[0].Message != "unknown kind uuid" {
		t.Fatalf("unexpected issues: %v", iss)
	}
}
