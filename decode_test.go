package shapecheck_test

import (
	"encoding/json"
	"testing"

	shapecheck "github.com/shapecheck/shapecheck"
)

func TestDecodeJSON_DefaultFloat64(t *testing.T) {
	v, err := shapecheck.DecodeJSON([]byte(`{"n": 1, "s": "x", "b": true, "a": [1, 2]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := v.(map[string]any)
	if m["n"] != float64(1) {
		t.Fatalf("expected float64 numbers by default, got %#v", m["n"])
	}
	if m["s"] != "x" || m["b"] != true {
		t.Fatalf("unexpected document: %#v", m)
	}
}

func TestDecodeJSON_NumberMode(t *testing.T) {
	v, err := shapecheck.DecodeJSON([]byte(`{"n": 9007199254740993}`), shapecheck.WithNumberMode(shapecheck.NumberJSONNumber))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := v.(map[string]any)
	n, ok := m["n"].(json.Number)
	if !ok {
		t.Fatalf("expected json.Number, got %#v", m["n"])
	}
	if n.String() != "9007199254740993" {
		t.Fatalf("precision lost: %s", n.String())
	}
}

func TestDecodeJSON_ParseError(t *testing.T) {
	_, err := shapecheck.DecodeJSON([]byte(`{"n": `))
	iss, ok := shapecheck.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != shapecheck.CodeParseError {
		t.Fatalf("expected one parse_error issue, got %v", err)
	}
}

func TestDecodeYAML_NormalizesMaps(t *testing.T) {
	v, err := shapecheck.DecodeYAML([]byte("name: Al\nnested:\n  deep:\n    n: 1\nlist:\n  - a: 1\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected map[string]any root, got %T", v)
	}
	nested, ok := m["nested"].(map[string]any)
	if !ok {
		t.Fatalf("expected normalized nested map, got %T", m["nested"])
	}
	if _, ok := nested["deep"].(map[string]any); !ok {
		t.Fatalf("expected normalized deep map, got %T", nested["deep"])
	}
	list := m["list"].([]any)
	if _, ok := list[0].(map[string]any); !ok {
		t.Fatalf("expected normalized map in list, got %T", list[0])
	}
}

func TestDecodeYAML_ParseError(t *testing.T) {
	_, err := shapecheck.DecodeYAML([]byte("a: [1, 2"))
	iss, ok := shapecheck.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != shapecheck.CodeParseError {
		t.Fatalf("expected one parse_error issue, got %v", err)
	}
}
