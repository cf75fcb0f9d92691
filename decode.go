package shapecheck

import (
	"bytes"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/shapecheck/shapecheck/i18n"
)

// NumberMode dictates how decoded JSON numbers are represented.
type NumberMode int

const (
	NumberFloat64    NumberMode = iota // Fast mode (with potential precision loss).
	NumberJSONNumber                   // Preserve json.Number.
)

type decodeOptions struct {
	numberMode NumberMode
}

// DecodeOpt adjusts decoding behavior.
type DecodeOpt func(*decodeOptions)

// WithNumberMode selects the representation of decoded numbers.
func WithNumberMode(m NumberMode) DecodeOpt {
	return func(o *decodeOptions) { o.numberMode = m }
}

// DecodeJSON materializes a JSON document into the any-tree shape checkers
// consume: map[string]any, []any, string, bool, nil, and float64 (or
// json.Number under NumberJSONNumber). Malformed input yields Issues with
// code parse_error.
func DecodeJSON(b []byte, opts ...DecodeOpt) (any, error) {
	var o decodeOptions
	for _, opt := range opts {
		opt(&o)
	}
	dec := gojson.NewDecoder(bytes.NewReader(b))
	if o.numberMode == NumberJSONNumber {
		dec.UseNumber()
	}
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, AppendIssues(nil, Issue{
			Code:    CodeParseError,
			Message: i18n.T(CodeParseError, map[string]string{"detail": err.Error()}),
			Cause:   err,
		})
	}
	return v, nil
}

// DecodeYAML materializes a YAML document into the same any-tree shape,
// converting map[any]any nodes to map[string]any so checkers see one map
// representation regardless of the input format.
func DecodeYAML(b []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, AppendIssues(nil, Issue{
			Code:    CodeParseError,
			Message: i18n.T(CodeParseError, map[string]string{"detail": err.Error()}),
			Cause:   err,
		})
	}
	return yamlNormalize(v), nil
}

func yamlNormalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalize(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalize(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalize(t[i])
		}
		return arr
	default:
		return v
	}
}
