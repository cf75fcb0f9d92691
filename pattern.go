package shapecheck

import "regexp"

// Pattern returns a checker for strings matching re. The coercion is the
// identity; a non-matching string has no meaningful normalization.
func Pattern(re *regexp.Regexp) *Checker { return DefaultRegistry().Pattern(re) }

// Pattern builds a regular-expression string checker on this Registry.
func (r *Registry) Pattern(re *regexp.Regexp) *Checker {
	pred := func(v any) bool {
		s, ok := v.(string)
		return ok && re.MatchString(s)
	}
	return r.Static("regexp", pred, nil, "expected a string matching "+re.String(), 1)
}
