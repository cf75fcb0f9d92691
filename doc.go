package shapecheck

// Package shapecheck provides:
//
// - Composable runtime checkers over already-decoded values (Matches/Coerce/Validate)
// - Path- and score-tracking Status accumulation with ancestry-deduplicated failures
// - Logical and structural combinators (And/Or/With/Items/Tuple) plus comparators and patterns
// - A registry vocabulary and dispatcher for declarative schema descriptions
//
// Design policy:
// - Keep the checker algebra in the root package; diagnostics translation under i18n/.
// - Checkers are immutable once built and safe to share; a Status belongs to one call chain.
// - The core never touches I/O; DecodeJSON/DecodeYAML materialize documents for it.
//
// Typical usage:
//
//	c := shapecheck.Number().And(shapecheck.Gte(0))
//	st := shapecheck.NewStatus()
//	ok, err := c.Matches(ctx, v, st)
//
//	shape := shapecheck.With(map[string]any{"name": "string", "age": "number"})
//	out, err := shape.Validate(ctx, doc, st)
