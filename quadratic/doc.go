// Package quadratic solves quadratic equations a·x² + b·x + c = 0 and
// reports the result as an explicit sum type instead of a root slice,
// so callers can branch on the root count without allocation.
//
// The discriminant Δ = b² − 4ac decides the Kind:
//
//	Δ > 0 → Two   (distinct roots, ascending: X1 < X2)
//	Δ = 0 → One   (double root in both X1 and X2)
//	Δ < 0 → None
//
// Solve requires a ≠ 0; a zero quadratic coefficient is a programmer
// error and panics. Degenerate linear cases are the caller's job (see
// geom.IntersectParabolas for an example).
package quadratic
