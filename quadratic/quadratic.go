package quadratic

import "math"

// Kind enumerates the possible root counts of a quadratic equation.
type Kind int

const (
	// None means the equation has no real roots (Δ < 0).
	None Kind = iota

	// One means the equation has a single double root (Δ = 0).
	One

	// Two means the equation has two distinct real roots (Δ > 0).
	Two
)

// Solution is the outcome of Solve. For Kind == Two the roots are
// ordered ascending (X1 < X2); for Kind == One both fields hold the
// double root; for Kind == None both fields are zero.
type Solution struct {
	Kind   Kind
	X1, X2 float64
}

// Solve returns the real roots of a·x² + b·x + c = 0.
// It panics when a == 0: callers must not pass a degenerate equation.
func Solve(a, b, c float64) Solution {
	if a == 0 {
		panic("quadratic: zero quadratic coefficient")
	}
	discr := b*b - 4*a*c
	switch {
	case discr > 0:
		sqrt := math.Sqrt(discr)
		div := 2 * a
		x1 := (-b - sqrt) / div
		x2 := (-b + sqrt) / div
		if x1 > x2 {
			x1, x2 = x2, x1
		}

		return Solution{Kind: Two, X1: x1, X2: x2}
	case discr < 0:
		return Solution{Kind: None}
	default:
		x := -b / (2 * a)

		return Solution{Kind: One, X1: x, X2: x}
	}
}
