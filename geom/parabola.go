package geom

import "github.com/katalvlaran/fortune/quadratic"

// ParabolaKind enumerates the outcomes of IntersectParabolas.
type ParabolaKind int

const (
	// ParabolaNone means the parabolas do not intersect.
	ParabolaNone ParabolaKind = iota

	// ParabolaOne means the parabolas touch in a single point.
	ParabolaOne

	// ParabolaTwo means two intersection points, ascending by x.
	ParabolaTwo

	// ParabolaInfinite means the parabolas are identical.
	ParabolaInfinite
)

// ParabolaIntersection is the outcome of IntersectParabolas. P1 and P2
// are populated for kinds One (P1 only) and Two (x-ascending).
type ParabolaIntersection struct {
	Kind   ParabolaKind
	P1, P2 Vec2
}

// parabolaCoeffs expands the parabola equidistant from focus and the
// horizontal directrix y = dirY into y = a·x² + b·x + c:
//
//	dist²(P, focus) = dist²(P, directrix)
//	(x − fx)² + (y − fy)² = (y − d)²
//	2(fy − d)·y = x² − 2·fx·x + fx² + fy² − d²
//
// so a = 1/(2(fy − d)), b = −2·fx·a, c = (fx² + fy² − d²)·a.
// The focus must not lie on the directrix.
func parabolaCoeffs(focus Vec2, dirY float64) (a, b, c float64) {
	a = 1 / (2 * (focus.Y - dirY))
	b = -2 * focus.X * a
	c = (focus.X*focus.X + focus.Y*focus.Y - dirY*dirY) * a

	return a, b, c
}

// IntersectParabolas intersects the two parabolas defined by their
// foci and the shared horizontal directrix y = dirY. Intersection
// x-coordinates are the roots of the coefficient difference; y values
// are evaluated on the first parabola. Callers must ensure neither
// focus lies on the directrix.
//
// Foci at the same height make the difference linear and yield at most
// one intersection; identical foci yield ParabolaInfinite.
func IntersectParabolas(firstFocus, secondFocus Vec2, dirY float64) ParabolaIntersection {
	a1, b1, c1 := parabolaCoeffs(firstFocus, dirY)
	a2, b2, c2 := parabolaCoeffs(secondFocus, dirY)
	a, b, c := a2-a1, b2-b1, c2-c1

	at := func(x float64) Vec2 { return Vec2{x, a1*x*x + b1*x + c1} }

	if a == 0 {
		switch {
		case b == 0 && c == 0:
			return ParabolaIntersection{Kind: ParabolaInfinite}
		case b == 0:
			return ParabolaIntersection{Kind: ParabolaNone}
		default:
			// equal-height foci: the difference degenerates to b·x + c = 0
			return ParabolaIntersection{Kind: ParabolaOne, P1: at(-c / b)}
		}
	}

	switch s := quadratic.Solve(a, b, c); s.Kind {
	case quadratic.None:
		return ParabolaIntersection{Kind: ParabolaNone}
	case quadratic.One:
		return ParabolaIntersection{Kind: ParabolaOne, P1: at(s.X1)}
	default:
		return ParabolaIntersection{Kind: ParabolaTwo, P1: at(s.X1), P2: at(s.X2)}
	}
}
