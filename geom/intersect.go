package geom

import "github.com/katalvlaran/fortune/matrix"

// Intersector computes intersections between lines, rays, segments and
// rectangles. It owns a single 2×3 scratch matrix that is reused
// across calls, so no query allocates a matrix; matrix.Solve still
// allocates its row permutation and solution slice on each call.
// An Intersector is not safe for
// concurrent use; the sweep owns exactly one.
type Intersector struct {
	m matrix.Mat2x3
}

// NewIntersector returns a ready-to-use Intersector.
func NewIntersector() *Intersector { return &Intersector{} }

// setParamEquations loads the scratch matrix with the canonical-form
// parameter system for P1 + k·D1 = P2 + j·D2:
//
//	d1.x·k − d2.x·j + (p1.x − p2.x) = 0
//	d1.y·k − d2.y·j + (p1.y − p2.y) = 0
func (c *Intersector) setParamEquations(p1, d1, p2, d2 Vec2) {
	c.m.SetAll(
		d1.X, -d2.X, p1.X-p2.X,
		d1.Y, -d2.Y, p1.Y-p2.Y,
	)
}

// solveParams solves the loaded system for (k, j).
func (c *Intersector) solveParams() (k, j float64, ok bool) {
	solution, err := matrix.Solve(&c.m)
	if err != nil {
		return 0, 0, false
	}

	return solution[0], solution[1], true
}

// LineLine intersects the lines p1 + k·d1 and p2 + j·d2. It reports
// ok == false when the lines are parallel or coincident.
func (c *Intersector) LineLine(p1, d1, p2, d2 Vec2) (Vec2, bool) {
	c.setParamEquations(p1, d1, p2, d2)
	k, _, ok := c.solveParams()
	if !ok {
		return Vec2{}, false
	}

	return p1.Add(d1.Scale(k)), true
}

// RayRay intersects two rays, requiring k ≥ 0 and j ≥ 0.
func (c *Intersector) RayRay(p1, d1, p2, d2 Vec2) (Vec2, bool) {
	c.setParamEquations(p1, d1, p2, d2)
	k, j, ok := c.solveParams()
	if !ok || k < 0 || j < 0 {
		return Vec2{}, false
	}

	return p1.Add(d1.Scale(k)), true
}

// RaySegment intersects the ray p + k·d with the segment from s0 to
// s1, endpoints inclusive (k ≥ 0, 0 ≤ j ≤ 1).
func (c *Intersector) RaySegment(p, d, s0, s1 Vec2) (Vec2, bool) {
	c.setParamEquations(p, d, s0, s1.Sub(s0))
	k, j, ok := c.solveParams()
	if !ok || k < 0 || j < 0 || j > 1 {
		return Vec2{}, false
	}

	return p.Add(d.Scale(k)), true
}

// RayRect intersects the ray p + k·d with rectangle r and returns the
// first hit probing the sides in the fixed order top, right, bottom,
// left; a corner hit resolves to the earlier side in that order.
func (c *Intersector) RayRect(p, d Vec2, r Rect) (Vec2, bool) {
	for side := 0; side < 4; side++ {
		if hit, ok := c.RaySegment(p, d, r.Corner(side), r.Corner((side+1)%4)); ok {
			return hit, true
		}
	}

	return Vec2{}, false
}

// CircleThrough returns the circle through three points, built by
// intersecting the perpendicular bisectors of two point pairs. It
// reports ok == false when the points are colinear.
func (c *Intersector) CircleThrough(p1, p2, p3 Vec2) (center Vec2, radius float64, ok bool) {
	d1 := Vec2{p2.Y - p1.Y, p1.X - p2.X}
	d2 := Vec2{p2.Y - p3.Y, p3.X - p2.X}
	if d1.Cross(d2) == 0 {
		// colinear points: the bisectors never meet
		return Vec2{}, 0, false
	}
	center, ok = c.LineLine(Midpoint(p1, p2), d1, Midpoint(p2, p3), d2)
	if !ok {
		panic("geom: independent bisectors must intersect")
	}

	return center, Dist(center, p1), true
}

// LineLine intersects two lines with a throwaway Intersector.
func LineLine(p1, d1, p2, d2 Vec2) (Vec2, bool) {
	return NewIntersector().LineLine(p1, d1, p2, d2)
}

// RayRay intersects two rays with a throwaway Intersector.
func RayRay(p1, d1, p2, d2 Vec2) (Vec2, bool) {
	return NewIntersector().RayRay(p1, d1, p2, d2)
}

// RaySegment intersects a ray with a segment using a throwaway
// Intersector.
func RaySegment(p, d, s0, s1 Vec2) (Vec2, bool) {
	return NewIntersector().RaySegment(p, d, s0, s1)
}

// RayRect intersects a ray with a rectangle using a throwaway
// Intersector.
func RayRect(p, d Vec2, r Rect) (Vec2, bool) {
	return NewIntersector().RayRect(p, d, r)
}

// CircleThrough returns the circle through three points using a
// throwaway Intersector.
func CircleThrough(p1, p2, p3 Vec2) (Vec2, float64, bool) {
	return NewIntersector().CircleThrough(p1, p2, p3)
}
