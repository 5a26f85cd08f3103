package geom_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fortune/geom"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

// requireOnParabola asserts p is equidistant from the focus and the
// directrix, i.e. lies on the parabola they define.
func requireOnParabola(t *testing.T, p, focus geom.Vec2, dirY float64) {
	t.Helper()
	require.True(t, scalar.EqualWithinAbs(geom.Dist(p, focus), math.Abs(p.Y-dirY), tol))
}

// TestIntersectParabolasTwo verifies both intersection points lie on
// both parabolas and come back x-ascending.
func TestIntersectParabolasTwo(t *testing.T) {
	f1 := geom.V2(100, 130)
	f2 := geom.V2(500, 340)
	dirY := 600.0

	sect := geom.IntersectParabolas(f1, f2, dirY)
	require.Equal(t, geom.ParabolaTwo, sect.Kind)
	require.Less(t, sect.P1.X, sect.P2.X)
	requireOnParabola(t, sect.P1, f1, dirY)
	requireOnParabola(t, sect.P1, f2, dirY)
	requireOnParabola(t, sect.P2, f1, dirY)
	requireOnParabola(t, sect.P2, f2, dirY)
}

// TestIntersectParabolasIdentical verifies identical foci degenerate
// to infinitely many intersections.
func TestIntersectParabolasIdentical(t *testing.T) {
	f := geom.V2(250, 400)

	sect := geom.IntersectParabolas(f, f, 600)
	require.Equal(t, geom.ParabolaInfinite, sect.Kind)
}

// TestIntersectParabolasEqualHeight verifies foci at the same height
// intersect exactly once, halfway between them by symmetry.
func TestIntersectParabolasEqualHeight(t *testing.T) {
	f1 := geom.V2(100, 400)
	f2 := geom.V2(300, 400)
	dirY := 600.0

	sect := geom.IntersectParabolas(f1, f2, dirY)
	require.Equal(t, geom.ParabolaOne, sect.Kind)
	require.InDelta(t, 200, sect.P1.X, tol)
	requireOnParabola(t, sect.P1, f1, dirY)
	requireOnParabola(t, sect.P1, f2, dirY)
}
