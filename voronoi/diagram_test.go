package voronoi_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/fortune/geom"
	"github.com/katalvlaran/fortune/voronoi"
	"github.com/stretchr/testify/require"
)

// TestDisplaySingleSite pins down the dump format for the one-face
// rectangle: four untwinned bounding segments through the corners.
func TestDisplaySingleSite(t *testing.T) {
	b := mustBuilder(t)
	addSites(t, b, geom.V2(500, 500))
	d := b.Build()

	var sb strings.Builder
	require.NoError(t, d.Display(&sb))

	want := strings.Join([]string{
		"Face 0",
		"site: (500, 500)",
		"bounds:",
		"Half edge 0",
		"start: (0, 0)",
		"end: (1000, 0)",
		"twin: none",
		"Half edge 1",
		"start: (1000, 0)",
		"end: (1000, 1000)",
		"twin: none",
		"Half edge 2",
		"start: (1000, 1000)",
		"end: (0, 1000)",
		"twin: none",
		"Half edge 3",
		"start: (0, 1000)",
		"end: (0, 0)",
		"twin: none",
		"",
		"",
	}, "\n")
	require.Equal(t, want, sb.String())
}

// TestDisplayTwoSites spot-checks the twin references in the dump.
func TestDisplayTwoSites(t *testing.T) {
	b := mustBuilder(t)
	addSites(t, b, geom.V2(100, 100), geom.V2(900, 900))
	d := b.Build()

	var sb strings.Builder
	require.NoError(t, d.Display(&sb))
	out := sb.String()

	require.Contains(t, out, "Face 0\nsite: (100, 100)\n")
	require.Contains(t, out, "Face 1\nsite: (900, 900)\n")
	require.Contains(t, out, "Half edge 0\nstart: (1000, 0)\nend: (0, 1000)\ntwin: 1\n")
	require.Contains(t, out, "Half edge 1\nstart: (0, 1000)\nend: (1000, 0)\ntwin: 0\n")
}

// TestCreateTrianglesEmpty: no faces, empty buffers.
func TestCreateTrianglesEmpty(t *testing.T) {
	d := mustBuilder(t).Build()

	vertices, indices := d.CreateTriangles()
	require.Empty(t, vertices)
	require.Empty(t, indices)
}

// TestCreateTrianglesTwoSites verifies the exact buffer layout the
// renderer consumes: face centers first, then boundary vertices, all
// normalized to [−1, 1]², and one fan per face.
func TestCreateTrianglesTwoSites(t *testing.T) {
	b := mustBuilder(t)
	addSites(t, b, geom.V2(100, 100), geom.V2(900, 900))
	d := b.Build()

	vertices, indices := d.CreateTriangles()

	wantVertices := []float32{
		-0.8, -0.8, 0,
		0.8, 0.8, 0,
		-1, 1, 0,
		1, -1, 0,
		-1, -1, 0,
		1, 1, 0,
	}
	require.Empty(t, cmp.Diff(wantVertices, vertices))

	wantIndices := []uint32{
		0, 3, 2,
		0, 2, 4,
		0, 4, 3,
		1, 2, 3,
		1, 3, 5,
		1, 5, 2,
	}
	require.Empty(t, cmp.Diff(wantIndices, indices))
}

// TestCreateTrianglesSingleSite: four corner triangles fanned around
// the site.
func TestCreateTrianglesSingleSite(t *testing.T) {
	b := mustBuilder(t)
	addSites(t, b, geom.V2(500, 500))
	d := b.Build()

	vertices, indices := d.CreateTriangles()
	require.Len(t, vertices, 15) // 1 face center + 4 corners
	require.Len(t, indices, 12)  // 4 triangles
	require.Equal(t, []uint32{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 1}, indices)
}

// TestCreateTrianglesPure: a second call yields identical buffers.
func TestCreateTrianglesPure(t *testing.T) {
	b := mustBuilder(t)
	addSites(t, b, geom.V2(100, 100), geom.V2(900, 900))
	d := b.Build()

	v1, i1 := d.CreateTriangles()
	v2, i2 := d.CreateTriangles()
	require.Empty(t, cmp.Diff(v1, v2))
	require.Empty(t, cmp.Diff(i1, i2))
}

// TestCreateTrianglesRectangularBox verifies x and y normalize against
// their own extents in a non-square rectangle.
func TestCreateTrianglesRectangularBox(t *testing.T) {
	b, err := voronoi.NewBuilder(2000, 500)
	require.NoError(t, err)
	require.NoError(t, b.AddSite(500, 125))
	d := b.Build()

	vertices, _ := d.CreateTriangles()
	// site (500, 125) in 2000×500 → (500/1000 − 1, 125/250 − 1)
	require.InDelta(t, -0.5, float64(vertices[0]), 1e-6)
	require.InDelta(t, -0.5, float64(vertices[1]), 1e-6)
}
